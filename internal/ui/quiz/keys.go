package quiz

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the quiz key bindings.
type keyMap struct {
	Select    key.Binding
	Advance   key.Binding
	Randomize key.Binding
	FilterAI  key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "answer"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("any key", "next question"),
		),
		Randomize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle shuffle"),
		),
		FilterAI: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle non-AI only"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the compact help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Randomize, k.FilterAI, k.Restart, k.Quit}
}

// FullHelp lists all bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Advance},
		{k.Randomize, k.FilterAI, k.Restart},
		{k.Help, k.Quit},
	}
}
