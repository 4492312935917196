package quiz

import "github.com/charmbracelet/lipgloss"

// Palette colors carried over from the original dark theme.
const (
	colorForeground = lipgloss.Color("#CCCCCC")
	colorMuted      = lipgloss.Color("#888888")
	colorSuccess    = lipgloss.Color("#00C853")
	colorError      = lipgloss.Color("#D50000")
	colorAccent     = lipgloss.Color("#5FAFFF")
)

// Theme holds the lipgloss styles for every screen element.
type Theme struct {
	Header   lipgloss.Style
	Question lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Correct  lipgloss.Style
	Wrong    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
}

// NewTheme builds the dark theme, or an unstyled theme when color is off.
func NewTheme(noColor bool) Theme {
	if noColor {
		plain := lipgloss.NewStyle()
		return Theme{
			Header:   plain,
			Question: plain,
			Option:   plain,
			Selected: plain,
			Correct:  plain,
			Wrong:    plain,
			Status:   plain,
			Error:    plain,
			Hint:     plain,
		}
	}
	return Theme{
		Header:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Question: lipgloss.NewStyle().Foreground(colorForeground).Bold(true),
		Option:   lipgloss.NewStyle().Foreground(colorForeground),
		Selected: lipgloss.NewStyle().Foreground(colorAccent),
		Correct:  lipgloss.NewStyle().Foreground(colorSuccess),
		Wrong:    lipgloss.NewStyle().Foreground(colorError),
		Status:   lipgloss.NewStyle().Foreground(colorMuted),
		Error:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
