package quiz

import (
	"math/rand"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"examsim/internal/exam"
	"examsim/internal/report"
	"examsim/internal/session"
)

// Options configures the quiz UI model.
type Options struct {
	ExamName    string
	LoadError   string
	NoColor     bool
	Randomized  bool
	FilterNonAI bool
	// Rand overrides the session randomness source in tests.
	Rand *rand.Rand
}

// Model renders a quiz session using Bubble Tea.
type Model struct {
	controller *session.Controller
	keys       keyMap
	theme      Theme
	help       help.Model
	examName   string
	loadError  string
	summary    report.Summary
	width      int
	height     int
}

// NewModel constructs a quiz model over a parsed question set.
func NewModel(set exam.Set, opts Options) Model {
	controller := session.New(set, opts.Rand)
	if opts.Randomized {
		controller.SetRandomized(true)
	}
	if opts.FilterNonAI {
		controller.SetFilterNonAI(true)
	}
	return Model{
		controller: controller,
		keys:       defaultKeyMap(),
		theme:      NewTheme(opts.NoColor),
		help:       help.New(),
		examName:   opts.ExamName,
		loadError:  opts.LoadError,
		summary:    sessionSummary(opts.ExamName, set),
		width:      80,
	}
}

// sessionSummary builds the exam summary once per session, with a stable
// session id for the finished screen.
func sessionSummary(examName string, set exam.Set) report.Summary {
	summary := report.Build(examName, set)
	summary.SessionID = report.NewSessionID()
	return summary
}

// Init performs no startup work; all state is ready at construction.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey dispatches a key press against the current session phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.controller.Restart()
		return m, nil
	case key.Matches(msg, m.keys.Randomize):
		m.controller.SetRandomized(!m.controller.Randomized())
		return m, nil
	case key.Matches(msg, m.keys.FilterAI):
		m.controller.SetFilterNonAI(!m.controller.FilterNonAI())
		return m, nil
	}

	switch m.controller.Phase() {
	case session.PhasePresenting:
		if index, ok := selectedOption(msg); ok {
			m.controller.RecordAnswer(index)
		}
	case session.PhaseRevealed:
		// Mirrors the original click-anywhere-to-advance behavior.
		m.controller.Advance()
	}
	return m, nil
}

// selectedOption maps a digit key to a zero-based display index.
func selectedOption(msg tea.KeyMsg) (int, bool) {
	text := msg.String()
	if len(text) != 1 || text < "1" || text > "9" {
		return 0, false
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return index - 1, true
}
