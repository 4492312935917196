package quiz

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"examsim/internal/exam"
)

// Run starts the full-screen quiz UI and blocks until the user quits.
func Run(set exam.Set, opts Options, stdout io.Writer) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(set, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return nil
}
