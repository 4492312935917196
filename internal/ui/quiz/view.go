package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"examsim/internal/report"
	"examsim/internal/session"
)

// View renders the screen for the current session phase.
func (m Model) View() string {
	sections := []string{m.renderHeader()}
	switch m.controller.Phase() {
	case session.PhaseEmpty:
		sections = append(sections, m.renderEmpty())
	case session.PhaseFinished:
		sections = append(sections, m.renderFinished())
	default:
		sections = append(sections, m.renderQuestion())
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderHeader renders the title line with the exam file name.
func (m Model) renderHeader() string {
	title := "Exam Simulator"
	if m.examName != "" {
		title += " - " + m.examName
	}
	return m.theme.Header.Render(title)
}

// renderEmpty renders the no-questions screen, including load errors.
func (m Model) renderEmpty() string {
	if m.loadError != "" {
		message := m.theme.Error.Width(m.wrapWidth()).Render("Error: " + m.loadError)
		hint := m.theme.Hint.Render("No questions loaded. Press q to quit.")
		return lipgloss.JoinVertical(lipgloss.Left, "", message, "", hint)
	}
	message := m.theme.Question.Render("No questions to show.")
	hint := m.theme.Hint.Render("Adjust the filters (a) or restart (r).")
	return lipgloss.JoinVertical(lipgloss.Left, "", message, "", hint)
}

// renderQuestion renders the prompt and its shuffled options.
func (m Model) renderQuestion() string {
	prompt, ok := m.controller.Current()
	if !ok {
		return ""
	}
	question := m.theme.Question.Width(m.wrapWidth()).Render(
		fmt.Sprintf("Q%d: %s", prompt.Position+1, prompt.Question.Text))

	reveal, revealed := m.controller.LastReveal()
	lines := make([]string, 0, len(prompt.Options)+2)
	lines = append(lines, "", question, "")
	for displayIndex, option := range prompt.Options {
		lines = append(lines, m.renderOption(displayIndex, option, reveal, revealed))
	}
	if revealed {
		lines = append(lines, "", m.theme.Hint.Render("Press any key for the next question."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderOption renders one option line with reveal feedback marks.
func (m Model) renderOption(displayIndex int, option string, reveal session.Reveal, revealed bool) string {
	label := fmt.Sprintf("%d. %s", displayIndex+1, option)
	if !revealed {
		return m.theme.Option.Width(m.wrapWidth()).Render(label)
	}
	switch {
	case containsInt(reveal.CorrectDisplay, displayIndex):
		return m.theme.Correct.Width(m.wrapWidth()).Render(label + "  ✓")
	case displayIndex == reveal.Selected:
		return m.theme.Wrong.Width(m.wrapWidth()).Render(label + "  ×")
	default:
		return m.theme.Option.Width(m.wrapWidth()).Render(label)
	}
}

// renderFinished renders the final score and the session summary.
func (m Model) renderFinished() string {
	score := m.theme.Question.Render(
		"End | Final score: " + report.ScoreLine(m.controller.Score(), m.controller.Total()))
	var summary strings.Builder
	report.Render(&summary, m.summary)
	body := m.theme.Status.Width(m.wrapWidth()).Render(strings.TrimRight(summary.String(), "\n"))
	hint := m.theme.Hint.Render("Press r to restart or q to quit.")
	return lipgloss.JoinVertical(lipgloss.Left, "", score, "", body, "", hint)
}

// renderStatus renders the running score and position line.
func (m Model) renderStatus() string {
	phase := m.controller.Phase()
	if phase == session.PhaseEmpty || phase == session.PhaseFinished {
		return m.theme.Status.Render(m.suffixes())
	}
	prompt, _ := m.controller.Current()
	line := fmt.Sprintf("Score: %d/%d | Question %d of %d%s",
		m.controller.Score(), m.controller.Total(),
		prompt.Position+1, m.controller.Total(), m.suffixes())
	return m.theme.Status.Render(line)
}

// suffixes renders the active toggle markers for the status line.
func (m Model) suffixes() string {
	var parts []string
	if m.controller.Randomized() {
		parts = append(parts, "(Randomized)")
	}
	if m.controller.FilterNonAI() {
		parts = append(parts, "(Non-AI only)")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// wrapWidth returns the text wrap width for the current terminal size.
func (m Model) wrapWidth() int {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return width
}

func containsInt(values []int, target int) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
