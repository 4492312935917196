package report

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a plain-text summary of a loaded exam.
func Render(w io.Writer, summary Summary) {
	fmt.Fprintf(w, "Exam: %s\n", summary.File)
	if summary.SessionID != "" {
		fmt.Fprintf(w, "Session: %s\n", summary.SessionID)
	}
	fmt.Fprintf(w, "Questions: %d (%d unique", summary.Total, summary.Unique)
	if summary.AIGenerated > 0 {
		fmt.Fprintf(w, ", %d AI-generated", summary.AIGenerated)
	}
	fmt.Fprintln(w, ")")

	if len(summary.Sections) > 0 {
		fmt.Fprintln(w, "Sections:")
		for _, section := range summary.Sections {
			fmt.Fprintf(w, "  %-30s %d\n", section.Name, section.Count)
		}
	}

	if len(summary.DuplicateGroups) == 0 {
		fmt.Fprintln(w, "No duplicate questions.")
		return
	}
	fmt.Fprintf(w, "Duplicate groups: %d\n", len(summary.DuplicateGroups))
	for _, group := range summary.DuplicateGroups {
		fmt.Fprintf(w, "  x%d %s (%s)\n", group.Count, truncate(group.Text, 60), strings.Join(group.Sources, ", "))
	}
}

// ScoreLine formats the running score for the status bar and final screen.
func ScoreLine(score, total int) string {
	return fmt.Sprintf("%d/%d (%s%%)", score, total, formatPercent(score, total))
}

// truncate shortens long question text for one-line display.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}
