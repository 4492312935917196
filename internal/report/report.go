package report

import (
	"sort"

	"github.com/google/uuid"

	"examsim/internal/exam"
)

// Summary aggregates a loaded exam for the validate command and the
// end-of-session screen.
type Summary struct {
	SessionID       string
	File            string
	Total           int
	Unique          int
	AIGenerated     int
	Sections        []SectionCount
	DuplicateGroups []DuplicateGroup
}

// SectionCount tallies questions under one markdown heading.
type SectionCount struct {
	Name  string
	Count int
}

// DuplicateGroup describes one dedup-key collision.
type DuplicateGroup struct {
	Text    string
	Count   int
	Sources []string
}

// NewSessionID mints the identifier recorded for one interactive session.
func NewSessionID() string {
	return uuid.NewString()
}

// Build computes a summary for a loaded exam set.
func Build(file string, set exam.Set) Summary {
	summary := Summary{
		File:   file,
		Total:  set.Len(),
		Unique: set.UniqueLen(),
	}

	counts := map[string]int{}
	var sectionOrder []string
	for _, question := range set.Questions {
		if question.AIGenerated {
			summary.AIGenerated++
		}
		if _, seen := counts[question.Section]; !seen {
			sectionOrder = append(sectionOrder, question.Section)
		}
		counts[question.Section]++
	}
	for _, name := range sectionOrder {
		summary.Sections = append(summary.Sections, SectionCount{Name: name, Count: counts[name]})
	}

	for _, index := range set.Unique {
		question := set.Questions[index]
		if question.Duplicates < 2 {
			continue
		}
		sources := append([]string(nil), question.Sources...)
		sort.Strings(sources)
		summary.DuplicateGroups = append(summary.DuplicateGroups, DuplicateGroup{
			Text:    question.Text,
			Count:   question.Duplicates,
			Sources: sources,
		})
	}
	return summary
}
