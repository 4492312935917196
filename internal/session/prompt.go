package session

import "examsim/internal/exam"

// Prompt is one question prepared for display: the question itself plus
// the shuffled option order used for this presentation only.
type Prompt struct {
	// Position is the zero-based index into the traversal order.
	Position int
	Question exam.Question
	// Options holds the option texts in display order.
	Options []string
	// displayToOriginal maps a display index to the file-order index.
	displayToOriginal []int
}

// OriginalIndex maps a displayed option back to its file-order index.
func (p Prompt) OriginalIndex(displayIndex int) (int, bool) {
	if displayIndex < 0 || displayIndex >= len(p.displayToOriginal) {
		return 0, false
	}
	return p.displayToOriginal[displayIndex], true
}

// CorrectDisplayIndices returns the display positions of all correct
// options. An option is correct iff its original index is below the
// question's valid-answer count.
func (p Prompt) CorrectDisplayIndices() []int {
	var correct []int
	for displayIndex, originalIndex := range p.displayToOriginal {
		if originalIndex < p.Question.ValidCount {
			correct = append(correct, displayIndex)
		}
	}
	return correct
}

// Reveal captures the outcome of one recorded answer.
type Reveal struct {
	// Selected is the display index the user chose.
	Selected int
	Correct  bool
	// CorrectDisplay lists the display indices of all correct options.
	CorrectDisplay []int
}
