package session

// Phase identifies where a session is in its lifecycle.
type Phase int

const (
	// PhaseEmpty means no questions are available to present.
	PhaseEmpty Phase = iota
	// PhasePresenting means a question is on screen awaiting an answer.
	PhasePresenting
	// PhaseRevealed means the answer was recorded and feedback is shown.
	PhaseRevealed
	// PhaseFinished means the traversal order is exhausted.
	PhaseFinished
)

// String returns a display label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePresenting:
		return "presenting"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
