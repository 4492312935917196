package session

import (
	"math/rand"
	"time"

	"examsim/internal/exam"
)

// Controller owns the traversal order and score for one quiz session. All
// methods are synchronous and must be called from a single goroutine; the
// UI event loop is the only caller.
type Controller struct {
	set         exam.Set
	rng         *rand.Rand
	randomized  bool
	filterNonAI bool

	order    []int
	position int
	score    int
	answered int
	phase    Phase

	prompt Prompt
	reveal Reveal
}

// New builds a controller over a parsed question set. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func New(set exam.Set, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	controller := &Controller{set: set, rng: rng}
	controller.Restart()
	return controller
}

// Set returns the question set the session runs over.
func (c *Controller) Set() exam.Set {
	return c.set
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the number of correctly answered questions this session.
func (c *Controller) Score() int {
	return c.score
}

// Answered returns the number of recorded answers this session.
func (c *Controller) Answered() int {
	return c.answered
}

// Total returns the length of the active traversal order.
func (c *Controller) Total() int {
	return len(c.order)
}

// Randomized reports whether question order shuffling is on.
func (c *Controller) Randomized() bool {
	return c.randomized
}

// FilterNonAI reports whether AI-generated questions are filtered out.
func (c *Controller) FilterNonAI() bool {
	return c.filterNonAI
}

// SetRandomized toggles question order shuffling and restarts the session.
func (c *Controller) SetRandomized(randomized bool) {
	c.randomized = randomized
	c.Restart()
}

// SetFilterNonAI toggles the AI filter and restarts the session.
func (c *Controller) SetFilterNonAI(filter bool) {
	c.filterNonAI = filter
	c.Restart()
}

// Restart recomputes the traversal order and resets position and score.
// A randomized order is freshly reshuffled, not replayed.
func (c *Controller) Restart() {
	c.order = traversalOrder(c.set, c.filterNonAI, c.randomized, c.rng)
	c.position = 0
	c.score = 0
	c.answered = 0
	c.reveal = Reveal{}
	c.present()
}

// Current returns the prompt on screen. ok is false in the empty and
// finished phases.
func (c *Controller) Current() (Prompt, bool) {
	if c.phase != PhasePresenting && c.phase != PhaseRevealed {
		return Prompt{}, false
	}
	return c.prompt, true
}

// LastReveal returns the outcome of the most recent answer. ok is false
// unless the session is in the revealed phase.
func (c *Controller) LastReveal() (Reveal, bool) {
	if c.phase != PhaseRevealed {
		return Reveal{}, false
	}
	return c.reveal, true
}

// RecordAnswer scores the displayed choice against the current question.
// The display index is mapped back to file order before the valid-count
// comparison. Answers outside the presenting phase are ignored.
func (c *Controller) RecordAnswer(displayIndex int) (Reveal, bool) {
	if c.phase != PhasePresenting {
		return Reveal{}, false
	}
	originalIndex, ok := c.prompt.OriginalIndex(displayIndex)
	if !ok {
		return Reveal{}, false
	}
	correct := originalIndex < c.prompt.Question.ValidCount
	c.answered++
	if correct {
		c.score++
	}
	c.reveal = Reveal{
		Selected:       displayIndex,
		Correct:        correct,
		CorrectDisplay: c.prompt.CorrectDisplayIndices(),
	}
	c.phase = PhaseRevealed
	return c.reveal, true
}

// Advance moves past a revealed question, finalizing the session at the
// end of the order. Advancing in any other phase is a no-op.
func (c *Controller) Advance() {
	if c.phase != PhaseRevealed {
		return
	}
	c.position++
	c.present()
}

// present prepares the prompt at the current position with a fresh option
// display shuffle, or settles into the empty or finished phase.
func (c *Controller) present() {
	if len(c.order) == 0 {
		c.phase = PhaseEmpty
		c.prompt = Prompt{}
		return
	}
	if c.position >= len(c.order) {
		c.phase = PhaseFinished
		c.prompt = Prompt{}
		return
	}
	question := c.set.Questions[c.order[c.position]]
	displayToOriginal := displayShuffle(len(question.Options), c.rng)
	options := make([]string, len(displayToOriginal))
	for displayIndex, originalIndex := range displayToOriginal {
		options[displayIndex] = question.Options[originalIndex]
	}
	c.prompt = Prompt{
		Position:          c.position,
		Question:          question,
		Options:           options,
		displayToOriginal: displayToOriginal,
	}
	c.phase = PhasePresenting
}
