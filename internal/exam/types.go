package exam

// DefaultSection names questions that appear before any markdown heading.
const DefaultSection = "Unknown Exam"

// Question is a single multiple-choice question, immutable after load.
type Question struct {
	Text        string
	Options     []string
	ValidCount  int
	AIGenerated bool
	Section     string
	Key         string
	Duplicates  int
	Sources     []string
}

// Set is the ordered question collection produced by one load.
type Set struct {
	Questions []Question
	Unique    []int
}

// Len returns the total number of questions in the set.
func (s Set) Len() int {
	return len(s.Questions)
}

// UniqueLen returns the number of distinct questions by dedup key.
func (s Set) UniqueLen() int {
	return len(s.Unique)
}

// Empty reports whether the set holds no questions.
func (s Set) Empty() bool {
	return len(s.Questions) == 0
}
