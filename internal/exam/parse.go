package exam

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoQuestions indicates the input contained no parsable question blocks.
var ErrNoQuestions = errors.New("no valid questions found")

// aiMarker flags a question as machine-generated in the source file.
const aiMarker = "[AI-Generated]"

var (
	headingPattern    = regexp.MustCompile(`^#{1,6}\s+(.*)$`)
	questionPattern   = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	optionPattern     = regexp.MustCompile(`^\s+\d+\.\s+(.*)$`)
	validCountPattern = regexp.MustCompile(`<!--\s*valid:\s*(\d+)\s*-->`)
)

// Parse extracts question blocks from markdown text and builds a Set.
// A block starts at an unindented "<number>. " line and runs until the next
// numbered item, a heading, or end of input. Blocks without options are
// dropped. Returns ErrNoQuestions when nothing parsable remains.
func Parse(data []byte) (Set, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var set Set
	byKey := map[string]int{}
	section := DefaultSection
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		if question, ok := parseBlock(block, section); ok {
			appendQuestion(&set, byKey, question)
		}
		block = nil
	}

	for _, line := range lines {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			flush()
			section = strings.TrimSpace(match[1])
			if section == "" {
				section = DefaultSection
			}
			continue
		}
		if questionPattern.MatchString(line) {
			flush()
			block = []string{line}
			continue
		}
		if len(block) > 0 {
			block = append(block, line)
		}
	}
	flush()

	if set.Empty() {
		return Set{}, ErrNoQuestions
	}
	return set, nil
}

// parseBlock turns one question block into a Question. Blocks with no
// options report ok=false and are discarded by the caller.
func parseBlock(lines []string, section string) (Question, bool) {
	match := questionPattern.FindStringSubmatch(lines[0])
	if match == nil {
		return Question{}, false
	}

	aiGenerated := strings.Contains(lines[0], aiMarker)
	text := strings.ReplaceAll(match[2], aiMarker, "")
	text = htmlCommentPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	var options []string
	for _, line := range lines[1:] {
		optionMatch := optionPattern.FindStringSubmatch(line)
		if optionMatch == nil {
			continue
		}
		option := strings.TrimSpace(optionMatch[1])
		if option != "" {
			options = append(options, option)
		}
	}
	if len(options) == 0 {
		return Question{}, false
	}

	return Question{
		Text:        text,
		Options:     options,
		ValidCount:  validCount(lines, len(options)),
		AIGenerated: aiGenerated,
		Section:     section,
		Key:         DedupKey(text),
		Duplicates:  1,
		Sources:     []string{section},
	}, true
}

// validCount reads the "valid: N" comment override, clamped to the option
// count. The first N options in file order are the correct ones.
func validCount(lines []string, optionCount int) int {
	count := 1
	for _, line := range lines {
		match := validCountPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if parsed, err := strconv.Atoi(match[1]); err == nil {
			count = parsed
		}
	}
	if count < 1 {
		count = 1
	}
	if count > optionCount {
		count = optionCount
	}
	return count
}

// appendQuestion adds a question to the set, folding duplicate keys into
// the first occurrence's duplicate count and source list.
func appendQuestion(set *Set, byKey map[string]int, question Question) {
	index := len(set.Questions)
	set.Questions = append(set.Questions, question)

	if firstIndex, seen := byKey[question.Key]; seen {
		first := &set.Questions[firstIndex]
		first.Duplicates++
		if !containsString(first.Sources, question.Section) {
			first.Sources = append(first.Sources, question.Section)
		}
		return
	}
	byKey[question.Key] = index
	set.Unique = append(set.Unique, index)
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
