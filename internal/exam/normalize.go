package exam

import (
	"regexp"
	"strings"
)

var (
	htmlCommentPattern = regexp.MustCompile(`<!--.*?-->`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// keyPunctuation is the fixed punctuation set stripped from dedup keys.
const keyPunctuation = ".,;:!?'\"()[]{}`*_"

// DedupKey computes the canonical key used to detect duplicate questions.
// Two questions whose texts differ only by case, HTML comments, punctuation,
// or whitespace share a key.
func DedupKey(text string) string {
	key := strings.ToLower(text)
	key = htmlCommentPattern.ReplaceAllString(key, " ")
	key = strings.Map(func(r rune) rune {
		if strings.ContainsRune(keyPunctuation, r) {
			return ' '
		}
		return r
	}, key)
	key = whitespacePattern.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}
