package library

import (
	"regexp"
	"strings"
)

var (
	punctuationRe   = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	multipleSpaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeTitle folds an album or artist name for grouping: lowercase,
// punctuation replaced with spaces, whitespace collapsed. Letters outside
// ASCII are kept.
func NormalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = punctuationRe.ReplaceAllString(s, " ")
	s = multipleSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
