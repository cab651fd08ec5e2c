package annotation

import (
	"regexp"
	"strings"
)

var allowedChars = regexp.MustCompile(`[^A-Za-z0-9 .,?!'-]`)

// Sanitize reduces model output to a conservative charset safe for both the
// rich and plain digest renderings: letters, digits, spaces and basic
// punctuation. Everything else, markup included, is stripped. The result
// carries no leading/trailing or repeated spaces, so sanitizing twice is a
// no-op.
func Sanitize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = allowedChars.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
