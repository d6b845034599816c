package mdsift

import (
	"regexp"
	"strings"
)

var (
	whitespaceOnlyLine = regexp.MustCompile(`(?m)^[ \t]+$`)
	excessNewlines     = regexp.MustCompile(`\n{3,}`)
)

// Normalize is the final whitespace pass over rendered Markdown: lines
// containing only whitespace are blanked, runs of three or more line
// breaks collapse to exactly two, and the whole document is trimmed.
// Idempotent.
func Normalize(s string) string {
	s = whitespaceOnlyLine.ReplaceAllString(s, "")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
