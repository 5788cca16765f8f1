// Package textutil provides the text normalization shared by the chunker and
// the responder: Unicode punctuation folding and whitespace collapsing.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	punctReplacer = strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
		" ", " ",
	)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizePunct folds curly quotes and non-breaking spaces to their plain
// ASCII equivalents and trims surrounding whitespace. Used on generator
// output before it is returned to the user.
func NormalizePunct(s string) string {
	return strings.TrimSpace(punctReplacer.Replace(s))
}

// Clean normalizes a chunk of source text: punctuation folding, carriage
// returns dropped, all internal whitespace runs collapsed to single spaces,
// surrounding whitespace trimmed.
func Clean(s string) string {
	s = punctReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Truncate shortens s to at most maxRunes Unicode characters.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}

// FirstLine returns the text before the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
