package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeGlyph folds a glyph string to NFKC, expanding ligatures such as
// "ﬁ" to "fi". Control characters other than whitespace are dropped.
func NormalizeGlyph(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFKC.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsBlank reports whether s contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CollapseSpaces trims s and replaces every run of whitespace with a single
// space
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EndsWithSpace reports whether the last rune of s is whitespace
func EndsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsSpace(r[len(r)-1])
}
