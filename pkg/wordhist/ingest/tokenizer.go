package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into qualifying tokens.
//
// Periods are removed, the text is lowercased and split on whitespace runs.
// A token is kept when it is purely alphabetic and longer than one rune, or
// when it contains a hyphen. Order and duplicates are preserved.
func Tokenize(text string) []string {
	cleaned := strings.ToLower(strings.ReplaceAll(text, ".", ""))

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if Qualifies(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Qualifies reports whether a single (already lowercased) token survives
// filtering. Numbers, single letters and symbol-only tokens are dropped
// unless they carry a hyphen.
func Qualifies(token string) bool {
	if strings.Contains(token, "-") {
		return true
	}
	return utf8.RuneCountInString(token) > 1 && isAlpha(token)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
