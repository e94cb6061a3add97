// Package content holds the string-shape predicates that decide whether a
// literal reads as human-facing prose or as a code-like token.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsTrivial reports whether text is empty or whitespace-only after trimming.
// Trivial literals are never flagged.
func IsTrivial(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsAllUpper reports whether text uppercases to itself and contains at least
// one letter. All-upper values read as constant identifiers and are exempt
// unconditionally, for keys and values alike.
func IsAllUpper(text string) bool {
	if !hasLetter(text) {
		return false
	}
	return strings.ToUpper(text) == text
}

// LooksLikeHumanText reports whether text is shaped like prose: it must
// contain at least one lowercase letter, and either start with an uppercase
// letter or contain internal whitespace between words. Purely symbolic,
// numeric, or single-lowercase-token strings fail and read as code.
func LooksLikeHumanText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.IndexFunc(trimmed, unicode.IsLower) < 0 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(trimmed)
	if unicode.IsUpper(first) {
		return true
	}
	// After trimming, any remaining whitespace separates words.
	return strings.IndexFunc(trimmed, unicode.IsSpace) >= 0
}

func hasLetter(text string) bool {
	return strings.IndexFunc(text, unicode.IsLetter) >= 0
}
