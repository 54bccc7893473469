// Package text provides small helpers for user-supplied text fields.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Length limits on titles and author names are expressed in characters, not bytes,
// so multi-byte input such as "こんにちは" counts as 5.
//
// Examples:
//
//	CountRunes("hello")      // returns 5
//	CountRunes("こんにちは") // returns 5
//	CountRunes("")           // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
