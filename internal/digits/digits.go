// Package digits provides shared digit-string helpers for the parsing
// packages (rupiah, nik, phone).
//
// All functions are safe for concurrent use.
package digits

import "strings"

// All reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func All(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Strip returns s with every non-digit byte removed.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Zeros reports whether s consists entirely of '0' characters.
// An empty string returns true.
func Zeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
