// Package idtext provides small Indonesian text utilities: word
// capitalization, URL slugs, and expansion of common chat abbreviations.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Slug keeps ASCII letters and digits only; other characters become
//     separators rather than being transliterated.
//   - Abbreviation expansion is a fixed dictionary; it does not attempt
//     context-dependent forms ("dr" always expands to "dari").
package idtext

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first letter of every word and lower-cases
// the rest: "jalan sudirman" -> "Jalan Sudirman".
func Capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Slug renders s as a lowercase ASCII slug with hyphen separators:
// "Harga Rp 1.500!" -> "harga-rp-1-500".
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// ExpandAbbreviations replaces common Indonesian chat abbreviations with
// their full forms: "yg penting jgn telat" -> "yang penting jangan
// telat". Matching is per word and case-insensitive; a capitalized
// abbreviation keeps its capital ("Yg" -> "Yang"). Unknown words pass
// through unchanged.
func ExpandAbbreviations(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	start := -1 // start of the word under scan, -1 when between words
	flush := func(end int) {
		if start < 0 {
			return
		}
		b.WriteString(expandWord(s[start:end]))
		start = -1
	}

	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		b.WriteRune(r)
	}
	flush(len(s))

	return b.String()
}

// expandWord expands a single word if it is a known abbreviation.
func expandWord(word string) string {
	full, ok := abbreviations[strings.ToLower(word)]
	if !ok {
		return word
	}
	if r := rune(word[0]); r >= 'A' && r <= 'Z' {
		return strings.ToUpper(full[:1]) + full[1:]
	}
	return full
}
