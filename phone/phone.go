// Package phone validates, normalizes, and formats Indonesian mobile
// phone numbers.
//
// Numbers are accepted in local ("0812…"), country-code ("62812…"), and
// international ("+62812…") forms, with spaces, dashes, dots, and
// parentheses tolerated anywhere. The canonical form is the local one:
// "08" followed by 8 to 11 digits.
//
//   - Normalize canonicalizes any accepted form.
//   - IsValid reports whether the number canonicalizes and carries a
//     known operator prefix.
//   - Operator resolves the four-digit prefix to a carrier name.
//   - Format and FormatIntl render display forms ("0812-3456-7890",
//     "+62 812-3456-7890").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Only mobile numbers are handled; fixed-line area codes are not.
//   - Prefix-to-carrier mapping reflects current assignments and does
//     not account for number portability.
package phone

import (
	"fmt"
	"strings"

	"github.com/choiruladamm/indo-dev-utils/internal/digits"
)

const (
	minDigits = 10 // shortest valid local form, e.g. 0812345678
	maxDigits = 13 // longest valid local form
	prefixLen = 4  // operator prefix length, e.g. "0812"
)

// Normalize returns the canonical local form ("08…") of an Indonesian
// mobile number, accepting "+62", "62", and "0" prefixes and ignoring
// separator characters. Returns an error for anything that is not an
// Indonesian mobile number.
func Normalize(s string) (string, error) {
	return normalize(s)
}

// IsValid reports whether s normalizes to a mobile number with a known
// operator prefix.
func IsValid(s string) bool {
	_, err := Operator(s)
	return err == nil
}

// Operator returns the carrier name for the number's prefix, e.g.
// "Telkomsel" for "0812…".
func Operator(s string) (string, error) {
	n, err := normalize(s)
	if err != nil {
		return "", err
	}
	op, ok := operatorPrefixes[n[:prefixLen]]
	if !ok {
		return "", fmt.Errorf("phone: unknown operator prefix %q", n[:prefixLen])
	}
	return op, nil
}

// Format renders the local display form: "0812-3456-7890".
func Format(s string) (string, error) {
	n, err := normalize(s)
	if err != nil {
		return "", err
	}
	return groupNumber(n), nil
}

// FormatIntl renders the international display form: "+62 812-3456-7890".
func FormatIntl(s string) (string, error) {
	n, err := normalize(s)
	if err != nil {
		return "", err
	}
	// Drop the trunk "0"; the first group is the three digits after it.
	rest := n[1:]
	return "+62 " + rest[:3] + "-" + groupNumber(rest[3:]), nil
}

// normalize strips separators, canonicalizes the country prefix, and
// checks shape.
func normalize(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	plus := strings.HasPrefix(trimmed, "+")

	n := digits.Strip(trimmed)
	if n == "" {
		return "", fmt.Errorf("phone: no digits in %q", s)
	}

	switch {
	case plus && strings.HasPrefix(n, "62"):
		n = "0" + n[2:]
	case plus:
		return "", fmt.Errorf("phone: not an Indonesian country code in %q", s)
	case strings.HasPrefix(n, "62") && len(n) >= minDigits+1:
		// Bare "62…" long enough to be country-coded; "0628…" stays local.
		n = "0" + n[2:]
	}

	if !strings.HasPrefix(n, "08") {
		return "", fmt.Errorf("phone: %q is not a mobile number", s)
	}
	if len(n) < minDigits || len(n) > maxDigits {
		return "", fmt.Errorf("phone: %q has %d digits, want %d-%d", s, len(n), minDigits, maxDigits)
	}
	return n, nil
}

// groupNumber renders digit groups of four separated by dashes, with any
// remainder in the final group: "0812-3456-7890", "0812-3456-789".
func groupNumber(n string) string {
	var b strings.Builder
	b.Grow(len(n) + len(n)/4)
	for i := 0; i < len(n); i += prefixLen {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + prefixLen
		if end > len(n) {
			end = len(n)
		}
		b.WriteString(n[i:end])
	}
	return b.String()
}
