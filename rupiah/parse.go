// Separator disambiguation for plain and grouped digit strings.
package rupiah

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDecimalTail is the longest digit run after a lone comma that still
// reads as a decimal fraction ("1,50" is 1.5; "1,500" is 1500).
const maxDecimalTail = 2

// parse reads a plain or separator-grouped digit string into a number.
//
// Disambiguation policy, in priority order:
//
//  1. Strip the currency symbol, surrounding whitespace, and a trailing
//     ",-" suffix.
//  2. Both "." and "," present: the rightmost occurrence of either is
//     the decimal marker, every earlier one a thousands separator.
//  3. Only ",": decimal marker when the string splits into exactly two
//     segments with a 1-2 digit tail; otherwise thousands separators.
//  4. Only ".": thousands separators when there are more than two
//     segments, or exactly two with a tail longer than two digits;
//     otherwise a decimal marker.
//  5. Parse the canonical string as a float.
func parse(text string) (float64, error) {
	s := stripSymbol(text)
	s = strings.TrimSuffix(s, ",-")
	if s == "" {
		return 0, fmt.Errorf("rupiah: empty input: %w", ErrInvalid)
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	var canonical string
	switch {
	case hasDot && hasComma:
		canonical = resolveMixed(s)
	case hasComma:
		head, tail, _ := strings.Cut(s, ",")
		if !strings.Contains(tail, ",") && len(tail) >= 1 && len(tail) <= maxDecimalTail {
			canonical = head + "." + tail
		} else {
			canonical = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		parts := strings.Split(s, ".")
		if len(parts) > 2 || len(parts[len(parts)-1]) > maxDecimalTail {
			canonical = strings.Join(parts, "")
		} else {
			canonical = s
		}
	default:
		canonical = s
	}

	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		return 0, fmt.Errorf("rupiah: cannot read %q as a number: %w", text, ErrInvalid)
	}
	return v, nil
}

// resolveMixed handles strings containing both separator characters:
// the rightmost is the decimal marker, the rest are removed.
func resolveMixed(s string) string {
	last := strings.LastIndexAny(s, ".,")
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case i == last:
			b.WriteByte('.')
		case s[i] == '.' || s[i] == ',':
			// thousands separator, dropped
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// stripSymbol removes surrounding whitespace and a leading "Rp" symbol
// (any case), including the abbreviation-dot form "Rp. 500". The dot is
// consumed only when followed by a space, so "Rp.500" keeps its dot for
// the separator heuristics.
func stripSymbol(text string) string {
	s := strings.TrimSpace(text)
	if len(s) >= 2 && (s[0] == 'R' || s[0] == 'r') && (s[1] == 'p' || s[1] == 'P') {
		s = s[2:]
		if len(s) >= 2 && s[0] == '.' && s[1] == ' ' {
			s = s[1:]
		}
		s = strings.TrimLeft(s, " ")
	}
	return s
}
