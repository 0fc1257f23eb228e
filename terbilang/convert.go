// Unexported conversion functions for Indonesian number spelling.
package terbilang

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// growConvert is the estimated byte size of a full spelled amount.
const growConvert = 96

// convert spells amount in Indonesian words under opts.
// Returns "" for NaN, infinities, and abs(amount) >= 10^18.
func convert(amount float64, opts Options) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	// The fractional part is always discarded before the sign is read,
	// so -1.5 spells as minus two: abs(floor(-1.5)) == 2.
	whole := math.Floor(amount)
	if whole >= float64(maxAbs) || whole <= -float64(maxAbs) {
		return ""
	}

	negative := whole < 0
	n := int64(math.Abs(whole))

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteString(wordMinus)
	}

	if n == 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[0])
	} else {
		writeNumber(&b, n)
	}

	if opts.WithCurrency {
		b.WriteByte(' ')
		b.WriteString(wordRupiah)
	}

	s := b.String()
	if opts.Uppercase {
		s = capitalize(s)
	}
	return s
}

// writeNumber writes n > 0 as Indonesian words into b, decomposing by
// magnitude groups. A ribu count of exactly 1 renders as "seribu";
// larger units keep the regular "satu juta" form. Triliun counts above
// 999 recurse through the magnitude table again.
func writeNumber(b *strings.Builder, n int64) {
	for _, mag := range magnitudes {
		count := n / mag.value
		if count == 0 {
			continue
		}
		if mag.value == 1_000 && count == 1 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(wordSeribu)
		} else {
			if count < 1_000 {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				writeGroup(b, count)
			} else {
				// Recursion writes its own leading space.
				writeNumber(b, count)
			}
			b.WriteByte(' ')
			b.WriteString(mag.word)
		}
		n %= mag.value
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(b, n)
	}
}

// writeGroup writes a number in [1, 999] as Indonesian words into b.
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	if h == 1 {
		b.WriteString(wordSeratus)
	} else if h > 1 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordRatus)
	}

	r := n % hundred
	if r == 0 {
		return
	}
	if h > 0 {
		b.WriteByte(' ')
	}

	switch {
	case r < 10:
		b.WriteString(ones[r])
	case r < 20:
		b.WriteString(teens[r-10])
	default:
		b.WriteString(ones[r/10])
		b.WriteByte(' ')
		b.WriteString(wordPuluh)
		if o := r % 10; o > 0 {
			b.WriteByte(' ')
			b.WriteString(ones[o])
		}
	}
}

// capitalize upper-cases only the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
