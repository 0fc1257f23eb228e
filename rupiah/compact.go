// Compact magnitude-word notation: encoding and keyword-scan decoding.
package rupiah

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// compactFallback is the threshold below which amounts render in
// grouped-digit notation instead of "X ribu".
const compactFallback = 100_000

// compact renders amount in magnitude-word notation.
func compact(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	abs := math.Abs(amount)
	if abs < compactFallback {
		// Grouped digits with dot separators and no decimals; amounts
		// below 1000 come out as plain digits.
		return format(amount, DefaultOptions())
	}

	var unit Unit
	switch {
	case abs >= Triliun.Value():
		unit = Triliun
	case abs >= Miliar.Value():
		unit = Miliar
	case abs >= Juta.Value():
		unit = Juta
	default:
		unit = Ribu
	}

	var b strings.Builder
	b.Grow(growFormat)
	b.WriteString(symbol)
	b.WriteByte(' ')
	if amount < 0 {
		b.WriteByte('-')
	}
	writeScaled(&b, abs, unit)
	return b.String()
}

// writeScaled writes abs reduced by unit, rounded to one decimal place.
// Exact multiples render without a decimal marker ("2 juta", never
// "2,0 juta"): Decimal.String trims the trailing zero, so only a real
// fraction produces a comma ("1,5 juta").
func writeScaled(b *strings.Builder, abs float64, unit Unit) {
	d := decimal.NewFromFloat(abs / unit.Value()).Round(1)
	b.WriteString(strings.Replace(d.String(), ".", ",", 1))
	b.WriteByte(' ')
	b.WriteString(unit.String())
}

// parseCompact reads magnitude-word notation back into a number.
// Keywords are scanned in compactUnits priority order; the first match
// wins regardless of its position in the string.
func parseCompact(text string) (float64, error) {
	lower := strings.ToLower(text)
	for _, unit := range compactUnits {
		idx := strings.Index(lower, unit.String())
		if idx < 0 {
			continue
		}
		// Scan the lowered string: ToLower can shift byte offsets for
		// multibyte case pairs, and numeric tokens are ASCII anyway.
		tok := numericTokenAt(lower, idx, idx+len(unit.String()))
		if tok == "" {
			return 0, fmt.Errorf("rupiah: no number near %q in %q: %w", unit, text, ErrInvalid)
		}
		v, err := strconv.ParseFloat(strings.Replace(tok, ",", ".", 1), 64)
		if err != nil {
			return 0, fmt.Errorf("rupiah: bad number %q in %q: %w", tok, text, ErrInvalid)
		}
		return v * unit.Value(), nil
	}
	return parse(text)
}

// numericTokenAt extracts the contiguous numeric run adjacent to the
// keyword occupying s[start:end]. The run before the keyword wins; the
// run after is the fallback. A valid run matches -?digits[,.]?digits*.
func numericTokenAt(s string, start, end int) string {
	if tok := scanBackward(s, start); tok != "" {
		return tok
	}
	return scanForward(s, end)
}

// scanBackward collects the numeric run that ends just before position
// idx, skipping intervening spaces. Returns "" if the run is not a valid
// numeric token.
func scanBackward(s string, idx int) string {
	i := idx
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	j := i
	for j > 0 && isNumByte(s[j-1]) {
		j--
	}
	if j > 0 && s[j-1] == '-' {
		j--
	}
	return validToken(s[j:i])
}

// scanForward collects the numeric run that starts just after position
// idx, skipping intervening spaces.
func scanForward(s string, idx int) string {
	i := idx
	for i < len(s) && s[i] == ' ' {
		i++
	}
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	for j < len(s) && isNumByte(s[j]) {
		j++
	}
	return validToken(s[i:j])
}

// isNumByte reports whether c can appear inside a numeric token.
func isNumByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == ',' || c == '.'
}

// validToken returns tok if it matches -?digits[,.]?digits*, else "".
func validToken(tok string) string {
	s := tok
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" || (s[0] < '0' || s[0] > '9') {
		return ""
	}
	seps := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == ',' || s[i] == '.':
			seps++
			if seps > 1 {
				return ""
			}
		default:
			return ""
		}
	}
	return tok
}
