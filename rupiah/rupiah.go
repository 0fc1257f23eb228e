// Package rupiah converts between numeric amounts and Indonesian currency
// text representations.
//
// The package provides conversion in both directions:
//
//   - Format renders grouped-digit notation ("Rp 1.500.000").
//   - FormatIntl renders the international convention ("1,500,000.50").
//   - Compact renders magnitude-word notation ("Rp 1,5 juta").
//   - Parse reads plain or grouped digit strings back into a number,
//     resolving which punctuation mark is the decimal separator.
//   - ParseCompact reads magnitude-word notation back into a number.
//   - RoundTo rounds an amount to a clean multiple of a magnitude unit.
//
// Formatting never fails for finite input. Parsing has a single failure
// mode — the text could not be interpreted as a number — reported as an
// error wrapping [ErrInvalid], so callers need one errors.Is check rather
// than an error taxonomy.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - NaN and infinite amounts are a caller error. Format and Compact
//     fall back to strconv rendering ("NaN", "+Inf") instead of panicking;
//     RoundTo returns such input unchanged.
//   - Separator disambiguation in Parse is heuristic for pathological
//     input: "1.234" is read as 1234 (thousands), which is
//     indistinguishable from a decimal 1.234 written in the
//     international convention.
//   - Amounts are float64; integer precision ends at 2^53.
package rupiah

import "errors"

// ErrInvalid is reported by Parse and ParseCompact when the input cannot
// be interpreted as a number. Test with errors.Is.
var ErrInvalid = errors.New("rupiah: unparseable amount")

// Options controls grouped-digit formatting. The zero value means: no
// currency symbol, no decimals, dot thousands separator, comma decimal
// separator. Use DefaultOptions for the conventional "Rp 1.500.000" form.
type Options struct {
	Symbol       bool   // prefix the "Rp" currency symbol
	SymbolSpace  bool   // space between symbol and digits ("Rp 1.500" vs "Rp1.500")
	Decimals     bool   // render the fractional part
	Precision    int    // fractional digits when Decimals is set; negative is treated as 0
	ThousandsSep string // defaults to "."
	DecimalSep   string // defaults to ","
}

// DefaultOptions returns the conventional Indonesian display options:
// "Rp " prefix, no decimals, dot thousands separator, comma decimal
// separator, precision 2.
func DefaultOptions() Options {
	return Options{
		Symbol:       true,
		SymbolSpace:  true,
		Precision:    2,
		ThousandsSep: ".",
		DecimalSep:   ",",
	}
}

// Format renders amount in grouped-digit notation with DefaultOptions:
// Format(1500000) = "Rp 1.500.000". The fractional part is truncated.
// Negative amounts place the sign after the symbol: "Rp -1.500.000".
func Format(amount float64) string {
	return format(amount, DefaultOptions())
}

// FormatWith renders amount in grouped-digit notation under opts.
// When opts.Decimals is set, the amount is rounded half away from zero to
// opts.Precision digits before grouping, so the displayed fraction always
// matches the rounded value. Without Decimals the fraction is truncated
// (toward zero).
func FormatWith(amount float64, opts Options) string {
	return format(amount, opts)
}

// FormatIntl renders amount with the international separator convention
// (comma thousands, dot decimal): FormatIntl(1500000.5, 2) = "1,500,000.50".
// frac fixes the number of fractional digits; negative is treated as 0.
func FormatIntl(amount float64, frac int) string {
	return formatIntl(amount, frac)
}

// Compact renders amount in magnitude-word notation: "Rp 1,5 juta".
// The value is reduced by the largest applicable unit and rounded to one
// decimal place; exact multiples render without a decimal marker
// ("Rp 2 juta", never "Rp 2,0 juta"). Amounts in [100 000, 1 000 000) use
// the ribu unit; amounts below 100 000 fall back to grouped-digit
// notation. Negative amounts render as "Rp -1,5 juta".
func Compact(amount float64) string {
	return compact(amount)
}

// ParseCompact reads magnitude-word notation back into a number.
// Unit keywords are matched case-insensitively in priority order
// (triliun, miliar, juta, ribu); the numeric token adjacent to the first
// matched keyword is scaled by that unit's magnitude. Input without a
// unit keyword is handed to Parse. Returns an error wrapping ErrInvalid
// when no number can be extracted.
func ParseCompact(text string) (float64, error) {
	return parseCompact(text)
}

// Parse reads a plain or separator-grouped digit string into a number.
// A leading "Rp" symbol (with optional trailing dot) and surrounding
// whitespace are ignored, as is a trailing ",-" suffix ("Rp 1.500,-").
//
// When both "." and "," occur, the rightmost occurrence is the decimal
// marker and every other occurrence a thousands separator. A lone ","
// is a decimal marker only when followed by one or two digits; a lone
// "." is a thousands separator when the string has more than two
// dot-delimited segments or the final segment has more than two digits.
// Returns an error wrapping ErrInvalid for anything else.
func Parse(text string) (float64, error) {
	return parse(text)
}
