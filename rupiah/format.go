// Grouped-digit formatting for Indonesian and international conventions.
package rupiah

import (
	"math"
	"strconv"
	"strings"

	"github.com/choiruladamm/indo-dev-utils/internal/digits"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	symbol     = "Rp"
	groupSize  = 3  // digits per thousands group
	growFormat = 32 // estimated bytes for a formatted amount
)

// format renders amount in grouped-digit notation under opts.
func format(amount float64, opts Options) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	if opts.ThousandsSep == "" {
		opts.ThousandsSep = "."
	}
	if opts.DecimalSep == "" {
		opts.DecimalSep = ","
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}

	negative := amount < 0
	abs := math.Abs(amount)

	var intPart, fracPart string
	if opts.Decimals && opts.Precision > 0 {
		// Round before grouping so the displayed fraction always matches
		// the rounded value. Decimal.Round is half away from zero.
		d := decimal.NewFromFloat(abs).Round(int32(opts.Precision))
		intPart, fracPart, _ = strings.Cut(d.StringFixed(int32(opts.Precision)), ".")
	} else if opts.Decimals {
		intPart = decimal.NewFromFloat(abs).Round(0).String()
	} else {
		intPart = decimal.NewFromFloat(abs).Truncate(0).String()
	}

	// Suppress the sign when everything rounded or truncated away ("-0").
	if negative && intPart == "0" && digits.Zeros(fracPart) {
		negative = false
	}

	var b strings.Builder
	b.Grow(growFormat)

	if opts.Symbol {
		b.WriteString(symbol)
		if opts.SymbolSpace {
			b.WriteByte(' ')
		}
	}
	if negative {
		b.WriteByte('-')
	}
	writeGrouped(&b, intPart, opts.ThousandsSep)
	if fracPart != "" {
		b.WriteString(opts.DecimalSep)
		b.WriteString(fracPart)
	}

	return b.String()
}

// writeGrouped writes the digit string s into b with sep inserted every
// three digits from the right. s must be plain digits.
func writeGrouped(b *strings.Builder, s string, sep string) {
	lead := len(s) % groupSize
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += groupSize {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+groupSize])
	}
}

// intlPrinter renders numbers with the international grouping convention
// (comma thousands, dot decimal). Printers are safe for concurrent use.
var intlPrinter = message.NewPrinter(language.English)

// formatIntl renders amount with comma thousands separators and a fixed
// number of fractional digits.
func formatIntl(amount float64, frac int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	if frac < 0 {
		frac = 0
	}
	return intlPrinter.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(frac),
		number.MaxFractionDigits(frac),
	))
}
