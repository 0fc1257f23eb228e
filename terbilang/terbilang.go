// Package terbilang spells numeric amounts fully in Indonesian words,
// the form used on checks and receipts.
//
// Two entry points are provided:
//
//   - Convert produces the conventional form with the currency suffix:
//     Convert(1500) = "seribu lima ratus rupiah".
//   - ConvertWith takes Options to drop the suffix or capitalize the
//     first letter.
//
// Irregular forms follow standard usage: "seratus" (not "satu ratus"),
// "seribu" (not "satu ribu"), and the -belas teens ("sebelas",
// "dua belas"). Counts of one at juta and above use the regular form
// ("satu juta").
//
// The fractional part of an amount is always discarded — terbilang never
// describes fractional rupiah. Negative amounts are prefixed with
// "minus".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Amounts with absolute value of 10^18 or more return an empty
//     string.
//   - Amounts are float64, so integer precision ends at 2^53; beyond
//     that the spelled value reflects the nearest representable float.
//   - Amounts of 10^15 and above spell the triliun count recursively
//     ("seribu triliun"), a best-effort extension past the named units.
package terbilang

// Options controls the spelled-out form.
type Options struct {
	Uppercase    bool // capitalize the first letter of the result
	WithCurrency bool // append the " rupiah" suffix
}

// Convert returns amount spelled in Indonesian words with the currency
// suffix: Convert(1000) = "seribu rupiah".
func Convert(amount float64) string {
	return convert(amount, Options{WithCurrency: true})
}

// ConvertWith returns amount spelled in Indonesian words under opts.
func ConvertWith(amount float64, opts Options) string {
	return convert(amount, opts)
}
