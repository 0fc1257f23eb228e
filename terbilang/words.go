// Word tables for Indonesian number spelling.
package terbilang

const (
	maxAbs  int64 = 1_000_000_000_000_000_000
	hundred int64 = 100

	wordMinus   = "minus"
	wordRupiah  = "rupiah"
	wordRatus   = "ratus"
	wordPuluh   = "puluh"
	wordSeratus = "seratus"
	wordSeribu  = "seribu"
)

// ones is indexed by digit; "nol" appears only for a whole amount of zero.
var ones = [10]string{
	"nol",
	"satu",
	"dua",
	"tiga",
	"empat",
	"lima",
	"enam",
	"tujuh",
	"delapan",
	"sembilan",
}

// teens is indexed by n-10 for n in [10, 19]. These are irregular:
// "sebelas" and the -belas forms, never "satu belas".
var teens = [10]string{
	"sepuluh",
	"sebelas",
	"dua belas",
	"tiga belas",
	"empat belas",
	"lima belas",
	"enam belas",
	"tujuh belas",
	"delapan belas",
	"sembilan belas",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// ratus (100) is handled within group conversion and is not listed here.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000, word: "triliun"},
	{value: 1_000_000_000, word: "miliar"},
	{value: 1_000_000, word: "juta"},
	{value: 1_000, word: "ribu"},
}
