// Abbreviation dictionary for Indonesian chat shorthand.
package idtext

// abbreviations maps lowercase shorthand to full forms.
var abbreviations = map[string]string{
	"yg":   "yang",
	"dgn":  "dengan",
	"dg":   "dengan",
	"utk":  "untuk",
	"tdk":  "tidak",
	"gak":  "tidak",
	"sdh":  "sudah",
	"udh":  "sudah",
	"blm":  "belum",
	"dpt":  "dapat",
	"krn":  "karena",
	"dr":   "dari",
	"kpd":  "kepada",
	"pd":   "pada",
	"jgn":  "jangan",
	"jg":   "juga",
	"tp":   "tapi",
	"klo":  "kalau",
	"kl":   "kalau",
	"hrs":  "harus",
	"bs":   "bisa",
	"org":  "orang",
	"thn":  "tahun",
	"bln":  "bulan",
	"tgl":  "tanggal",
	"sm":   "sama",
	"dll":  "dan lain-lain",
	"dsb":  "dan sebagainya",
	"spt":  "seperti",
	"skrg": "sekarang",
	"bgt":  "banget",
	"trs":  "terus",
}
