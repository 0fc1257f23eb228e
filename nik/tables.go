// Province-code table, parsed once from the embedded data.
package nik

import (
	"strings"

	"github.com/choiruladamm/indo-dev-utils/data"
)

// provinces maps two-digit province codes to names, populated by init().
var provinces map[string]string

func init() {
	// Parse data.Provinces: each line is <code>\t<name>.
	lines := strings.Split(data.Provinces, "\n")
	provinces = make(map[string]string, len(lines))
	for _, line := range lines {
		code, name, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		provinces[code] = name
	}
}

// provinceName resolves a two-digit province code.
func provinceName(code string) (string, bool) {
	name, ok := provinces[code]
	return name, ok
}
