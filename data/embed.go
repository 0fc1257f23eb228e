// Package data embeds the static lookup tables.
package data

import _ "embed"

// Provinces holds the NIK province-code table, one "code<TAB>name" line
// per province.
//
//go:embed provinces.txt
var Provinces string
