// Package nik parses and validates Indonesian identity numbers (Nomor
// Induk Kependudukan).
//
// A NIK is sixteen digits: two-digit province, regency, and district
// codes, a DDMMYY birth date (women carry the day of month offset by
// 40), and a four-digit serial. Parse decodes those fields; IsValid is
// the boolean convenience wrapper.
//
// Two-digit birth years are resolved against a reference time: years at
// or before the reference's two-digit year land in the 2000s, the rest
// in the 1900s. Parse uses the current time; ParseAt takes an explicit
// reference for deterministic behavior.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Only the province code is checked against a table; regency and
//     district codes are validated for digit shape only.
//   - The birth date must be calendar-valid, but nothing guards against
//     a date in the future relative to the reference time beyond the
//     century pivot.
package nik

import (
	"fmt"
	"time"

	"github.com/choiruladamm/indo-dev-utils/internal/digits"
)

// nikLen is the number of digits in a NIK.
const nikLen = 16

// femaleDayOffset is added to the day of month for women.
const femaleDayOffset = 40

// Gender is the holder's registered gender, encoded in the birth day.
type Gender int

const (
	Male Gender = iota
	Female
)

// genderNames maps Gender values to their string names.
var genderNames = [...]string{
	Male:   "male",
	Female: "female",
}

// String returns the name of the gender.
func (g Gender) String() string {
	if int(g) >= 0 && int(g) < len(genderNames) {
		return genderNames[g]
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// Info holds the fields decoded from a NIK.
type Info struct {
	ProvinceCode string    // two digits, e.g. "31"
	Province     string    // resolved name, e.g. "DKI Jakarta"
	RegencyCode  string    // two digits
	DistrictCode string    // two digits
	BirthDate    time.Time // midnight UTC
	Gender       Gender
	Serial       string // four digits
}

// Parse decodes a NIK, resolving the two-digit birth year against the
// current time. Spaces and dots in the input are ignored.
func Parse(s string) (Info, error) {
	return parse(s, time.Now().UTC())
}

// ParseAt decodes a NIK, resolving the two-digit birth year against ref.
func ParseAt(s string, ref time.Time) (Info, error) {
	return parse(s, ref)
}

// IsValid reports whether s is a well-formed NIK with a known province
// code and a calendar-valid birth date.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parse decodes and validates the sixteen digit groups.
func parse(s string, ref time.Time) (Info, error) {
	clean := digits.Strip(s)
	if len(clean) != nikLen {
		return Info{}, fmt.Errorf("nik: want %d digits, got %d", nikLen, len(clean))
	}

	provCode := clean[0:2]
	province, ok := provinceName(provCode)
	if !ok {
		return Info{}, fmt.Errorf("nik: unknown province code %q", provCode)
	}

	day := int(clean[6]-'0')*10 + int(clean[7]-'0')
	month := int(clean[8]-'0')*10 + int(clean[9]-'0')
	yy := int(clean[10]-'0')*10 + int(clean[11]-'0')

	gender := Male
	if day > femaleDayOffset {
		gender = Female
		day -= femaleDayOffset
	}

	year := 1900 + yy
	if yy <= ref.Year()%100 {
		year = 2000 + yy
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || birth.Month() != time.Month(month) || birth.Day() != day {
		return Info{}, fmt.Errorf("nik: invalid birth date %02d-%02d-%02d", day, month, yy)
	}

	return Info{
		ProvinceCode: provCode,
		Province:     province,
		RegencyCode:  clean[2:4],
		DistrictCode: clean[4:6],
		BirthDate:    birth,
		Gender:       gender,
		Serial:       clean[12:16],
	}, nil
}
