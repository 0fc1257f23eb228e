// Magnitude unit table shared by the compact codec and RoundTo.
package rupiah

import (
	"encoding/json"
	"fmt"
)

// Unit is a named power-of-ten magnitude used in compact notation and as
// a rounding granularity.
type Unit int

const (
	Ribu      Unit = iota // 10^3
	RatusRibu             // 10^5 (rounding granularity only)
	Juta                  // 10^6
	Miliar                // 10^9
	Triliun               // 10^12
)

// unitValues maps Unit to its magnitude.
var unitValues = [...]float64{
	Ribu:      1_000,
	RatusRibu: 100_000,
	Juta:      1_000_000,
	Miliar:    1_000_000_000,
	Triliun:   1_000_000_000_000,
}

// unitNames maps Unit to its Indonesian word form.
var unitNames = [...]string{
	Ribu:      "ribu",
	RatusRibu: "ratus ribu",
	Juta:      "juta",
	Miliar:    "miliar",
	Triliun:   "triliun",
}

// unitFromName maps word forms back to Unit values.
var unitFromName = map[string]Unit{
	"ribu":       Ribu,
	"ratus ribu": RatusRibu,
	"juta":       Juta,
	"miliar":     Miliar,
	"triliun":    Triliun,
}

// compactUnits lists the units the compact codec scans, largest first.
// RatusRibu is a rounding granularity, not a compact unit, and is absent.
var compactUnits = [...]Unit{Triliun, Miliar, Juta, Ribu}

// Value returns the unit's magnitude (Ribu.Value() == 1000).
// Out-of-range units return 0.
func (u Unit) Value() float64 {
	if int(u) >= 0 && int(u) < len(unitValues) {
		return unitValues[u]
	}
	return 0
}

// String returns the Indonesian word form of the unit.
func (u Unit) String() string {
	if int(u) >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// MarshalJSON encodes the unit as a JSON string (e.g. "juta").
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "juta") into a Unit.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	un, ok := unitFromName[s]
	if !ok {
		return fmt.Errorf("rupiah: unknown unit: %q", s)
	}
	*u = un
	return nil
}
