// Tests for formatting: Format, FormatWith, FormatIntl, Compact, RoundTo.
package rupiah

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "Rp 0"},
		{"small", 500, "Rp 500"},
		{"thousand", 1500, "Rp 1.500"},
		{"million", 1500000, "Rp 1.500.000"},
		{"end to end", 1234567, "Rp 1.234.567"},
		{"billion", 2500000000, "Rp 2.500.000.000"},
		{"negative", -1500000, "Rp -1.500.000"},
		{"fraction truncated", 1500.75, "Rp 1.500"},
		{"negative fraction truncated toward zero", -0.5, "Rp 0"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Format(tt.input)
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	t.Parallel()

	bare := Options{ThousandsSep: ".", DecimalSep: ","}
	withDec := Options{Decimals: true, Precision: 2, ThousandsSep: ".", DecimalSep: ","}

	cases := []struct {
		name  string
		input float64
		opts  Options
		want  string
	}{
		{"no symbol", 1500000, bare, "1.500.000"},
		{"rounded decimals", 1500000.556, withDec, "1.500.000,56"},
		{"half away from zero", 0.005, withDec, "0,01"},
		{"half away from zero above one", 2.675, withDec, "2,68"},
		{"padded decimals", 1500000.5, withDec, "1.500.000,50"},
		{"negative decimals", -1500000.556, withDec, "-1.500.000,56"},
		{"negative zero suppressed", -0.001, withDec, "0,00"},
		{"carry into next group", 999.995, withDec, "1.000,00"},
		{"precision zero rounds", 1500.5, Options{Decimals: true}, "1.501"},
		{"empty separators default", 1500000.5, Options{Decimals: true, Precision: 1}, "1.500.000,5"},
		{"international separators", 1500000.5, Options{Decimals: true, Precision: 2, ThousandsSep: ",", DecimalSep: "."}, "1,500,000.50"},
		{"symbol no space", 1500, Options{Symbol: true, ThousandsSep: ".", DecimalSep: ","}, "Rp1.500"},
		{"symbol before sign", -1500, Options{Symbol: true, SymbolSpace: true, ThousandsSep: ".", DecimalSep: ","}, "Rp -1.500"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatWith(tt.input, tt.opts)
			if got != tt.want {
				t.Errorf("FormatWith(%v, %+v) = %q, want %q", tt.input, tt.opts, got, tt.want)
			}
		})
	}
}

func TestFormatIntl(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input float64
		frac  int
		want  string
	}{
		{"grouped", 1500000, 0, "1,500,000"},
		{"grouped decimals", 1500000.5, 2, "1,500,000.50"},
		{"negative", -1234567, 0, "-1,234,567"},
		{"small", 500, 0, "500"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatIntl(tt.input, tt.frac)
			if got != tt.want {
				t.Errorf("FormatIntl(%v, %d) = %q, want %q", tt.input, tt.frac, got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input float64
		want  string
	}{
		{"plain digits", 500, "Rp 500"},
		{"grouped below ribu threshold", 99999, "Rp 99.999"},
		{"grouped thousand", 1500, "Rp 1.500"},
		{"ribu", 150000, "Rp 150 ribu"},
		{"ribu with fraction", 150500, "Rp 150,5 ribu"},
		{"ribu boundary rounds up", 999999, "Rp 1000 ribu"},
		{"juta exact", 2000000, "Rp 2 juta"},
		{"juta no trailing zero", 1000000, "Rp 1 juta"},
		{"juta with fraction", 1500000, "Rp 1,5 juta"},
		{"juta rounded", 1234567, "Rp 1,2 juta"},
		{"juta half rounds away", 1950000, "Rp 2 juta"},
		{"miliar", 2500000000, "Rp 2,5 miliar"},
		{"triliun", 1000000000000, "Rp 1 triliun"},
		{"negative", -1500000, "Rp -1,5 juta"},
		{"zero", 0, "Rp 0"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Compact(tt.input)
			if got != tt.want {
				t.Errorf("Compact(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCompactGrammar verifies exact unit multiples never show a decimal
// marker, for every unit.
func TestCompactGrammar(t *testing.T) {
	t.Parallel()

	for _, unit := range compactUnits {
		unit := unit
		for k := float64(1); k < 10; k++ {
			amount := k * unit.Value()
			if amount < compactFallback {
				continue
			}
			got := Compact(amount)
			want := fmt.Sprintf("Rp %d %s", int64(k), unit)
			if got != want {
				t.Errorf("Compact(%v) = %q, want %q", amount, got, want)
			}
		}
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input float64
		unit  Unit
		want  float64
	}{
		{"half rounds away", 1500, Ribu, 2000},
		{"below half rounds down", 1499, Ribu, 1000},
		{"zero", 0, Ribu, 0},
		{"negative half rounds away", -1500, Ribu, -2000},
		{"ratus ribu", 150000, RatusRibu, 200000},
		{"ratus ribu down", 149999, RatusRibu, 100000},
		{"juta", 1234567, Juta, 1000000},
		{"juta up", 1500000, Juta, 2000000},
		{"already clean", 2000, Ribu, 2000},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RoundTo(tt.input, tt.unit)
			if got != tt.want {
				t.Errorf("RoundTo(%v, %v) = %v, want %v", tt.input, tt.unit, got, tt.want)
			}
		})
	}
}

func TestUnitJSON(t *testing.T) {
	t.Parallel()

	for _, unit := range []Unit{Ribu, RatusRibu, Juta, Miliar, Triliun} {
		unit := unit
		data, err := unit.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v): %v", unit, err)
		}
		var got Unit
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if got != unit {
			t.Errorf("round-trip %v = %v", unit, got)
		}
	}

	var u Unit
	if err := u.UnmarshalJSON([]byte(`"gajillion"`)); err == nil {
		t.Error("UnmarshalJSON accepted unknown unit")
	}
}

func ExampleFormat() {
	fmt.Println(Format(1234567))
	// Output: Rp 1.234.567
}

func ExampleFormatWith() {
	opts := Options{Decimals: true, Precision: 2, ThousandsSep: ".", DecimalSep: ","}
	fmt.Println(FormatWith(1500000.556, opts))
	// Output: 1.500.000,56
}

func ExampleCompact() {
	fmt.Println(Compact(1500000))
	// Output: Rp 1,5 juta
}

func ExampleRoundTo() {
	fmt.Println(RoundTo(1500, Ribu))
	// Output: 2000
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Format(1234567.89)
	}
}

func BenchmarkCompact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Compact(1234567.89)
	}
}

func BenchmarkRoundTo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RoundTo(1234567, Juta)
	}
}
