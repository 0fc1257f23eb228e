package rupiah

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Format(1234567)
			Format(-1500000)
			FormatWith(1500000.556, Options{Decimals: true, Precision: 2})
			FormatIntl(1500000.5, 2)
			Compact(1500000)
			Compact(-2500000000)
			RoundTo(1500, Ribu)
			Parse("Rp 1.500.000,50")
			ParseCompact("Rp 1,5 juta")
		}()
	}

	wg.Wait()
}

// TestParseAdversarialInput verifies the parsers reject hostile input
// without panicking.
func TestParseAdversarialInput(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		name string
		text string
	}{
		{"long digits", strings.Repeat("9", 10000)},
		{"long separators", strings.Repeat(".", 10000)},
		{"alternating", strings.Repeat("1.", 10000)},
		{"long keyword run", strings.Repeat("juta ", 10000)},
		{"nul bytes", string([]byte{0, 0, 0})},
		{"invalid utf8", "\xff\xfe1.500"},
		{"rtl override", "‮1.500"},
		{"nested signs", "--1.500"},
	}

	for _, tt := range inputs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q…) panicked: %v", tt.text[:min(len(tt.text), 20)], r)
				}
			}()
			_, _ = Parse(tt.text)
			_, _ = ParseCompact(tt.text)
		})
	}
}

// TestFormatExtremeValues verifies formatting handles edge-case floats.
func TestFormatExtremeValues(t *testing.T) {
	t.Parallel()

	values := []struct {
		name  string
		input float64
	}{
		{"max float", 1.7976931348623157e308},
		{"min positive", 5e-324},
		{"negative max", -1.7976931348623157e308},
		{"just below int64 precision", 9007199254740991},
	}

	for _, tt := range values {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("formatting %v panicked: %v", tt.input, r)
				}
			}()
			_ = Format(tt.input)
			_ = Compact(tt.input)
			_ = RoundTo(tt.input, Juta)
		})
	}
}
