// smoketest runs a corpus of amounts through every converter and checks
// the round-trip invariants. Input is a text file with one numeric
// amount per line ("-" reads stdin); lines starting with '#' are
// skipped.
//
// Usage:
//
//	smoketest <amounts-file>
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/choiruladamm/indo-dev-utils/rupiah"
	"github.com/choiruladamm/indo-dev-utils/terbilang"
	"github.com/dustin/go-humanize"
)

const expectedArgs = 2

// compactTolerance is the relative error allowed for the compact
// round-trip (one decimal place of the display unit).
const compactTolerance = 0.06

type stats struct {
	lines        int64
	skipped      int64
	groupedOK    int64
	groupedFail  int64
	compactOK    int64
	compactFail  int64
	wordsOK      int64
	wordsFail    int64
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <amounts-file>\n", os.Args[0])
		os.Exit(1)
	}

	in := os.Stdin
	if os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	start := time.Now()
	var st stats

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st.lines++

		amount, err := strconv.ParseFloat(line, 64)
		if err != nil {
			st.skipped++
			fmt.Fprintf(os.Stderr, "SKIP %q: %v\n", line, err)
			continue
		}

		checkGrouped(amount, &st)
		checkCompact(amount, &st)
		checkWords(amount, &st)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(&st)

	if st.groupedFail+st.compactFail+st.wordsFail > 0 {
		os.Exit(1)
	}
}

// checkGrouped verifies Parse recovers the truncated amount from the
// default grouped form.
func checkGrouped(amount float64, st *stats) {
	text := rupiah.Format(amount)
	got, err := rupiah.Parse(text)
	want := math.Trunc(amount)
	if err != nil || got != want {
		st.groupedFail++
		fmt.Fprintf(os.Stderr, "FAIL grouped %v -> %q -> %v (%v)\n", amount, text, got, err)
		return
	}
	st.groupedOK++
}

// checkCompact verifies ParseCompact recovers the amount within the
// one-decimal display tolerance.
func checkCompact(amount float64, st *stats) {
	text := rupiah.Compact(amount)
	got, err := rupiah.ParseCompact(text)
	tol := math.Abs(amount) * compactTolerance
	if tol < 1 {
		tol = 1
	}
	if err != nil || math.Abs(got-amount) > tol {
		st.compactFail++
		fmt.Fprintf(os.Stderr, "FAIL compact %v -> %q -> %v (%v)\n", amount, text, got, err)
		return
	}
	st.compactOK++
}

// checkWords verifies terbilang produces a non-empty, single-spaced
// spelling for in-range amounts.
func checkWords(amount float64, st *stats) {
	text := terbilang.Convert(amount)
	if math.Abs(amount) >= 1e18 {
		if text != "" {
			st.wordsFail++
			fmt.Fprintf(os.Stderr, "FAIL words %v out of range but got %q\n", amount, text)
		} else {
			st.wordsOK++
		}
		return
	}
	if text == "" || strings.Contains(text, "  ") {
		st.wordsFail++
		fmt.Fprintf(os.Stderr, "FAIL words %v -> %q\n", amount, text)
		return
	}
	st.wordsOK++
}

func printStats(st *stats) {
	fmt.Printf("Lines:      %s (%s skipped)\n", humanize.Comma(st.lines), humanize.Comma(st.skipped))
	fmt.Printf("Grouped:    %s ok, %s failed\n", humanize.Comma(st.groupedOK), humanize.Comma(st.groupedFail))
	fmt.Printf("Compact:    %s ok, %s failed\n", humanize.Comma(st.compactOK), humanize.Comma(st.compactFail))
	fmt.Printf("Terbilang:  %s ok, %s failed\n", humanize.Comma(st.wordsOK), humanize.Comma(st.wordsFail))
}
