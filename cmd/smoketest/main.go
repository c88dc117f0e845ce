package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kotoba-ai-labs/ja-num-nlp/kansuji"
)

const (
	defaultLimit = 100_000
	maxWorkers   = 4
	batchSize    = 10_000
)

// boundary values exercised in addition to the sweep range.
var boundaryValues = []uint64{
	9_999, 10_000, 10_001,
	99_999_999, 100_000_000, 100_000_001,
	999_999_999_999, 1_000_000_000_000,
	9_999_999_999_999_999, 10_000_000_000_000_000,
	18_446_744_073_709_551_615,
}

type Stats struct {
	mu            sync.Mutex
	valuesChecked int
	spellings     int
	roundTripOK   int
	roundTripFail int
	skippedDaiji  int
	separatedOK   int
	separatedFail int
	wideOK        int
	wideFail      int
	convertErrors int
	styleCounts   map[kansuji.Style]int
}

type batchState struct {
	valuesChecked int
	spellings     int
	roundTripOK   int
	roundTripFail int
	skippedDaiji  int
	separatedOK   int
	separatedFail int
	wideOK        int
	wideFail      int
	convertErrors int
	styleCounts   map[kansuji.Style]int
}

func main() {
	limit := uint64(defaultLimit)
	if len(os.Args) > 1 {
		n, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: %s [limit]\n", os.Args[0])
			os.Exit(1)
		}
		limit = n
	}

	stats := &Stats{
		styleCounts: make(map[kansuji.Style]int),
	}

	fmt.Fprintf(os.Stderr, "Sweeping 0..%d plus %d boundary values\n", limit, len(boundaryValues))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for lo := uint64(0); lo <= limit; lo += batchSize {
		hi := lo + batchSize - 1
		if hi > limit || hi < lo {
			hi = limit
		}
		wg.Add(1)
		semaphore <- struct{}{}
		go func(lo, hi uint64) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processBatch(lo, hi, stats)
		}(lo, hi)
	}

	wg.Wait()

	state := newBatchState()
	for _, n := range boundaryValues {
		checkValue(n, state)
	}
	mergeBatchState(state, stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.roundTripFail > 0 || stats.separatedFail > 0 || stats.wideFail > 0 || stats.convertErrors > 0 {
		os.Exit(1)
	}
}

func newBatchState() *batchState {
	return &batchState{
		styleCounts: make(map[kansuji.Style]int),
	}
}

func processBatch(lo, hi uint64, stats *Stats) {
	state := newBatchState()
	for n := lo; ; n++ {
		checkValue(n, state)
		if n == hi {
			break
		}
	}
	mergeBatchState(state, stats)
}

func checkValue(n uint64, state *batchState) {
	input := strconv.FormatUint(n, 10)
	state.valuesChecked++

	results, err := kansuji.ToKanji(input)
	if err != nil {
		state.convertErrors++
		fmt.Fprintf(os.Stderr, "CONVERT_FAIL: ToKanji(%s): %v\n", input, err)
		return
	}

	for _, r := range results {
		state.styleCounts[r.Style]++
		if r.Style != kansuji.StyleKanji && r.Style != kansuji.StyleOldKanji {
			continue
		}
		// Daiji spellings containing 壱拾 or 壱百 tokenize to the same
		// sequences as the invalid 一十 and 一百 and cannot re-parse.
		if r.Style == kansuji.StyleOldKanji &&
			(strings.Contains(r.Text, "壱拾") || strings.Contains(r.Text, "壱百")) {
			state.skippedDaiji++
			continue
		}
		state.spellings++
		_, arabic, err := kansuji.Normalize(r.Text, true)
		if err != nil {
			state.roundTripFail++
			fmt.Fprintf(os.Stderr, "PARSE_FAIL: Normalize(%s): %v\n", r.Text, err)
			continue
		}
		if arabic != input {
			state.roundTripFail++
			fmt.Fprintf(os.Stderr, "ROUNDTRIP_FAIL: %s -> %s -> %s\n", input, r.Text, arabic)
			continue
		}
		state.roundTripOK++
	}

	checkSeparated(input, n, state)
	checkWide(input, state)
}

// checkSeparated verifies that stripping the group separators from the
// half-width separated form recovers the original digit string.
func checkSeparated(input string, n uint64, state *batchState) {
	results, err := kansuji.ToSeparated(input)
	if n == 0 {
		if err == nil {
			state.separatedFail++
			fmt.Fprintf(os.Stderr, "SEPARATED_FAIL: ToSeparated(0) unexpectedly succeeded\n")
		}
		return
	}
	if err != nil {
		state.separatedFail++
		fmt.Fprintf(os.Stderr, "SEPARATED_FAIL: ToSeparated(%s): %v\n", input, err)
		return
	}
	stripped := strings.ReplaceAll(results[0].Text, ",", "")
	if stripped != input {
		state.separatedFail++
		fmt.Fprintf(os.Stderr, "SEPARATED_FAIL: %s -> %s\n", input, results[0].Text)
		return
	}
	state.separatedOK++
}

// checkWide verifies that every per-digit form has the same rune count
// as the input and that the full-width form is full-width digits only.
func checkWide(input string, state *batchState) {
	results, err := kansuji.ToWide(input)
	if err != nil {
		state.wideFail++
		fmt.Fprintf(os.Stderr, "WIDE_FAIL: ToWide(%s): %v\n", input, err)
		return
	}
	for _, r := range results {
		runes := []rune(r.Text)
		if len(runes) != len(input) {
			state.wideFail++
			fmt.Fprintf(os.Stderr, "WIDE_FAIL: %s -> %s (rune count mismatch)\n", input, r.Text)
			return
		}
		if r.Style != kansuji.StyleDefault {
			continue
		}
		for _, rn := range runes {
			if rn < '０' || rn > '９' {
				state.wideFail++
				fmt.Fprintf(os.Stderr, "WIDE_FAIL: %s -> %s (unexpected rune %q)\n", input, r.Text, rn)
				return
			}
		}
	}
	state.wideOK++
}

func mergeBatchState(state *batchState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.valuesChecked += state.valuesChecked
	stats.spellings += state.spellings
	stats.roundTripOK += state.roundTripOK
	stats.roundTripFail += state.roundTripFail
	stats.skippedDaiji += state.skippedDaiji
	stats.separatedOK += state.separatedOK
	stats.separatedFail += state.separatedFail
	stats.wideOK += state.wideOK
	stats.wideFail += state.wideFail
	stats.convertErrors += state.convertErrors

	for style, count := range state.styleCounts {
		stats.styleCounts[style] += count
	}
}

func printStats(stats *Stats) {
	fmt.Printf("Values checked:          %d\n", stats.valuesChecked)
	fmt.Printf("Kanji spellings:         %d\n", stats.spellings)
	fmt.Printf("Round trip OK:           %d\n", stats.roundTripOK)
	fmt.Printf("Round trip FAIL:         %d\n", stats.roundTripFail)
	fmt.Printf("Daiji spellings skipped: %d\n", stats.skippedDaiji)
	fmt.Printf("Separated OK:            %d\n", stats.separatedOK)
	fmt.Printf("Separated FAIL:          %d\n", stats.separatedFail)
	fmt.Printf("Full-width OK:           %d\n", stats.wideOK)
	fmt.Printf("Full-width FAIL:         %d\n", stats.wideFail)
	fmt.Printf("Convert errors:          %d\n", stats.convertErrors)
	fmt.Println()

	totalSpellings := 0
	for _, count := range stats.styleCounts {
		totalSpellings += count
	}

	fmt.Println("Style distribution:")
	printStyleStats("Arabic (half)", kansuji.StyleArabicAndKanjiHalf, stats.styleCounts, totalSpellings)
	printStyleStats("Arabic (full)", kansuji.StyleArabicAndKanjiFull, stats.styleCounts, totalSpellings)
	printStyleStats("Kanji", kansuji.StyleKanji, stats.styleCounts, totalSpellings)
	printStyleStats("Daiji", kansuji.StyleOldKanji, stats.styleCounts, totalSpellings)
}

func printStyleStats(label string, style kansuji.Style, counts map[kansuji.Style]int, total int) {
	count := counts[style]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}
