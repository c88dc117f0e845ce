// Reverse conversion: Kanji numeral strings to Arabic digit strings.
package kansuji

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kotoba-ai-labs/ja-num-nlp/safenum"
)

// tokenize maps each rune of s to its numeric value, e.g. 二百十一 →
// [2, 100, 10, 1]. It simultaneously builds an echo of the consumed
// input with ASCII and full-width digits normalized to Kanji digit
// glyphs. Tokenization stops at the first unrecognized rune: with
// allowSuffix the remaining bytes are returned as suffix, otherwise the
// whole call fails.
func tokenize(s string, allowSuffix bool) (tokens []uint64, kanji, suffix string, err error) {
	tokens = make([]uint64, 0, utf8.RuneCountInString(s))
	var echo strings.Builder
	echo.Grow(len(s))

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		v, ok := numeralValue(r)
		if !ok {
			break
		}
		// Half-width and full-width digits echo as their Kanji glyph;
		// true Kanji runes echo unchanged.
		switch {
		case r >= '0' && r <= '9':
			echo.WriteString(kanjiDigits[r-'0'])
		case r >= '０' && r <= '９':
			echo.WriteString(kanjiDigits[r-'０'])
		default:
			echo.WriteRune(r)
		}
		tokens = append(tokens, v)
		i += size
	}

	if i < len(s) {
		if !allowSuffix {
			return nil, "", "", fmt.Errorf("%w: unrecognized character at byte %d", ErrInvalidInput, i)
		}
		suffix = s[i:]
	}
	if len(tokens) == 0 {
		return nil, "", "", fmt.Errorf("%w: no numeral characters", ErrInvalidInput)
	}
	return tokens, echo.String(), suffix, nil
}

// reduce interprets a token sequence as a single unsigned integer. A
// sequence with no rank token (every value below 10) is read
// positionally; anything else is read with the Japanese positional
// grammar.
func reduce(tokens []uint64) (uint64, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty token sequence", ErrInvalidInput)
	}
	if slices.Max(tokens) < 10 {
		n, rest, err := reduceLeadingBase10(tokens)
		if err != nil {
			return 0, err
		}
		if len(rest) != 0 {
			return 0, fmt.Errorf("%w: trailing tokens after positional digits", ErrGrammar)
		}
		return n, nil
	}
	return reduceJapanese(tokens)
}

// reduceLeadingBase10 folds the leading run of digit tokens (values
// below 10) as base-10 positions, e.g. [1, 2, 3, 10, 100] → 123 with
// [10, 100] remaining.
func reduceLeadingBase10(tokens []uint64) (uint64, []uint64, error) {
	var n uint64
	for len(tokens) > 0 && tokens[0] < 10 {
		m, ok := safenum.MulUint64(n, 10)
		if !ok {
			return 0, nil, fmt.Errorf("%w: positional digit run", ErrOverflow)
		}
		m, ok = safenum.AddUint64(m, tokens[0])
		if !ok {
			return 0, nil, fmt.Errorf("%w: positional digit run", ErrOverflow)
		}
		n = m
		tokens = tokens[1:]
	}
	return n, tokens, nil
}

// reduceRank consumes one rank sub-match for base 10, 100, or 1000 and
// returns its value and the remaining tokens. Accepted patterns:
//
//	base 10:   [10 ...] → 10; [2 10 ...] → 20; [20 ...] → 20 (廿);
//	           [1 10 ...] is an error — 一十 is not written in Japanese.
//	base 100:  [100 ...] → 100; [2 100 ...] → 200; [1 100 ...] error;
//	           [1 2 3 ...] → 123 (positional run).
//	base 1000: [1000 ...] → 1000; [2 1000 ...] → 2000; [1 1000 ...] → 1000.
//
// Leading zero tokens are skipped and stay consumed even when the match
// fails. A positional run that reaches base*10, overflows, or is
// followed by a token below 10000 abandons the rest of the sequence.
func reduceRank(tokens []uint64, base uint64) (uint64, []uint64, bool) {
	rest := tokens
	for len(rest) > 0 && rest[0] == 0 {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return 0, rest, false
	}

	leading := rest[0]
	if leading < 10 {
		if len(rest) < 2 {
			return 0, rest, false
		}
		next := rest[1]

		if next < 10 {
			// A run of digit tokens, e.g. [1, 2, 3]: read positionally.
			n, r, err := reduceLeadingBase10(rest)
			if err != nil || n >= base*10 || (len(r) > 0 && r[0] < 10_000) {
				return 0, nil, false
			}
			return n, r, true
		}

		// Patterns like [2, 10] and [1, 1000]. A bare 一 precedes only 千.
		if next != base || (leading == 1 && base != 1000) {
			return 0, rest, false
		}
		return leading * base, rest[2:], true
	}

	// Bare rank token. 廿 (20) satisfies the tens position on its own.
	if leading == base || (base == 10 && leading == 20) {
		return leading, rest[1:], true
	}
	return 0, rest, false
}

// reduceBlock consumes the leading tokens of one ten-thousand group and
// returns its value in [0, 10000), e.g. [1 1000 2 100 3 10 4 10000 ...]
// → 1234 with [10000 ...] remaining. At least one sub-match must
// succeed, and the block must be followed by a bigger-rank token or the
// end of the sequence.
func reduceBlock(tokens []uint64) (uint64, []uint64, bool) {
	var num uint64
	matched := false
	rest := tokens
	// The sub-match sums never overflow: each contributes below 10000.
	for _, base := range [...]uint64{1000, 100, 10} {
		n, r, ok := reduceRank(rest, base)
		rest = r
		if ok {
			num += n
			matched = true
		}
	}
	if len(rest) > 0 && rest[0] < 10 {
		num += rest[0]
		rest = rest[1:]
		matched = true
	}
	if !matched || (len(rest) > 0 && rest[0] < 10_000) {
		return 0, rest, false
	}
	return num, rest, true
}

// reduceJapanese interprets a token sequence with the Japanese
// positional grammar: 一万二千三百四十五 = [1 10000 2 1000 3 100 4 10 5]
// → 12345. Bigger-rank multipliers must strictly decrease.
func reduceJapanese(tokens []uint64) (uint64, error) {
	lastBase := uint64(math.MaxUint64)
	var total uint64
	rest := tokens
	for {
		block, r, ok := reduceBlock(rest)
		if !ok {
			return 0, fmt.Errorf("%w: malformed rank sequence", ErrGrammar)
		}
		rest = r
		if len(rest) == 0 {
			total, ok = safenum.AddUint64(total, block)
			if !ok {
				return 0, fmt.Errorf("%w: final block", ErrOverflow)
			}
			return total, nil
		}

		if rest[0] >= lastBase {
			return 0, fmt.Errorf("%w: rank multipliers must decrease", ErrGrammar)
		}
		delta, ok := safenum.MulUint64(block, rest[0])
		if !ok {
			return 0, fmt.Errorf("%w: block multiplier", ErrOverflow)
		}
		total, ok = safenum.AddUint64(total, delta)
		if !ok {
			return 0, fmt.Errorf("%w: running total", ErrOverflow)
		}
		lastBase = rest[0]
		rest = rest[1:]
		if len(rest) == 0 {
			return total, nil
		}
	}
}

// normalizeNumerals wires the tokenizer and the grammar reducer into the
// public entry points and applies the leading-zero policy: unless
// trimmed, leading zero tokens reappear as '0' characters, and an
// all-zero input keeps one zero for the reduced value itself.
func normalizeNumerals(s string, trimLeadingZeros, allowSuffix bool) (kanji, arabic, suffix string, err error) {
	tokens, kanji, suffix, err := tokenize(s, allowSuffix)
	if err != nil {
		return "", "", "", err
	}

	n, err := reduce(tokens)
	if err != nil {
		return "", "", "", err
	}

	var b strings.Builder
	if !trimLeadingZeros {
		zeros := 0
		for zeros < len(tokens) && tokens[zeros] == 0 {
			zeros++
		}
		if zeros == len(tokens) {
			zeros--
		}
		for i := 0; i < zeros; i++ {
			b.WriteByte('0')
		}
	}
	b.WriteString(strconv.FormatUint(n, 10))
	return kanji, b.String(), suffix, nil
}
