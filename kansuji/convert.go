// Forward converters: Arabic digit strings to Japanese written forms.
package kansuji

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/kotoba-ai-labs/ja-num-nlp/safenum"
)

const growKanji = 64 // estimated bytes for one composed Kanji spelling

// variation bundles one glyph set with its output metadata.
type variation struct {
	digits      []string
	description string
	separator   string
	point       string
	style       Style
}

// kanjiVariations drives ToKanji. Order matters: results are emitted in
// this order, Daiji last so its extra spellings trail the list.
var kanjiVariations = []variation{
	{digits: halfWidthDigits[:], description: descArabic, style: StyleArabicAndKanjiHalf},
	{digits: fullWidthDigits[:], description: descArabic, style: StyleArabicAndKanjiFull},
	{digits: kanjiDigits[:], description: descKanji, style: StyleKanji},
	{digits: oldKanjiDigits[:], description: descOldKanji, style: StyleOldKanji},
}

// toKanji composes positional Kanji numeral spellings for a decimal
// integer string.
func toKanji(s string) ([]Result, error) {
	if !IsDecimalInteger(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidInput, s)
	}

	// A number that is all zeros has a single spelling, the Daiji 零.
	if allZeros(s) {
		return []Result{{Text: oldKanjiZero, Description: descOldKanji, Style: StyleOldKanji}}, nil
	}

	if len(s) > digitsPerBigRank*len(kanjiBiggerRanks) {
		return nil, fmt.Errorf("%w: %d digits exceed the %s rank", ErrUnsupported, len(s), kanjiBiggerRanks[len(kanjiBiggerRanks)-1])
	}

	// Left-pad with zeros to a multiple of the group width, then split
	// into 4-digit groups, least significant first.
	pad := (digitsPerBigRank - len(s)%digitsPerBigRank) % digitsPerBigRank
	padded := strings.Repeat("0", pad) + s
	groups := make([]string, 0, len(padded)/digitsPerBigRank)
	for i := len(padded) - digitsPerBigRank; i >= 0; i -= digitsPerBigRank {
		groups = append(groups, padded[i:i+digitsPerBigRank])
	}

	results := make([]Result, 0, len(kanjiVariations)+3)
	for _, v := range kanjiVariations {
		arabicDigits := v.style == StyleArabicAndKanjiHalf || v.style == StyleArabicAndKanjiFull

		// A single group has no bigger-rank segmentation to illustrate.
		if len(groups) == 1 && arabicDigits {
			continue
		}

		ranks, biggerRanks := kanjiRanks[:], kanjiBiggerRanks[:]
		if v.style == StyleOldKanji {
			ranks, biggerRanks = oldKanjiRanks[:], oldKanjiBiggerRanks[:]
		}

		var b strings.Builder
		b.Grow(growKanji)
		for g := len(groups) - 1; g >= 0; g-- {
			seg := groups[g]
			var sb strings.Builder
			leading := true
			for i := 0; i < len(seg); i++ {
				d := seg[i] - '0'
				if leading && d == 0 {
					continue
				}
				leading = false
				if arabicDigits {
					sb.WriteString(v.digits[d])
					continue
				}
				if d == 0 {
					continue
				}
				// 一 is omitted before a rank word (二千百十一, not
				// 二千一百一十一), except at the ones position. Daiji
				// spells 壱 at every position.
				if v.style == StyleOldKanji || i == digitsPerBigRank-1 || d != 1 {
					sb.WriteString(v.digits[d])
				}
				sb.WriteString(ranks[digitsPerBigRank-i])
			}
			if sb.Len() > 0 {
				b.WriteString(sb.String())
				b.WriteString(biggerRanks[g])
			}
		}

		text := b.String()
		results = append(results, Result{Text: text, Description: v.description, Style: v.style})

		if v.style == StyleOldKanji {
			// 弐拾 contracts to the single glyph 廿; emit the contracted
			// spelling as well when it applies.
			if contracted := strings.ReplaceAll(text, oldTwoTen, oldTwenty); contracted != text {
				results = append(results, Result{Text: contracted, Description: v.description, Style: v.style})
			}
			// 10 and 1000 also have bare single-glyph Daiji spellings.
			if padded == "0010" {
				results = append(results, Result{Text: "拾", Description: v.description, Style: v.style})
			}
			if padded == "1000" {
				results = append(results, Result{Text: "阡", Description: v.description, Style: v.style})
			}
		}
	}

	return results, nil
}

// separatedVariations drives ToSeparated.
var separatedVariations = []variation{
	{digits: halfWidthDigits[:], description: descArabic, separator: ",", point: ".", style: StyleSeparatedHalf},
	{digits: fullWidthDigits[:], description: descArabic, separator: "，", point: "．", style: StyleSeparatedFull},
}

// toSeparated renders a decimal number string with thousands separators.
func toSeparated(s string) ([]Result, error) {
	if !IsDecimalNumber(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidInput, s)
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		// frac keeps the decimal point with the fractional digits.
		intPart, frac = s[:i], s[i:]
	}

	// No grouping for an empty integral part or one with a suppressed
	// leading zero.
	if intPart == "" || intPart[0] == '0' {
		return nil, fmt.Errorf("%w: integral part of %q does not start with a nonzero digit", ErrInvalidInput, s)
	}

	results := make([]Result, 0, len(separatedVariations))
	for _, v := range separatedVariations {
		var b strings.Builder
		b.Grow(len(intPart)*3 + len(frac)*3)
		for j := 0; j < len(intPart); j++ {
			if j != 0 && (len(intPart)-j)%3 == 0 {
				b.WriteString(v.separator)
			}
			b.WriteString(v.digits[intPart[j]-'0'])
		}
		if frac != "" {
			b.WriteString(v.point)
			for j := 1; j < len(frac); j++ {
				b.WriteString(v.digits[frac[j]-'0'])
			}
		}
		results = append(results, Result{Text: b.String(), Description: v.description, Style: v.style})
	}
	return results, nil
}

// toWide substitutes one glyph per digit: Kanji digits and, via East
// Asian width mapping, full-width digits. Half-width output is omitted —
// it would echo the input.
func toWide(s string) ([]Result, error) {
	if !IsDecimalInteger(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidInput, s)
	}

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		b.WriteString(kanjiDigits[s[i]-'0'])
	}

	return []Result{
		{Text: b.String(), Description: descKanji, Style: StyleKanjiArabic},
		{Text: width.Widen.String(s), Description: descArabic, Style: StyleDefault},
	}, nil
}

// scriptVariations drives ScriptVariants.
var scriptVariations = []variation{
	{digits: halfWidthDigits[:], description: descArabic, style: StyleDefault},
	{digits: fullWidthDigits[:], description: descArabic, style: StyleDefault},
	{digits: kanjiDigits[:], description: descKanji, style: StyleKanjiArabic},
	{digits: oldKanjiDigits[:], description: descOldKanji, style: StyleOldKanji},
}

// scriptVariants maps every digit of s through each digit glyph set. A
// glyph set without a glyph for one of the digits is skipped (Daiji has
// no zero).
func scriptVariants(s string) ([]Result, error) {
	if !IsDecimalInteger(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidInput, s)
	}

	results := make([]Result, 0, len(scriptVariations))
variants:
	for _, v := range scriptVariations {
		var b strings.Builder
		b.Grow(len(s) * 3)
		for i := 0; i < len(s); i++ {
			g := v.digits[s[i]-'0']
			if g == "" {
				continue variants
			}
			b.WriteString(g)
		}
		results = append(results, Result{Text: b.String(), Description: v.description, Style: v.style})
	}
	return results, nil
}

// specialVariations drives ToOtherForms. The Roman tables stop at 12 and
// the circled table at 50; the bounds deliberately differ.
var specialVariations = []variation{
	{digits: romanCapital[:], description: descRomanCapital, style: StyleRomanCapital},
	{digits: romanSmall[:], description: descRomanSmall, style: StyleRomanSmall},
	{digits: circledNumbers[:], description: descCircled, style: StyleCircled},
}

// toOtherForms converts to Roman numeral and circled number glyphs, plus
// the Googol literal.
func toOtherForms(s string) ([]Result, error) {
	if !IsDecimalInteger(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidInput, s)
	}

	var results []Result
	if s == googol {
		results = append(results, Result{Text: "Googol", Style: StyleDefault})
	}

	n, ok := safenum.Uint64(s)
	if ok {
		for _, v := range specialVariations {
			if n < uint64(len(v.digits)) && v.digits[n] != "" {
				results = append(results, Result{Text: v.digits[n], Description: v.description, Style: v.style})
			}
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no special form for %q", ErrUnsupported, s)
	}
	return results, nil
}

// toOtherRadixes converts to hexadecimal, octal, and binary spellings.
// Values small enough to look identical to decimal in a radix are
// skipped in that radix; at 1 and below nothing remains.
func toOtherRadixes(s string) ([]Result, error) {
	if !IsDecimalInteger(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidInput, s)
	}

	n, ok := safenum.Uint64(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not fit in uint64", ErrUnsupported, s)
	}

	var results []Result
	if n > 9 {
		results = append(results, Result{Text: "0x" + strconv.FormatUint(n, 16), Description: descHex, Style: StyleHex})
	}
	if n > 7 {
		results = append(results, Result{Text: "0" + strconv.FormatUint(n, 8), Description: descOct, Style: StyleOct})
	}
	if n > 1 {
		results = append(results, Result{Text: "0b" + strconv.FormatUint(n, 2), Description: descBin, Style: StyleBin})
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %d has no distinct radix spelling", ErrUnsupported, n)
	}
	return results, nil
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
