// Package kansuji converts between Arabic digit strings and Japanese
// numeral written forms.
//
// Forward conversion turns a decimal digit string into its written
// variants:
//
//   - ToKanji composes positional Kanji numerals ("12345" → 一万二千三百四十五),
//     including the formal Daiji (大字) forms used in legal and financial
//     documents.
//   - ToSeparated produces thousands-separated digits (12,345 / １２，３４５),
//     with an optional decimal fraction.
//   - ToWide substitutes a Kanji or full-width glyph for each digit,
//     without positional rank words.
//   - ScriptVariants maps each digit through all four digit glyph sets.
//   - ToOtherForms produces Roman numerals and circled numbers.
//   - ToOtherRadixes produces hexadecimal, octal, and binary spellings.
//
// Reverse conversion (Normalize, NormalizeWithSuffix) parses a string of
// Japanese numeral characters (二百十一, 三千５００, 壱万弐阡) back into
// its canonical Arabic digit string, resolving the positional grammar of
// rank words and rejecting malformed sequences.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - ToKanji supports at most 20 digits (up to the 京 rank, 10^16).
//   - Roman numeral glyphs exist for 1–12 and circled numbers for 1–50;
//     the two upper bounds deliberately differ.
//   - Normalize rejects values that do not fit in an unsigned 64-bit
//     integer rather than wrapping.
//   - Readings (じゅうに vs. とおあまりふたつ) are out of scope; only
//     written glyph forms are handled.
package kansuji

import (
	"errors"
	"fmt"
)

// Style identifies one output variant of a conversion.
type Style int

const (
	// StyleDefault marks results with no more specific variant, such as
	// plain full-width digits or the Googol literal.
	StyleDefault Style = iota

	// StyleArabicAndKanjiHalf is half-width Arabic digits grouped by the
	// Kanji bigger-rank structure (1234万5678 without the rank words).
	StyleArabicAndKanjiHalf

	// StyleArabicAndKanjiFull is the full-width digit counterpart of
	// StyleArabicAndKanjiHalf.
	StyleArabicAndKanjiFull

	// StyleKanji is the everyday positional Kanji numeral (二百十一).
	StyleKanji

	// StyleOldKanji is the formal Daiji numeral (弐百拾壱).
	StyleOldKanji

	// StyleSeparatedHalf is half-width digits with comma separators (1,234).
	StyleSeparatedHalf

	// StyleSeparatedFull is full-width digits with full-width separators
	// (１，２３４).
	StyleSeparatedFull

	// StyleKanjiArabic substitutes a Kanji digit glyph per Arabic digit
	// with no rank words (一二三 for "123").
	StyleKanjiArabic

	// StyleRomanCapital is a capital Roman numeral glyph (Ⅻ).
	StyleRomanCapital

	// StyleRomanSmall is a small Roman numeral glyph (ⅻ).
	StyleRomanSmall

	// StyleCircled is a circled number glyph (㊿).
	StyleCircled

	// StyleHex is a 0x-prefixed hexadecimal spelling.
	StyleHex

	// StyleOct is a 0-prefixed octal spelling.
	StyleOct

	// StyleBin is a 0b-prefixed binary spelling.
	StyleBin
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "Default"
	case StyleArabicAndKanjiHalf:
		return "ArabicAndKanjiHalf"
	case StyleArabicAndKanjiFull:
		return "ArabicAndKanjiFull"
	case StyleKanji:
		return "Kanji"
	case StyleOldKanji:
		return "OldKanji"
	case StyleSeparatedHalf:
		return "SeparatedHalf"
	case StyleSeparatedFull:
		return "SeparatedFull"
	case StyleKanjiArabic:
		return "KanjiArabic"
	case StyleRomanCapital:
		return "RomanCapital"
	case StyleRomanSmall:
		return "RomanSmall"
	case StyleCircled:
		return "Circled"
	case StyleHex:
		return "Hex"
	case StyleOct:
		return "Oct"
	case StyleBin:
		return "Bin"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Result is one converted spelling of a number.
type Result struct {
	Text        string // the converted spelling
	Description string // human-readable variant description (数字, 漢数字, ...)
	Style       Style
}

// Error taxonomy. All errors returned by this package wrap one of these.
var (
	// ErrInvalidInput reports input that fails a format predicate, such as
	// a non-digit character where a decimal integer is required.
	ErrInvalidInput = errors.New("kansuji: invalid input")

	// ErrUnsupported reports a value whose magnitude exceeds the engine's
	// rank depth or for which no glyph exists.
	ErrUnsupported = errors.New("kansuji: unsupported value")

	// ErrGrammar reports a Kanji numeral token sequence that violates the
	// positional numeral grammar.
	ErrGrammar = errors.New("kansuji: numeral grammar violation")

	// ErrOverflow reports an intermediate value that does not fit in an
	// unsigned 64-bit integer.
	ErrOverflow = errors.New("kansuji: arithmetic overflow")
)

// ToKanji converts a decimal integer string into positional Kanji numeral
// spellings: everyday Kanji, Daiji, and the two digits-with-rank-structure
// variants for numbers of more than one 4-digit group. A string of zeros
// yields the single Daiji spelling 零.
//
// Fails with ErrInvalidInput if s is not a non-empty ASCII digit string,
// and with ErrUnsupported if s has more than 20 digits.
func ToKanji(s string) ([]Result, error) {
	return toKanji(s)
}

// ToSeparated converts a decimal number string, optionally with a
// fractional part ("1234.5"), into thousands-separated half-width and
// full-width spellings. The integral part must not start with '0'.
func ToSeparated(s string) ([]Result, error) {
	return toSeparated(s)
}

// ToWide converts a decimal integer string by substituting one glyph per
// digit: a Kanji digit variant (一二三) and a full-width variant (１２３).
func ToWide(s string) ([]Result, error) {
	return toWide(s)
}

// ScriptVariants converts a decimal integer string through each of the
// four digit glyph sets (half-width, full-width, Kanji, Daiji) with no
// positional rank words. A glyph set that has no glyph for one of the
// digits (Daiji has no zero) is skipped.
func ScriptVariants(s string) ([]Result, error) {
	return scriptVariants(s)
}

// ToOtherForms converts a decimal integer string into Roman numeral and
// circled number glyphs, where defined (Roman 1–12, circled 1–50). The
// 101-digit spelling of 10^100 additionally yields the literal "Googol".
//
// Fails with ErrUnsupported when no form is defined for the value.
func ToOtherForms(s string) ([]Result, error) {
	return toOtherForms(s)
}

// ToOtherRadixes converts a decimal integer string into hexadecimal (for
// values above 9), octal (above 7), and binary (above 1) spellings.
// Smaller values would be visually identical to decimal and yield
// ErrUnsupported.
func ToOtherRadixes(s string) ([]Result, error) {
	return toOtherRadixes(s)
}

// Normalize parses a Japanese numeral string into its canonical Arabic
// digit string, e.g. 百二十万 → "1200000". It also returns the input
// echoed with all digit characters normalized to Kanji digit glyphs.
//
// Unless trimLeadingZeros is set, leading zero characters of the input
// are reproduced in the output: 〇〇一 → "001". Any character that is not
// a recognized numeral glyph fails the whole parse.
func Normalize(s string, trimLeadingZeros bool) (kanji, arabic string, err error) {
	kanji, arabic, _, err = normalizeNumerals(s, trimLeadingZeros, false)
	return kanji, arabic, err
}

// NormalizeWithSuffix is Normalize for strings with a trailing
// non-numeral part: 二百十一個 → ("二百十一", "211", "個"). The numeral
// prefix must be non-empty.
func NormalizeWithSuffix(s string, trimLeadingZeros bool) (kanji, arabic, suffix string, err error) {
	return normalizeNumerals(s, trimLeadingZeros, true)
}
