// Glyph tables for Japanese numeral conversion.
package kansuji

// Digit glyph tables, indexed by digit value 0–9.
var (
	halfWidthDigits = [10]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	fullWidthDigits = [10]string{"０", "１", "２", "３", "４", "５", "６", "７", "８", "９"}
	kanjiDigits     = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

	// oldKanjiDigits are the Daiji digit glyphs. There is no Daiji zero;
	// index 0 is absent.
	oldKanjiDigits = [10]string{"", "壱", "弐", "参", "四", "五", "六", "七", "八", "九"}
)

// Ones-rank glyph tables, indexed by position weight within a 4-digit
// group (1 = ones, 2 = tens, 3 = hundreds, 4 = thousands). The ones
// position has no rank word; index 0 is unused.
var (
	kanjiRanks    = [5]string{"", "", "十", "百", "千"}
	oldKanjiRanks = [5]string{"", "", "拾", "百", "阡"}
)

// Bigger-rank glyph tables, indexed by 4-digit group number counted from
// the least significant group. Group 0 carries no rank word.
var (
	kanjiBiggerRanks    = [5]string{"", "万", "億", "兆", "京"}
	oldKanjiBiggerRanks = [5]string{"", "萬", "億", "兆", "京"}
)

// digitsPerBigRank is the group width of the bigger ranks: each of
// 万, 億, 兆, 京 is 10000 times the previous.
const digitsPerBigRank = 4

// oldKanjiZero is the Daiji spelling for a string of all zeros.
const oldKanjiZero = "零"

// 弐拾 has the dedicated single glyph 廿; ToKanji emits both spellings.
const (
	oldTwoTen = "弐拾"
	oldTwenty = "廿"
)

// Roman numeral glyph tables, indexed by value. Index 0 is absent, and
// no glyphs exist beyond 12.
var (
	romanCapital = [13]string{
		"", "Ⅰ", "Ⅱ", "Ⅲ", "Ⅳ", "Ⅴ", "Ⅵ", "Ⅶ", "Ⅷ", "Ⅸ", "Ⅹ", "Ⅺ", "Ⅻ",
	}
	romanSmall = [13]string{
		"", "ⅰ", "ⅱ", "ⅲ", "ⅳ", "ⅴ", "ⅵ", "ⅶ", "ⅷ", "ⅸ", "ⅹ", "ⅺ", "ⅻ",
	}
)

// circledNumbers is indexed by value. Index 0 is absent, and no glyphs
// exist beyond 50.
var circledNumbers = [51]string{
	"",
	"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩",
	"⑪", "⑫", "⑬", "⑭", "⑮", "⑯", "⑰", "⑱", "⑲", "⑳",
	"㉑", "㉒", "㉓", "㉔", "㉕", "㉖", "㉗", "㉘", "㉙", "㉚",
	"㉛", "㉜", "㉝", "㉞", "㉟", "㊱", "㊲", "㊳", "㊴", "㊵",
	"㊶", "㊷", "㊸", "㊹", "㊺", "㊻", "㊼", "㊽", "㊾", "㊿",
}

// googol is the decimal spelling of 10^100, matched literally because it
// does not fit in uint64.
const googol = "1" +
	"00000000000000000000000000000000000000000000000000" +
	"00000000000000000000000000000000000000000000000000"

// Variant descriptions shown to users alongside converted spellings.
const (
	descArabic       = "数字"
	descKanji        = "漢数字"
	descOldKanji     = "大字"
	descRomanCapital = "ローマ数字(大文字)"
	descRomanSmall   = "ローマ数字(小文字)"
	descCircled      = "丸数字"
	descHex          = "16進数"
	descOct          = "8進数"
	descBin          = "2進数"
)

// kanjiValues maps each recognized Kanji numeral rune to its numeric
// value: digit glyphs (including Daiji and rare variants) to 0–9, rank
// glyphs to their positional value. ASCII and full-width digits are
// handled separately in numeralValue.
var kanjiValues = map[rune]uint64{
	'〇': 0, '零': 0,
	'一': 1, '壱': 1, '弌': 1,
	'二': 2, '弐': 2, '弍': 2,
	'三': 3, '参': 3, '弎': 3,
	'四': 4,
	'五': 5, '伍': 5,
	'六': 6,
	'七': 7,
	'八': 8,
	'九': 9,
	'十': 10, '拾': 10,
	'廿': 20,
	'百': 100, '佰': 100, '陌': 100,
	'千': 1000, '阡': 1000, '仟': 1000,
	'万': 10_000, '萬': 10_000,
	'億': 100_000_000,
	'兆': 1_000_000_000_000,
	'京': 10_000_000_000_000_000,
}

// numeralValue returns the numeric value of a single numeral rune.
func numeralValue(r rune) (uint64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0'), true
	case r >= '０' && r <= '９':
		return uint64(r - '０'), true
	}
	v, ok := kanjiValues[r]
	return v, ok
}
