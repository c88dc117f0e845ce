// Tests for the forward converters.
package kansuji

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToKanji(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			"zero", "0",
			[]Result{{"零", "大字", StyleOldKanji}},
		},
		{
			"all zeros", "0000000",
			[]Result{{"零", "大字", StyleOldKanji}},
		},
		{
			"ten", "10",
			[]Result{
				{"十", "漢数字", StyleKanji},
				{"壱拾", "大字", StyleOldKanji},
				{"拾", "大字", StyleOldKanji},
			},
		},
		{
			"eleven", "11",
			[]Result{
				{"十一", "漢数字", StyleKanji},
				{"壱拾壱", "大字", StyleOldKanji},
			},
		},
		{
			"eighteen", "18",
			[]Result{
				{"十八", "漢数字", StyleKanji},
				{"壱拾八", "大字", StyleOldKanji},
			},
		},
		{
			"twenty", "20",
			[]Result{
				{"二十", "漢数字", StyleKanji},
				{"弐拾", "大字", StyleOldKanji},
				{"廿", "大字", StyleOldKanji},
			},
		},
		{
			"twenty-two", "22",
			[]Result{
				{"二十二", "漢数字", StyleKanji},
				{"弐拾弐", "大字", StyleOldKanji},
				{"廿弐", "大字", StyleOldKanji},
			},
		},
		{
			"hundred", "100",
			[]Result{
				{"百", "漢数字", StyleKanji},
				{"壱百", "大字", StyleOldKanji},
			},
		},
		{
			"thousand", "1000",
			[]Result{
				{"千", "漢数字", StyleKanji},
				{"壱阡", "大字", StyleOldKanji},
				{"阡", "大字", StyleOldKanji},
			},
		},
		{
			"two thousand twenty", "2020",
			[]Result{
				{"二千二十", "漢数字", StyleKanji},
				{"弐阡弐拾", "大字", StyleOldKanji},
				{"弐阡廿", "大字", StyleOldKanji},
			},
		},
		{
			"five digits", "12345",
			[]Result{
				{"1万2345", "数字", StyleArabicAndKanjiHalf},
				{"１万２３４５", "数字", StyleArabicAndKanjiFull},
				{"一万二千三百四十五", "漢数字", StyleKanji},
				{"壱萬弐阡参百四拾五", "大字", StyleOldKanji},
			},
		},
		{
			"hundred million", "100000000",
			[]Result{
				{"1億", "数字", StyleArabicAndKanjiHalf},
				{"１億", "数字", StyleArabicAndKanjiFull},
				{"一億", "漢数字", StyleKanji},
				{"壱億", "大字", StyleOldKanji},
			},
		},
		{
			"inner zero group", "100010001",
			[]Result{
				{"1億1万1", "数字", StyleArabicAndKanjiHalf},
				{"１億１万１", "数字", StyleArabicAndKanjiFull},
				{"一億一万一", "漢数字", StyleKanji},
				{"壱億壱萬壱", "大字", StyleOldKanji},
			},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToKanji(tt.input)
			if err != nil {
				t.Fatalf("ToKanji(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToKanji(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestToKanjiErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrInvalidInput},
		{"letters", "abc", ErrInvalidInput},
		{"negative", "-5", ErrInvalidInput},
		{"decimal point", "1.5", ErrInvalidInput},
		{"full-width digits", "１２３", ErrInvalidInput},
		{"too many digits", strings.Repeat("9", 21), ErrUnsupported},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToKanji(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ToKanji(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if got != nil {
				t.Errorf("ToKanji(%q) = %v on failure, want nil", tt.input, got)
			}
		})
	}
}

func TestToKanjiMaxSupportedDigits(t *testing.T) {
	t.Parallel()

	// 20 digits reach the 京 rank and are the supported maximum.
	input := strings.Repeat("9", 20)
	got, err := ToKanji(input)
	if err != nil {
		t.Fatalf("ToKanji(%q) error: %v", input, err)
	}
	wantKanji := "九千九百九十九京九千九百九十九兆九千九百九十九億九千九百九十九万九千九百九十九"
	for _, r := range got {
		if r.Style == StyleKanji && r.Text != wantKanji {
			t.Errorf("ToKanji(%q) Kanji = %q, want %q", input, r.Text, wantKanji)
		}
	}
}

func TestToSeparated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			"single digit", "1",
			[]Result{
				{"1", "数字", StyleSeparatedHalf},
				{"１", "数字", StyleSeparatedFull},
			},
		},
		{
			"three digits", "123",
			[]Result{
				{"123", "数字", StyleSeparatedHalf},
				{"１２３", "数字", StyleSeparatedFull},
			},
		},
		{
			"four digits", "1234",
			[]Result{
				{"1,234", "数字", StyleSeparatedHalf},
				{"１，２３４", "数字", StyleSeparatedFull},
			},
		},
		{
			"seven digits", "1234567",
			[]Result{
				{"1,234,567", "数字", StyleSeparatedHalf},
				{"１，２３４，５６７", "数字", StyleSeparatedFull},
			},
		},
		{
			"fraction", "1234.5",
			[]Result{
				{"1,234.5", "数字", StyleSeparatedHalf},
				{"１，２３４．５", "数字", StyleSeparatedFull},
			},
		},
		{
			"trailing point", "123.",
			[]Result{
				{"123.", "数字", StyleSeparatedHalf},
				{"１２３．", "数字", StyleSeparatedFull},
			},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToSeparated(tt.input)
			if err != nil {
				t.Fatalf("ToSeparated(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToSeparated(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// TestToSeparatedPlacement pins the separator rule: one separator every
// three digits from the right, never at position 0.
func TestToSeparatedPlacement(t *testing.T) {
	t.Parallel()

	for length := 1; length <= 13; length++ {
		input := "1" + strings.Repeat("0", length-1)
		got, err := ToSeparated(input)
		if err != nil {
			t.Fatalf("ToSeparated(%q) error: %v", input, err)
		}
		text := got[0].Text
		if strings.HasPrefix(text, ",") {
			t.Errorf("ToSeparated(%q) = %q starts with a separator", input, text)
		}
		digits := 0
		for i := len(text) - 1; i >= 0; i-- {
			if text[i] == ',' {
				if digits%3 != 0 || digits == 0 {
					t.Errorf("ToSeparated(%q) = %q has a misplaced separator", input, text)
				}
				continue
			}
			digits++
		}
	}
}

func TestToSeparatedErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"leading zero", "0123"},
		{"bare zero", "0"},
		{"zero with fraction", "0.5"},
		{"bare point", "."},
		{"leading point", ".5"},
		{"two points", "1.2.3"},
		{"letters", "12a"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ToSeparated(tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ToSeparated(%q) error = %v, want ErrInvalidInput", tt.input, err)
			}
		})
	}
}

func TestToWide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			"single digit", "5",
			[]Result{
				{"五", "漢数字", StyleKanjiArabic},
				{"５", "数字", StyleDefault},
			},
		},
		{
			"leading zero kept", "012",
			[]Result{
				{"〇一二", "漢数字", StyleKanjiArabic},
				{"０１２", "数字", StyleDefault},
			},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToWide(tt.input)
			if err != nil {
				t.Fatalf("ToWide(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToWide(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}

	if _, err := ToWide("12.3"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ToWide(\"12.3\") error = %v, want ErrInvalidInput", err)
	}
}

func TestScriptVariants(t *testing.T) {
	t.Parallel()

	got, err := ScriptVariants("25")
	if err != nil {
		t.Fatalf("ScriptVariants(\"25\") error: %v", err)
	}
	want := []Result{
		{"25", "数字", StyleDefault},
		{"２５", "数字", StyleDefault},
		{"二五", "漢数字", StyleKanjiArabic},
		{"弐五", "大字", StyleOldKanji},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScriptVariants(\"25\") mismatch (-want +got):\n%s", diff)
	}

	// The Daiji set has no zero glyph, so its variant is skipped.
	got, err = ScriptVariants("10")
	if err != nil {
		t.Fatalf("ScriptVariants(\"10\") error: %v", err)
	}
	for _, r := range got {
		if r.Style == StyleOldKanji {
			t.Errorf("ScriptVariants(\"10\") produced a Daiji variant %q", r.Text)
		}
	}
	if len(got) != 3 {
		t.Errorf("ScriptVariants(\"10\") produced %d variants, want 3", len(got))
	}
}

func TestToOtherForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			"one", "1",
			[]Result{
				{"Ⅰ", "ローマ数字(大文字)", StyleRomanCapital},
				{"ⅰ", "ローマ数字(小文字)", StyleRomanSmall},
				{"①", "丸数字", StyleCircled},
			},
		},
		{
			"twelve", "12",
			[]Result{
				{"Ⅻ", "ローマ数字(大文字)", StyleRomanCapital},
				{"ⅻ", "ローマ数字(小文字)", StyleRomanSmall},
				{"⑫", "丸数字", StyleCircled},
			},
		},
		{
			// The Roman tables stop at 12, the circled table goes to 50.
			"thirteen", "13",
			[]Result{
				{"⑬", "丸数字", StyleCircled},
			},
		},
		{
			"fifty", "50",
			[]Result{
				{"㊿", "丸数字", StyleCircled},
			},
		},
		{
			"googol", googol,
			[]Result{
				{Text: "Googol", Style: StyleDefault},
			},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToOtherForms(tt.input)
			if err != nil {
				t.Fatalf("ToOtherForms(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToOtherForms(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestToOtherFormsErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"zero has no glyph", "0", ErrUnsupported},
		{"beyond circled", "51", ErrUnsupported},
		{"huge", strings.Repeat("9", 30), ErrUnsupported},
		{"not a number", "xii", ErrInvalidInput},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ToOtherForms(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("ToOtherForms(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestToOtherRadixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			"255", "255",
			[]Result{
				{"0xff", "16進数", StyleHex},
				{"0377", "8進数", StyleOct},
				{"0b11111111", "2進数", StyleBin},
			},
		},
		{
			// 8 and 9 look the same in decimal and hexadecimal.
			"eight", "8",
			[]Result{
				{"010", "8進数", StyleOct},
				{"0b1000", "2進数", StyleBin},
			},
		},
		{
			"two", "2",
			[]Result{
				{"0b10", "2進数", StyleBin},
			},
		},
		{
			"ten", "10",
			[]Result{
				{"0xa", "16進数", StyleHex},
				{"012", "8進数", StyleOct},
				{"0b1010", "2進数", StyleBin},
			},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToOtherRadixes(tt.input)
			if err != nil {
				t.Fatalf("ToOtherRadixes(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToOtherRadixes(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}

	for _, input := range []string{"0", "1"} {
		if _, err := ToOtherRadixes(input); !errors.Is(err, ErrUnsupported) {
			t.Errorf("ToOtherRadixes(%q) error = %v, want ErrUnsupported", input, err)
		}
	}
	if _, err := ToOtherRadixes("0x10"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ToOtherRadixes(\"0x10\") error = %v, want ErrInvalidInput", err)
	}
}
