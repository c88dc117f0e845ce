package kansuji

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Kanji string `json:"kanji"`
	Daiji string `json:"daiji"`
}

const goldenPath = "../data/golden/kansuji.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			gotKanji, gotDaiji := kanjiSpellings(t, tc.Input)
			if gotKanji != tc.Kanji {
				t.Errorf("ToKanji(%q) Kanji = %q, want %q", tc.Input, gotKanji, tc.Kanji)
			}
			if gotDaiji != tc.Daiji {
				t.Errorf("ToKanji(%q) Daiji = %q, want %q", tc.Input, gotDaiji, tc.Daiji)
			}

			// The plain Kanji spelling must round-trip.
			_, arabic, err := Normalize(gotKanji, true)
			if err != nil {
				t.Errorf("Normalize(%q) error: %v", gotKanji, err)
			} else if arabic != tc.Input {
				t.Errorf("Normalize(ToKanji(%q)) = %q", tc.Input, arabic)
			}
		})
	}
}

// kanjiSpellings returns the plain Kanji and the first Daiji spelling of
// a decimal integer string.
func kanjiSpellings(t *testing.T, input string) (kanji, daiji string) {
	t.Helper()

	results, err := ToKanji(input)
	if err != nil {
		t.Fatalf("ToKanji(%q) error: %v", input, err)
	}
	for _, r := range results {
		switch r.Style {
		case StyleKanji:
			if kanji == "" {
				kanji = r.Text
			}
		case StyleOldKanji:
			if daiji == "" {
				daiji = r.Text
			}
		}
	}
	return kanji, daiji
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.Kanji, tc.Daiji = kanjiSpellings(t, tc.Input)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/kansuji.json")
}
