package fuzzy

import (
	"fmt"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ratios verified against Python's difflib.SequenceMatcher
func TestRatio(t *testing.T) {
	testCases := []struct {
		a           string
		b           string
		expected    float64
		description string
	}{
		{"abcd", "abcd", 1.0, "Identical"},
		{"abcd", "bcde", 0.75, "Shared run of three"},
		{"apple", "appel", 0.8, "Transposed tail"},
		{"monkey", "monkee", 10.0 / 12.0, "Single substitution"},
		{"abcd", "efgh", 0.0, "Nothing in common"},
		{"", "", 1.0, "Both empty"},
		{"", "abcd", 0.0, "Empty query"},
		{"abcd", "", 0.0, "Empty candidate"},
		{"a", "a", 1.0, "Single rune identical"},
		{"a", "b", 0.0, "Single rune different"},
		{"hyphen-ated", "hyphenated", 20.0 / 21.0, "Hyphen dropped"},
		{"café", "cafe", 6.0 / 8.0, "Runes not bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Ratio(tc.a, tc.b)
			if !almostEqual(got, tc.expected) {
				t.Errorf("Ratio(%q, %q): expected %v, got %v", tc.a, tc.b, tc.expected, got)
			}
		})
	}
}

// ratio must be symmetric in its arguments
func TestRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"apple", "appel"},
		{"monkey", "money"},
		{"abcd", "bcde"},
		{"", "word"},
	}

	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Ratio(%q, %q)=%v but Ratio(%q, %q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

// block lists end with the zero-size sentinel and merge adjacent runs
func TestMatchingBlocks(t *testing.T) {
	m := NewMatcher("abxcd", "abcd")
	blocks := m.MatchingBlocks()

	expected := []Match{
		{A: 0, B: 0, Size: 2},
		{A: 3, B: 2, Size: 2},
		{A: 5, B: 4, Size: 0},
	}
	if len(blocks) != len(expected) {
		t.Fatalf("expected %d blocks, got %d: %v", len(expected), len(blocks), blocks)
	}
	for i, want := range expected {
		if blocks[i] != want {
			t.Errorf("block %d: expected %+v, got %+v", i, want, blocks[i])
		}
	}
}

func TestMatchingBlocksEmpty(t *testing.T) {
	blocks := NewMatcher("", "").MatchingBlocks()
	if len(blocks) != 1 || blocks[0] != (Match{0, 0, 0}) {
		t.Errorf("expected only the sentinel, got %v", blocks)
	}
}

// equally long blocks resolve to the earliest in a, then earliest in b
func TestFindLongestMatchTieBreak(t *testing.T) {
	testCases := []struct {
		a           string
		b           string
		expected    Match
		description string
	}{
		{"ab", "abab", Match{A: 0, B: 0, Size: 2}, "Earliest in b"},
		{"abab", "ab", Match{A: 0, B: 0, Size: 2}, "Earliest in a"},
		{"xaxbx", "ab", Match{A: 1, B: 0, Size: 1}, "Single runes, earliest in a"},
		{"ab", "ba", Match{A: 0, B: 1, Size: 1}, "Crossing runs"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			m := NewMatcher(tc.a, tc.b)
			got := m.findLongestMatch(0, len(m.a), 0, len(m.b))
			if got != tc.expected {
				t.Errorf("findLongestMatch(%q, %q): expected %+v, got %+v", tc.a, tc.b, tc.expected, got)
			}
		})
	}
}

// quick ratios bound the real one from above
func TestQuickRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"apple", "appel"},
		{"monkey", "yeknom"},
		{"abcd", "efgh"},
		{"spell", "spel"},
		{"", ""},
	}

	for _, p := range pairs {
		m := NewMatcher(p[0], p[1])
		ratio := m.Ratio()
		quick := m.QuickRatio()
		realQuick := m.RealQuickRatio()
		if quick < ratio {
			t.Errorf("QuickRatio(%q, %q)=%v below Ratio=%v", p[0], p[1], quick, ratio)
		}
		if realQuick < quick {
			t.Errorf("RealQuickRatio(%q, %q)=%v below QuickRatio=%v", p[0], p[1], realQuick, quick)
		}
	}
}

// anagrams share every rune but few runs
func TestQuickRatioAnagram(t *testing.T) {
	m := NewMatcher("abcd", "dcba")
	if got := m.QuickRatio(); !almostEqual(got, 1.0) {
		t.Errorf("expected quick ratio 1.0 for anagram, got %v", got)
	}
	if got := m.Ratio(); got >= 1.0 {
		t.Errorf("expected real ratio below 1.0 for anagram, got %v", got)
	}
}

// swapping seq2 must invalidate cached blocks and the rune index
func TestSetSeq2Reuse(t *testing.T) {
	m := NewMatcher("monkey", "")
	candidates := []string{"monkee", "money", "donkey", "monkey", ""}

	for _, c := range candidates {
		m.SetSeq2(c)
		got := m.Ratio()
		want := NewMatcher("monkey", c).Ratio()
		if !almostEqual(got, want) {
			t.Errorf("reused matcher on %q: expected %v, got %v", c, want, got)
		}
	}
}

func TestSetSeq1Reuse(t *testing.T) {
	m := NewMatcher("", "monkey")
	for _, q := range []string{"monkee", "monkey", "zzz"} {
		m.SetSeq1(q)
		got := m.Ratio()
		want := NewMatcher(q, "monkey").Ratio()
		if !almostEqual(got, want) {
			t.Errorf("reused matcher with query %q: expected %v, got %v", q, want, got)
		}
	}
}

// one query against a 1000 word dictionary, the ranking hot path
func BenchmarkRatioAgainstDictionary(b *testing.B) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	m := &Matcher{}
	m.SetSeq1("wrod500")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.SetSeq2(words[i%len(words)])
		m.Ratio()
	}
}
