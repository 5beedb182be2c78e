package suggest

import (
	"errors"
	"fmt"
	"testing"
)

func TestRankOrder(t *testing.T) {
	words := []string{"apple", "apply", "ape", "maple", "monkey"}
	r, err := NewRanker(words)
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	ranked, err := r.Rank("appel")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	expected := []string{"apple", "apply", "ape", "maple", "monkey"}
	if len(ranked) != len(expected) {
		t.Fatalf("expected %d candidates, got %d", len(expected), len(ranked))
	}
	for i, want := range expected {
		if ranked[i].Word != want {
			t.Errorf("position %d: expected %q, got %q (ratio %v)", i, want, ranked[i].Word, ranked[i].Ratio)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Ratio > ranked[i-1].Ratio {
			t.Errorf("ratios not descending at %d: %v after %v", i, ranked[i].Ratio, ranked[i-1].Ratio)
		}
	}
}

// equal ratios keep dictionary order, so reversing the dictionary
// reverses the tied pair
func TestRankTieBreak(t *testing.T) {
	// apple and apply both score 0.8 against appel
	forward, err := NewRanker([]string{"apple", "apply"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}
	backward, err := NewRanker([]string{"apply", "apple"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	f, err := forward.Rank("appel")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	b, err := backward.Rank("appel")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if f[0].Ratio != f[1].Ratio {
		t.Fatalf("expected a tie, got %v and %v", f[0].Ratio, f[1].Ratio)
	}
	if f[0].Word != "apple" || b[0].Word != "apply" {
		t.Errorf("tie not broken by dictionary order: forward %q, backward %q", f[0].Word, b[0].Word)
	}
}

func TestRankErrors(t *testing.T) {
	if _, err := NewRanker(nil); !errors.Is(err, ErrNoWords) {
		t.Errorf("empty dictionary: expected ErrNoWords, got %v", err)
	}

	r, err := NewRanker([]string{"word"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}
	if _, err := r.Rank(""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("empty query: expected ErrEmptyQuery, got %v", err)
	}
	if _, err := r.Top("", 5); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("empty query via Top: expected ErrEmptyQuery, got %v", err)
	}
}

// blank dictionary entries rank like any other word, just at the bottom
func TestRankBlankEntries(t *testing.T) {
	r, err := NewRanker([]string{"", "abc"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	ranked, err := r.Rank("abc")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if ranked[0].Word != "abc" || ranked[0].Ratio != 1.0 {
		t.Errorf("expected perfect match first, got %+v", ranked[0])
	}
	if ranked[1].Word != "" || ranked[1].Ratio != 0.0 {
		t.Errorf("expected empty entry last with ratio 0, got %+v", ranked[1])
	}
}

func TestTopClamp(t *testing.T) {
	r, err := NewRanker([]string{"aaa", "bbb", "ccc"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	testCases := []struct {
		n           int
		expected    int
		description string
	}{
		{100, 3, "Clamped to dictionary size"},
		{2, 2, "Below dictionary size"},
		{0, 0, "Zero wanted"},
		{-3, 0, "Negative wanted"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			top, err := r.Top("zzz", tc.n)
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			if len(top) != tc.expected {
				t.Errorf("Top(zzz, %d): expected %d candidates, got %d", tc.n, tc.expected, len(top))
			}
		})
	}
}

// a perfect match ends the list, even with room left
func TestTopStopsAtExactMatch(t *testing.T) {
	r, err := NewRanker([]string{"pear", "apple", "peach"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	top, err := r.Top("apple", 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 1 || top[0].Word != "apple" || top[0].Ratio != 1.0 {
		t.Errorf("expected only the exact match, got %v", top)
	}
}

// duplicated dictionary words must not pad the list past the first hit
func TestTopDuplicateExactMatches(t *testing.T) {
	r, err := NewRanker([]string{"word", "word"})
	if err != nil {
		t.Fatalf("NewRanker: %v", err)
	}

	top, err := r.Top("word", 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 1 {
		t.Errorf("expected early exit after first perfect match, got %v", top)
	}
}

func BenchmarkRank(b *testing.B) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	r, err := NewRanker(words)
	if err != nil {
		b.Fatalf("NewRanker: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := r.Rank("wrod500"); err != nil {
			b.Fatal(err)
		}
	}
}
