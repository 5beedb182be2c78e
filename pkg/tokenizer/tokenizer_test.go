package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cfg := DefaultConfig()

	testCases := []struct {
		line        string
		expected    []string
		description string
	}{
		{"this is a test", []string{"this", "is", "a", "test"}, "Plain words"},
		{"a hyphen-ated word that's life::monkey", []string{"a", "hyphen-ated", "word", "that", "life", "monkey"}, "Hyphens kept, possessive stripped, punctuation splits"},
		{"A Bad Deal", []string{"a", "bad", "deal"}, "Uppercase lowered"},
		{"--", nil, "Punctuation only"},
		{"1 2 3", nil, "Bare numbers never valid"},
		{"utf8 rocks", []string{"utf8", "rocks"}, "Digits inside words"},
		{"don't stop", []string{"don't", "stop"}, "Interior apostrophe kept"},
		{"players' gold", []string{"players", "gold"}, "Trailing apostrophe stripped"},
		{"", nil, "Empty line"},
		{"   \t  ", nil, "Whitespace only"},
		{"naïve test", []string{"na", "ve", "test"}, "Non-ASCII rune is a boundary"},
		{"it''s", []string{"it'"}, "Only one strip rule applies"},
		{"'s", []string{""}, "Lone possessive strips to empty"},
		{"end.", []string{"end"}, "Trailing punctuation"},
		{"one,two;three", []string{"one", "two", "three"}, "Punctuation separators"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Tokenize(tc.line, cfg)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q): expected %v, got %v", tc.line, tc.expected, got)
			}
		})
	}
}

// with digits off a digit splits the token like punctuation would
func TestTokenizeNoDigits(t *testing.T) {
	cfg := Config{Digits: false}

	testCases := []struct {
		line        string
		expected    []string
		description string
	}{
		{"utf8 rocks", []string{"utf", "rocks"}, "Digit becomes a boundary"},
		{"word2vec", []string{"word", "vec"}, "Digit splits mid-word"},
		{"2024 report", []string{"report"}, "Leading number dropped"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Tokenize(tc.line, cfg)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q): expected %v, got %v", tc.line, tc.expected, got)
			}
		})
	}
}

func TestStripPossessive(t *testing.T) {
	testCases := []struct {
		token       string
		expected    string
		description string
	}{
		{"jay's", "jay", "Apostrophe s"},
		{"players'", "players", "Bare trailing apostrophe"},
		{"ja'y", "ja'y", "Interior apostrophe untouched"},
		{"s'", "s", "Single letter possessive"},
		{"'s", "", "Nothing left after strip"},
		{"word", "word", "No apostrophe"},
		{"", "", "Empty token"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := StripPossessive(tc.token); got != tc.expected {
				t.Errorf("StripPossessive(%q): expected %q, got %q", tc.token, tc.expected, got)
			}
		})
	}
}

// the scanner must survive being walked token by token and reset
func TestScannerReset(t *testing.T) {
	s := NewScanner("first second", DefaultConfig())

	var got []string
	for s.Scan() {
		got = append(got, s.Token())
	}
	if !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Fatalf("first pass: got %v", got)
	}
	if s.Scan() {
		t.Errorf("exhausted scanner should keep returning false")
	}

	s.Reset("third")
	if !s.Scan() || s.Token() != "third" {
		t.Errorf("after reset: expected %q, got %q", "third", s.Token())
	}
	if s.Scan() {
		t.Errorf("expected single token after reset")
	}
}

func BenchmarkTokenize(b *testing.B) {
	line := "the quick brown-fox jumped, over 12 lazy dogs' backs; it's fine"
	cfg := DefaultConfig()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Tokenize(line, cfg)
	}
}
