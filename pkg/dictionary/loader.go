// Package dictionary turns raw word list bytes into the ordered word
// slice the ranker walks and the membership sets lookups run against.
package dictionary

import (
	"fmt"
	"os"
	"strings"
)

// Words parses a newline-delimited word list. Input is decoded
// lossily, runs of invalid UTF-8 become the Unicode replacement
// character rather than failing the load. Blank lines are kept as
// empty entries so positions in the source list stay meaningful, and
// a non-empty fragment after the final newline counts as a word.
// Original file order is preserved.
func Words(raw []byte) []string {
	text := strings.ToValidUTF8(string(raw), "�")
	words := strings.Split(text, "\n")
	// A trailing newline leaves one empty fragment behind, drop it.
	if n := len(words); n > 0 && words[n-1] == "" {
		words = words[:n-1]
	}
	return words
}

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return Words(raw), nil
}

// Set is a membership view over words. Lookups are case-sensitive,
// callers lowercase at the tokenizer boundary.
type Set map[string]struct{}

// NewSet builds a Set from a word slice. Empty entries are skipped,
// blank dictionary lines carry no membership.
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Add inserts a word into the set. Empty strings are ignored.
func (s Set) Add(word string) {
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct words in the set.
func (s Set) Len() int {
	return len(s)
}
