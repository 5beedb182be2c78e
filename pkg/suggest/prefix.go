package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex answers prefix lookups over the dictionary.
type PrefixIndex struct {
	trie  *patricia.Trie
	count int
}

// NewPrefixIndex builds an index over words, skipping empty entries.
func NewPrefixIndex(words []string) *PrefixIndex {
	trie := patricia.NewTrie()
	count := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		if trie.Insert(patricia.Prefix(w), true) {
			count++
		}
	}
	return &PrefixIndex{trie: trie, count: count}
}

// Complete returns dictionary words starting with prefix, in trie
// order. A limit above zero caps the result, zero means no cap.
func (ix *PrefixIndex) Complete(prefix string, limit int) []string {
	var words []string
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// Len returns the number of indexed words.
func (ix *PrefixIndex) Len() int {
	return ix.count
}
