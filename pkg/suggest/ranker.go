package suggest

import (
	"errors"
	"sort"

	"github.com/spelchk/spelchk/pkg/fuzzy"
)

var (
	// ErrNoWords is returned when a Ranker is built over an empty
	// dictionary.
	ErrNoWords = errors.New("suggest: dictionary has no words")

	// ErrEmptyQuery is returned when the query word is empty.
	ErrEmptyQuery = errors.New("suggest: empty query word")
)

// Candidate pairs a dictionary word with its similarity to the query.
type Candidate struct {
	Word  string
	Ratio float64
}

// Ranker scores every dictionary word against a query and orders the
// results. The word slice is retained, not copied, and is never
// modified.
type Ranker struct {
	words []string
}

// NewRanker returns a Ranker over words. The dictionary must contain
// at least one entry.
func NewRanker(words []string) (*Ranker, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return &Ranker{words: words}, nil
}

// Rank scores word against every dictionary entry and returns one
// Candidate per entry, ordered by descending ratio. Entries with equal
// ratios keep their dictionary order, the sort is stable, so rankings
// are reproducible across runs.
func (r *Ranker) Rank(word string) ([]Candidate, error) {
	if word == "" {
		return nil, ErrEmptyQuery
	}

	m := &fuzzy.Matcher{}
	m.SetSeq1(word)

	candidates := make([]Candidate, len(r.words))
	for i, w := range r.words {
		m.SetSeq2(w)
		candidates[i] = Candidate{Word: w, Ratio: m.Ratio()}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Ratio > candidates[j].Ratio
	})
	return candidates, nil
}

// Top returns the best n candidates for word. n is clamped to the
// dictionary size. A perfect match ends the list early, nothing ranks
// after an exact hit.
func (r *Ranker) Top(word string, n int) ([]Candidate, error) {
	ranked, err := r.Rank(word)
	if err != nil {
		return nil, err
	}

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}

	top := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		top = append(top, ranked[i])
		if ranked[i].Ratio == 1.0 {
			break
		}
	}
	return top, nil
}

// Size returns the number of dictionary entries the Ranker scores.
func (r *Ranker) Size() int {
	return len(r.words)
}
