// Package fuzzy implements gestalt pattern matching between pairs of
// words, the Ratcliff/Obershelp algorithm as popularized by Python's
// difflib. Similarity is derived from actual matching character runs,
// not from edit counts: the longest common contiguous block is found
// first, then the regions to its left and right are matched recursively.
//
// A Matcher compares one query against many candidates efficiently:
// SetSeq2 builds a per-candidate index, so callers keep the query in
// seq1 and swap candidates into seq2.
package fuzzy

// Match is a run of identical runes: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// Matcher computes similarity ratios between two rune sequences.
// The zero value compares empty sequences; load words with NewMatcher
// or the SetSeq methods.
type Matcher struct {
	a      []rune
	b      []rune
	b2j    map[rune][]int
	blocks []Match
	bCount map[rune]int
}

// NewMatcher returns a Matcher comparing a against b.
func NewMatcher(a, b string) *Matcher {
	m := &Matcher{}
	m.SetSeqs(a, b)
	return m
}

// SetSeqs sets both sequences to be compared.
func (m *Matcher) SetSeqs(a, b string) {
	m.SetSeq1(a)
	m.SetSeq2(b)
}

// SetSeq1 sets the first sequence. The index built for the second
// sequence is kept, so comparing one word against many should call
// SetSeq2 once per candidate and leave the query in seq1.
func (m *Matcher) SetSeq1(a string) {
	m.a = []rune(a)
	m.blocks = nil
}

// SetSeq2 sets the second sequence and rebuilds its rune index.
func (m *Matcher) SetSeq2(b string) {
	m.b = []rune(b)
	m.blocks = nil
	m.bCount = nil
	m.chainB()
}

// chainB maps each rune of b to the positions where it occurs,
// in ascending order.
func (m *Matcher) chainB() {
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
}

// findLongestMatch returns the longest block of identical runes in
// a[alo:ahi] and b[blo:bhi]. Of all maximal blocks it returns the one
// starting earliest in a, and of those, the one starting earliest
// in b. If no runes match it returns Match{alo, blo, 0}.
func (m *Matcher) findLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j-blo] holds the length of the longest match ending at
	// a[i-1], b[j]. Only positions touched in the previous row are
	// cleared, so each row costs O(occurrences), not O(bhi-blo).
	n := bhi - blo
	j2len := make([]int, n)
	newj2len := make([]int, n)
	var indices []int
	for i := alo; i < ahi; i++ {
		newindices := m.b2j[m.a[i]]
		for _, j := range newindices {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := 1
			if j > blo {
				k = j2len[j-1-blo] + 1
			}
			newj2len[j-blo] = k
			// Strictly greater keeps the earliest block on ties.
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		for _, j := range indices {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			j2len[j-blo] = 0
		}
		indices = newindices
		j2len, newj2len = newj2len, j2len
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the non-overlapping matching blocks, in
// ascending order of position in both sequences. Adjacent blocks are
// merged, and the list always ends with the sentinel
// Match{len(a), len(b), 0}, the only block with Size == 0.
func (m *Matcher) MatchingBlocks() []Match {
	if m.blocks != nil {
		return m.blocks
	}

	var matchBlocks func(alo, ahi, blo, bhi int, matched []Match) []Match
	matchBlocks = func(alo, ahi, blo, bhi int, matched []Match) []Match {
		match := m.findLongestMatch(alo, ahi, blo, bhi)
		i, j, k := match.A, match.B, match.Size
		if k > 0 {
			if alo < i && blo < j {
				matched = matchBlocks(alo, i, blo, j, matched)
			}
			matched = append(matched, match)
			if i+k < ahi && j+k < bhi {
				matched = matchBlocks(i+k, ahi, j+k, bhi, matched)
			}
		}
		return matched
	}
	matched := matchBlocks(0, len(m.a), 0, len(m.b), nil)

	// Collapse blocks the recursion left adjacent to each other.
	merged := []Match{}
	i1, j1, k1 := 0, 0, 0
	for _, b := range matched {
		if i1+k1 == b.A && j1+k1 == b.B {
			k1 += b.Size
		} else {
			if k1 > 0 {
				merged = append(merged, Match{i1, j1, k1})
			}
			i1, j1, k1 = b.A, b.B, b.Size
		}
	}
	if k1 > 0 {
		merged = append(merged, Match{i1, j1, k1})
	}

	merged = append(merged, Match{len(m.a), len(m.b), 0})
	m.blocks = merged
	return m.blocks
}

// Ratio returns the similarity of the two sequences in [0, 1].
// With M the total size of all matching blocks and T the combined
// length of both sequences, the ratio is 2M/T. Two empty sequences
// are identical and score 1.0.
func (m *Matcher) Ratio() float64 {
	matches := 0
	for _, b := range m.MatchingBlocks() {
		matches += b.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on Ratio, cheaper to compute.
// It counts matching runes as multisets, ignoring order.
func (m *Matcher) QuickRatio() float64 {
	if m.bCount == nil {
		m.bCount = make(map[rune]int, len(m.b))
		for _, r := range m.b {
			m.bCount[r]++
		}
	}

	avail := make(map[rune]int)
	matches := 0
	for _, r := range m.a {
		n, ok := avail[r]
		if !ok {
			n = m.bCount[r]
		}
		avail[r] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns an even cheaper upper bound on Ratio, from
// the sequence lengths alone.
func (m *Matcher) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}

// Ratio is a convenience for one-shot comparisons.
func Ratio(a, b string) float64 {
	return NewMatcher(a, b).Ratio()
}

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}
