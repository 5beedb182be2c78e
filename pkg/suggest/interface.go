// Package suggest is the core ranking engine, scoring dictionary words
// against a query by gestalt similarity and serving prefix lookups.
package suggest

// Suggester is implemented by anything that can propose ranked
// corrections for a word.
type Suggester interface {
	// Top returns up to n candidates for word, best first.
	Top(word string, n int) ([]Candidate, error)
}
