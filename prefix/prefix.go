// Package prefix implements sorted-dictionary prefix search.
package prefix

import (
	"sort"
	"strings"
)

// Dict is an immutable sorted dictionary supporting prefix queries.
// Construct instances with NewDict; the zero Dict matches nothing.
type Dict struct {
	words []string // ascending; private copy of the constructor input
}

// NewDict builds a Dict from words. The input slice is copied and sorted
// internally; the caller's slice is never mutated or retained. Duplicate
// words are kept.
//
// Complexity: O(n log n).
func NewDict(words []string) *Dict {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	return &Dict{words: sorted}
}

// Search returns every word beginning with p, in ascending order. The
// empty prefix matches the whole dictionary; an unmatched prefix returns
// an empty slice. The returned slice is freshly allocated.
//
// Complexity: O(log n + m) for m matches.
func (d *Dict) Search(p string) []string {
	// Lower bound: first word >= p. Every match lies in the contiguous
	// run starting here, because the dictionary is sorted.
	i := sort.SearchStrings(d.words, p)

	matches := []string{}
	for ; i < len(d.words) && strings.HasPrefix(d.words[i], p); i++ {
		matches = append(matches, d.words[i])
	}

	return matches
}

// Len reports the number of words held, counting duplicates.
func (d *Dict) Len() int { return len(d.words) }

// Words returns a copy of the sorted dictionary contents.
//
// Complexity: O(n).
func (d *Dict) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)

	return out
}
