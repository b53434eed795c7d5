// Package prefix provides prefix search over a sorted dictionary of words
// — the lower-bound-then-scan pattern behind simple autocomplete.
//
// What
//
//   - NewDict takes a word list and keeps a privately sorted copy; the
//     caller's slice is never mutated or retained.
//   - Search returns every word starting with the given prefix, in
//     ascending order: binary-search to the first candidate, then scan
//     while the prefix still holds.
//
// Why
//
//   - Autocomplete, command lookup, namespace listing — whenever "all keys
//     under this prefix" must answer faster than a full scan.
//   - A sorted slice beats a trie for static dictionaries: one allocation,
//     cache-friendly scans, no per-node overhead.
//
// Determinism
//
//	Results are always ascending; duplicate words in the input appear in
//	the results as many times as they were given.
//
// Complexity (n = dictionary size, m = number of matches)
//
//   - NewDict: O(n log n) once
//   - Search:  O(log n + m)
//   - Memory:  O(n)
//
// Usage
//
//	d := prefix.NewDict([]string{"apple", "apply", "banana", "band", "bandana", "cat"})
//	d.Search("ban") // [banana band bandana]
//
// Errors
//
//	None. An unmatched prefix returns an empty slice; the empty prefix
//	matches every word. Both are defined outcomes, not failures.
package prefix
