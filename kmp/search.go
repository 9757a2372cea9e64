// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// algorithm over sequences of any comparable symbol type.
//
// A failure table is built once per pattern, with Weak or Strong, and then
// drives any number of searches. Each search consumes the haystack exactly
// once, never backtracking, and yields match offsets lazily as an iter.Seq.
//
//	for pos := range kmp.Search(needle, haystack, kmp.Strong(needle)) {
//		...
//	}
//
// An empty pattern matches at every offset from 0 to len(haystack)
// inclusive, the same convention as strings.Index and strings.Count.
package kmp

import (
	"iter"
	"slices"
)

// cursor is the state of one in-progress search.
type cursor[T comparable] struct {
	pattern []T
	table   Table
	i       int // pattern symbols matched against the tail of the haystack, -1..m
	off     int // haystack symbols consumed
	cmps    int // symbol comparisons performed
}

// feed consumes one haystack symbol and reports whether a match ends at it.
// The pattern must not be empty.
func (c *cursor[T]) feed(sym T) bool {
	for c.i >= 0 {
		c.cmps++
		if c.pattern[c.i] == sym {
			break
		}
		c.i = c.table[c.i]
	}
	c.i++
	c.off++
	if c.i == len(c.pattern) {
		c.i = c.table[c.i]
		return true
	}
	return false
}

// start is the offset of the match that feed has just reported.
func (c *cursor[T]) start() int {
	return c.off - len(c.pattern)
}

// Search yields the start offset of every occurrence of pattern in
// haystack, overlapping occurrences included, in increasing order.
// Table must have been built from pattern; Search panics if it does not
// satisfy Validate.
func Search[T comparable](pattern, haystack []T, table Table) iter.Seq[int] {
	return Scan(pattern, slices.Values(haystack), table)
}

// Scan is like Search but reads the haystack from a sequence. The haystack
// is pulled only as far as needed: stopping the returned sequence early
// stops consuming the haystack.
func Scan[T comparable](pattern []T, haystack iter.Seq[T], table Table) iter.Seq[int] {
	table.mustValidate(len(pattern))
	return scan(pattern, haystack, table)
}

// scan is Scan without the table check.
func scan[T comparable](pattern []T, haystack iter.Seq[T], table Table) iter.Seq[int] {
	if len(pattern) == 0 {
		return everyOffset(haystack)
	}
	return func(yield func(int) bool) {
		c := cursor[T]{pattern: pattern, table: table}
		for sym := range haystack {
			if c.feed(sym) && !yield(c.start()) {
				return
			}
		}
	}
}

// SearchString searches the bytes of haystack for the bytes of pattern.
// Table must have been built from []byte(pattern).
func SearchString(pattern, haystack string, table Table) iter.Seq[int] {
	return Scan([]byte(pattern), stringBytes(haystack), table)
}

// Comparisons runs a full search and returns the number of symbol
// comparisons it performed. Strong tables never need more than weak ones.
func Comparisons[T comparable](pattern, haystack []T, table Table) int {
	table.mustValidate(len(pattern))
	if len(pattern) == 0 {
		return 0
	}
	c := cursor[T]{pattern: pattern, table: table}
	for _, sym := range haystack {
		c.feed(sym)
	}
	return c.cmps
}

// everyOffset yields 0 through the length of haystack, the empty
// pattern's matches.
func everyOffset[T any](haystack iter.Seq[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !yield(0) {
			return
		}
		n := 0
		for range haystack {
			n++
			if !yield(n) {
				return
			}
		}
	}
}

func stringBytes(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}
