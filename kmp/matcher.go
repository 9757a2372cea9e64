package kmp

import (
	"iter"
	"slices"
)

// Matcher performs repeated searches for one pattern.
// Construct once with New, then search any number of haystacks.
// The failure table is built once and shared by every search.
// A Matcher is immutable and safe for concurrent use.
type Matcher[T comparable] struct {
	pattern []T   // private copy of the pattern
	table   Table // failure table of pattern
}

// New creates a Matcher for pattern, building its table with build.
// A nil build selects Strong. New panics if build returns a table that
// does not fit the pattern.
func New[T comparable](pattern []T, build Builder[T]) *Matcher[T] {
	if build == nil {
		build = Strong[T]
	}
	p := slices.Clone(pattern)
	table := build(p)
	table.mustValidate(len(p))
	return &Matcher[T]{pattern: p, table: table}
}

// Len returns the length of the pattern.
func (m *Matcher[T]) Len() int {
	return len(m.pattern)
}

// Table returns a copy of the failure table.
func (m *Matcher[T]) Table() Table {
	return slices.Clone(m.table)
}

// All yields the start offset of every, possibly overlapping, match in
// haystack.
func (m *Matcher[T]) All(haystack []T) iter.Seq[int] {
	return scan(m.pattern, slices.Values(haystack), m.table)
}

// Scan yields the start offset of every match in a haystack sequence.
func (m *Matcher[T]) Scan(haystack iter.Seq[T]) iter.Seq[int] {
	return scan(m.pattern, haystack, m.table)
}

// Index finds the first occurrence of the pattern in haystack, or -1.
func (m *Matcher[T]) Index(haystack []T) int {
	if len(haystack) < len(m.pattern) {
		return -1
	}
	return first(m.All(haystack))
}

// Contains reports whether the pattern occurs in haystack.
func (m *Matcher[T]) Contains(haystack []T) bool {
	return m.Index(haystack) >= 0
}

// Count returns the number of possibly overlapping matches in haystack.
func (m *Matcher[T]) Count(haystack []T) int {
	if len(haystack) < len(m.pattern) {
		return 0
	}
	return count(m.All(haystack))
}

// StringMatcher is a Matcher over the bytes of a string pattern that
// searches string haystacks without copying them.
type StringMatcher struct {
	m *Matcher[byte]
}

// NewString creates a StringMatcher for pattern using a strong table.
func NewString(pattern string) *StringMatcher {
	return &StringMatcher{m: New([]byte(pattern), Strong[byte])}
}

// Len returns the length of the pattern in bytes.
func (s *StringMatcher) Len() int {
	return s.m.Len()
}

// All yields the byte offset of every, possibly overlapping, match.
func (s *StringMatcher) All(haystack string) iter.Seq[int] {
	return s.m.Scan(stringBytes(haystack))
}

// Index finds the byte offset of the first match, or -1.
func (s *StringMatcher) Index(haystack string) int {
	if len(haystack) < s.m.Len() {
		return -1
	}
	return first(s.All(haystack))
}

// Contains reports whether the pattern occurs in haystack.
func (s *StringMatcher) Contains(haystack string) bool {
	return s.Index(haystack) >= 0
}

// Count returns the number of possibly overlapping matches.
func (s *StringMatcher) Count(haystack string) int {
	if len(haystack) < s.m.Len() {
		return 0
	}
	return count(s.All(haystack))
}

func first(seq iter.Seq[int]) int {
	for pos := range seq {
		return pos
	}
	return -1
}

func count(seq iter.Seq[int]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
