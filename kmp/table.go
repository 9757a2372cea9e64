package kmp

import (
	"errors"
	"fmt"
)

var (
	ErrTableLength   = errors.New("kmp: table length does not match pattern")
	ErrTableSentinel = errors.New("kmp: table must start with -1")
	ErrTableBounds   = errors.New("kmp: table entry out of range")
)

// Table is a prefix-suffix (failure) table for a pattern of length m.
// It has m+1 entries. Entry 0 is the -1 sentinel and entry k, for k >= 1,
// is the cursor to resume from after a mismatch at pattern position k,
// always in [-1, k).
type Table []int

// Builder computes the failure table of a pattern. Weak and Strong are the
// two builders provided by this package.
type Builder[T comparable] func(pattern []T) Table

// Weak builds the classic prefix-suffix table: entry k is the length of the
// longest proper prefix of pattern[:k] that is also its suffix.
func Weak[T comparable](pattern []T) Table {
	t := -1
	table := make(Table, 1, len(pattern)+1)
	table[0] = t
	for _, x := range pattern {
		for t >= 0 && pattern[t] != x {
			t = table[t]
		}
		t++
		table = append(table, t)
	}
	return table
}

// Strong builds the optimized prefix-suffix table. Where falling back to t
// would compare the same symbol that has just failed (pattern[t] equals the
// next pattern symbol), the entry chains one level further to table[t].
// Matches found with a strong table are the same as with a weak one, with
// fewer or equal comparisons.
func Strong[T comparable](pattern []T) Table {
	m := len(pattern)
	t := -1
	table := make(Table, 1, m+1)
	table[0] = t
	for i, x := range pattern {
		for t >= 0 && pattern[t] != x {
			t = table[t]
		}
		t++
		if i+1 < m && pattern[t] == pattern[i+1] {
			table = append(table, table[t])
		} else {
			table = append(table, t)
		}
	}
	return table
}

// Validate checks that tbl is structurally usable with a pattern of
// length patternLen. It does not check that tbl was built from that
// particular pattern.
func (tbl Table) Validate(patternLen int) error {
	if len(tbl) != patternLen+1 {
		return fmt.Errorf("%w: got %d entries, want %d", ErrTableLength, len(tbl), patternLen+1)
	}
	if tbl[0] != -1 {
		return fmt.Errorf("%w: table[0] = %d", ErrTableSentinel, tbl[0])
	}
	for k := 1; k < len(tbl); k++ {
		if v := tbl[k]; v < -1 || v >= k {
			return fmt.Errorf("%w: table[%d] = %d, want [-1, %d)", ErrTableBounds, k, v, k)
		}
	}
	return nil
}

// mustValidate panics if tbl cannot drive a search for a pattern of
// length patternLen. A mismatched table is a caller bug.
func (tbl Table) mustValidate(patternLen int) {
	if err := tbl.Validate(patternLen); err != nil {
		panic(err)
	}
}
