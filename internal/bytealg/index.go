// Package bytealg holds brute-force search routines over sequences of
// comparable symbols. They make no attempt to be fast and serve as the
// reference the KMP matchers are checked against.
package bytealg

import "slices"

// Index finds the first match of needle in haystack, or -1.
func Index[T comparable](haystack, needle []T) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	if len(haystack) < n {
		return -1
	}
	first := needle[0]
	for i := 0; i <= len(haystack)-n; i++ {
		if haystack[i] == first && slices.Equal(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// IndexAll returns the start offset of every match of needle in haystack,
// overlapping ones included, in increasing order. An empty needle matches
// at every offset from 0 to len(haystack).
func IndexAll[T comparable](haystack, needle []T) []int {
	var out []int
	for base := 0; base <= len(haystack); {
		pos := Index(haystack[base:], needle)
		if pos < 0 {
			break
		}
		out = append(out, base+pos)
		base += pos + 1
	}
	return out
}

// Count reports the number of possibly overlapping matches.
func Count[T comparable](haystack, needle []T) int {
	return len(IndexAll(haystack, needle))
}
