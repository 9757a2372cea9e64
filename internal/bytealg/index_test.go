package bytealg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		hay, needle string
		want        int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"", "a", -1},
		{"abc", "a", 0},
		{"abc", "c", 2},
		{"abc", "abcd", -1},
		{"xxabxab", "xab", 1},
		{strings.Repeat("a", 100) + "b", "aab", 98},
	}

	for _, tt := range tests {
		got := Index([]byte(tt.hay), []byte(tt.needle))
		assert.Equal(t, strings.Index(tt.hay, tt.needle), got, "Index(%q, %q)", tt.hay, tt.needle)
		assert.Equal(t, tt.want, got, "Index(%q, %q)", tt.hay, tt.needle)
	}
}

func TestIndexAll(t *testing.T) {
	tests := []struct {
		hay, needle string
		want        []int
	}{
		{"ananasy", "ana", []int{0, 2}},
		{"aaaa", "aa", []int{0, 1, 2}},
		{"abc", "", []int{0, 1, 2, 3}},
		{"", "", []int{0}},
		{"abc", "x", nil},
	}

	for _, tt := range tests {
		got := IndexAll([]byte(tt.hay), []byte(tt.needle))
		assert.Equal(t, tt.want, got, "IndexAll(%q, %q)", tt.hay, tt.needle)
		assert.Equal(t, len(tt.want), Count([]byte(tt.hay), []byte(tt.needle)))
	}
}

func TestIndexTokens(t *testing.T) {
	hay := strings.Fields("to be or not to be that is")
	assert.Equal(t, []int{0, 4}, IndexAll(hay, []string{"to", "be"}))
	assert.Equal(t, -1, Index(hay, []string{"be", "to"}))
}
