package kmp_test

import (
	"fmt"
	"strings"

	"github.com/jwilk/pyttern/kmp"
)

func ExampleSearch() {
	needle := []byte("ana")
	for pos := range kmp.Search(needle, []byte("ananasy"), kmp.Strong(needle)) {
		fmt.Println(pos)
	}
	// Output:
	// 0
	// 2
}

func ExampleWeak() {
	fmt.Println(kmp.Weak([]byte("ananasy")))
	fmt.Println(kmp.Strong([]byte("ananasy")))
	// Output:
	// [-1 0 0 1 2 3 0 0]
	// [-1 0 -1 0 -1 3 0 0]
}

func ExampleMatcher() {
	m := kmp.New(strings.Fields("to be"), kmp.Weak[string])
	words := strings.Fields("to be or not to be")
	fmt.Println(m.Index(words), m.Count(words))
	// Output: 0 2
}

func ExampleStringMatcher() {
	m := kmp.NewString("aa")
	fmt.Println(m.Count("aaaa"), m.Index("baaa"))
	// Output: 3 1
}
