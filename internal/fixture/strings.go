// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"math/rand"
	"strings"
)

// Scenario is a literal input with its expected LPP table.
type Scenario struct {
	Name  string
	Input string
	Want  []int
}

// Scenarios returns the literal reference cases. A fresh slice is returned on
// every call so callers may modify it.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "empty", Input: "", Want: []int{}},
		{Name: "single", Input: "a", Want: []int{0}},
		{Name: "abc", Input: "abc", Want: []int{0, 0, 0}},
		{Name: "ababc", Input: "ababc", Want: []int{0, 0, 1, 2, 0}},
		{Name: "abcab", Input: "abcab", Want: []int{0, 0, 0, 1, 2}},
		{Name: "abcabc", Input: "abcabc", Want: []int{0, 0, 0, 1, 2, 3}},
		{Name: "abcabcabc", Input: "abcabcabc", Want: []int{0, 0, 0, 1, 2, 3, 4, 5, 6}},
		{Name: "abacababac", Input: "abacababac", Want: []int{0, 0, 1, 0, 1, 2, 3, 2, 3, 4}},
		{Name: "abacababacab", Input: "abacababacab", Want: []int{0, 0, 1, 0, 1, 2, 3, 2, 3, 4, 5, 6}},
		{Name: "abc*4", Input: strings.Repeat("abc", 4), Want: []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{Name: "abc*5", Input: strings.Repeat("abc", 5), Want: []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{Name: "abc*6", Input: strings.Repeat("abc", 6), Want: []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{Name: "abc*7", Input: strings.Repeat("abc", 7), Want: []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}},
		{Name: "aaaa", Input: "aaaa", Want: []int{0, 1, 2, 3}},
		{Name: "aaab", Input: "aaab", Want: []int{0, 1, 2, 0}},
		{Name: "aabaaab", Input: "aabaaab", Want: []int{0, 1, 0, 1, 2, 2, 3}},
	}
}

// AllButLast returns n-1 copies of 'a' followed by one 'b' ("aaa...ab"),
// the worst case of the naive builder. n <= 0 yields an empty slice.
func AllButLast(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = 'a'
	}
	out[n-1] = 'b'

	return out
}

// Periodic returns the first n symbols of unit repeated forever.
// An empty unit yields an empty slice.
func Periodic(unit string, n int) []byte {
	if unit == "" || n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = unit[i%len(unit)]
	}

	return out
}

// Fibonacci returns the first n symbols of the infinite Fibonacci word
// (a, ab, aba, abaab, ...), a classic source of long fallback chains.
func Fibonacci(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	prev, cur := []byte("a"), []byte("ab")
	for len(cur) < n {
		next := make([]byte, 0, len(cur)+len(prev))
		next = append(next, cur...)
		next = append(next, prev...)
		prev, cur = cur, next
	}

	return cur[:n:n]
}

// Distinct returns 0, 1, ..., n-1: an input with no repeated symbol.
func Distinct(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Random returns n symbols drawn uniformly from alphabet using rng.
// A nil rng uses the DefaultSeed stream. Small alphabets produce many
// borders, which is what the builders need to be exercised on.
func Random(rng *rand.Rand, alphabet string, n int) []byte {
	if rng == nil {
		rng = Rand(0)
	}
	if alphabet == "" || n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return out
}

// Case is a named input from the adversarial battery.
type Case struct {
	Name  string
	Input []byte
}

// Battery returns a deterministic set of inputs of length n that stress
// fallback chains: all-equal, "aaa...ab", periodic, Fibonacci, and random
// strings over two-, three- and four-letter alphabets.
func Battery(seed int64, n int) []Case {
	base := Rand(seed)
	cases := []Case{
		{Name: fmt.Sprintf("all-equal/%d", n), Input: Periodic("a", n)},
		{Name: fmt.Sprintf("all-but-last/%d", n), Input: AllButLast(n)},
		{Name: fmt.Sprintf("periodic-ab/%d", n), Input: Periodic("ab", n)},
		{Name: fmt.Sprintf("periodic-aab/%d", n), Input: Periodic("aab", n)},
		{Name: fmt.Sprintf("periodic-abacaba/%d", n), Input: Periodic("abacaba", n)},
		{Name: fmt.Sprintf("fibonacci/%d", n), Input: Fibonacci(n)},
	}
	for i, alphabet := range []string{"ab", "abc", "abcd"} {
		rng := Derive(base, uint64(i))
		cases = append(cases, Case{
			Name:  fmt.Sprintf("random-%s/%d", alphabet, n),
			Input: Random(rng, alphabet, n),
		})
	}

	return cases
}
