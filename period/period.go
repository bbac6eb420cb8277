// SPDX-License-Identifier: MIT

// Package period detects repeating substring patterns: whether a sequence
// is a whole repetition of a shorter block, and which block.
//
// Periodicity corollary
//
//	Let n = len(s) and k the last entry of its LPP table. Then p = n-k is
//	the smallest period of s (s[i] == s[i+p] for all valid i). If p
//	divides n, s is exactly n/p copies of s[0:p]; otherwise s is not a whole
//	repetition of any shorter block.
//
// Smallest, Decompose and IsRepeated use lpp.Linear and run in O(n).
// BruteForce tries every proper divisor of n and is kept as a reference.
package period

import (
	"slices"

	"github.com/shipitparrotclemz/prefixfunc/divisors"
	"github.com/shipitparrotclemz/prefixfunc/lpp"
)

// Smallest returns the smallest period of s, or 0 for an empty s.
// The period need not divide len(s): Smallest("abcab") == 3.
func Smallest[S comparable](s []S) int {
	return lpp.Linear(s).Period()
}

// Decompose returns the shortest block root and count k with s == root^k.
// If s is not a repetition of a shorter block, it returns (s, 1).
// An empty s returns (nil, 0). root aliases s.
func Decompose[S comparable](s []S) (root []S, k int) {
	n := len(s)
	if n == 0 {
		return nil, 0
	}
	p := Smallest(s)
	if n%p != 0 {
		return s, 1
	}

	return s[:p:p], n / p
}

// IsRepeated reports whether s is two or more copies of a shorter block.
func IsRepeated[S comparable](s []S) bool {
	_, k := Decompose(s)

	return k >= 2
}

// BruteForce returns the length of the shortest block whose repetition
// forms s, trying the proper divisors of len(s) in ascending order. It
// returns len(s) when s is not a repetition, and 0 for an empty s.
//
// Complexity: O(n·d(n)) time, where d(n) is the number of divisors of n.
func BruteForce[S comparable](s []S) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	cands, err := divisors.Proper(n)
	if err != nil {
		// unreachable: n >= 1
		return n
	}
	for _, d := range cands {
		if repeats(s, d) {
			return d
		}
	}

	return n
}

// repeats reports whether s is a whole repetition of s[0:d].
func repeats[S comparable](s []S, d int) bool {
	for off := d; off < len(s); off += d {
		if !slices.Equal(s[:d], s[off:off+d]) {
			return false
		}
	}

	return true
}
