// SPDX-License-Identifier: MIT

// Package divisors counts and lists the proper divisors of a positive
// integer.
//
// A string of length n can only be a whole repetition of a block whose
// length is a proper divisor of n, so the divisor count bounds the number of
// candidate blocks a repeated-pattern check has to try. HighlyComposite gives
// the lengths where that count is largest.
package divisors

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNonPositive is returned for n < 1.
var ErrNonPositive = errors.New("divisors: n must be positive")

// CountProper returns the number of divisors of n in [1, n/2], i.e. every
// divisor except n itself.
//
// Complexity: O(n) time, O(1) memory.
func CountProper(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositive, n)
	}
	count := 0
	for d := 1; d <= n/2; d++ {
		if n%d == 0 {
			count++
		}
	}

	return count, nil
}

// Proper returns the divisors of n in [1, n/2] in ascending order.
// Proper(1) is empty.
//
// Complexity: O(√n) time.
func Proper(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositive, n)
	}
	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if q := n / d; q != d {
			high = append(high, q)
		}
	}
	slices.Reverse(high)
	all := append(low, high...)

	// drop n itself
	return all[:len(all)-1], nil
}

// highlyComposite lists the first highly composite numbers (OEIS A002182):
// each has more divisors than any smaller positive integer.
var highlyComposite = []int{
	1, 2, 4, 6, 12, 24, 36, 48, 60, 120, 180, 240, 360, 720, 840, 1260, 1680,
	2520, 5040, 7560, 10080, 15120, 20160, 25200, 27720, 45360, 50400, 55440,
	83160, 110880, 166320, 221760, 277200, 332640, 498960, 554400, 665280,
	720720, 1081080, 1441440, 2162160,
}

// HighlyComposite returns a copy of the first highly composite numbers.
func HighlyComposite() []int {
	return slices.Clone(highlyComposite)
}
