// SPDX-License-Identifier: MIT

package lpp

import "fmt"

// Linear builds the LPP table of s in a single forward pass.
//
// Algorithm Outline:
//
//	matched = 0, scan = 1
//	while scan < n:
//	  if s[matched] == s[scan]:      extend the border
//	    matched++; t[scan] = matched; scan++
//	  else if matched == 0:          no border ends at scan
//	    t[scan] = 0; scan++
//	  else:                          fall back, same scan position
//	    matched = t[matched-1]
//
// Loop invariant: at the top of every iteration matched is the length of a
// border of s[0..scan-1], so s[0:matched] == s[scan-matched:scan].
//
// Fallback invariant: t[matched-1] <= matched-1, so each fallback strictly
// decreases matched, bounded below by 0. matched grows by at most one per
// forward step, so the total number of fallbacks is at most the number of
// forward steps, n-1.
//
// Work bound: every iteration performs exactly one comparison and either
// advances scan or falls back, hence
//
//	Comparisons = Advances + Fallbacks <= 2(n-1)
//
// Complexity:
//
//	Time   = O(n) amortized
//	Memory = O(n)
func Linear[S comparable](s []S, opts ...Option) Table {
	o := resolve(opts)
	n := len(s)
	t := newTable(n)

	matched, scan := 0, 1
	for scan < n {
		o.Counter.compare()
		switch {
		case s[matched] == s[scan]:
			matched++
			t.record(scan, matched)
			scan++
			o.Counter.advance()
		case matched == 0:
			t.record(scan, 0)
			scan++
			o.Counter.advance()
		default:
			next := t.At(matched - 1)
			mustShrink(next, matched)
			matched = next
			o.Counter.fallback()
		}
	}

	return t
}

// mustShrink panics unless 0 <= next < cur. Unreachable while Table bounds
// hold; kept as an explicit check of the fallback invariant.
func mustShrink(next, cur int) {
	if next < 0 || next >= cur {
		panic(fmt.Sprintf("lpp: fallback must shrink the matched length: %d -> %d", cur, next))
	}
}
