// SPDX-License-Identifier: MIT

package lpp

// Naive builds the LPP table of s by brute force.
//
// Algorithm Outline:
//  1. t[0] = 0. For every end index e >= 1, search the longest proper prefix of s[0..e]
//     that is also its suffix.
//  2. The search pairs a prefix cursor p (from 0) with a suffix cursor q
//     (from start, initially 1) and advances both while s[p] == s[q].
//  3. On a mismatch the attempt is abandoned: start moves one to the right,
//     q restarts at start and p at 0. Partial progress is never reused.
//  4. When q passes e, the suffix s[start..e] equals the prefix s[0..p-1],
//     so t[e] = p. The first start that succeeds gives the longest border;
//     if none does, q reaches e+1 with start = e+1 and p = 0.
//
// Complexity:
//
//	Time   = O(n²) per end index in the worst case (e.g. "aaa...ab"),
//	         O(n³) overall
//	Memory = O(n)
func Naive[S comparable](s []S, opts ...Option) Table {
	o := resolve(opts)
	t := newTable(len(s))
	for e := 1; e < len(s); e++ {
		t.record(e, naiveBorder(s, e, o.Counter))
		o.Counter.advance()
	}

	return t
}

// naiveBorder returns the longest proper border length of s[0..e].
func naiveBorder[S comparable](s []S, e int, c *Counter) int {
	start := 1
	p, q := 0, start
	for q <= e {
		c.compare()
		if s[p] == s[q] {
			p++
			q++
			continue
		}
		// retry with a one-shorter span
		c.fallback()
		start++
		p, q = 0, start
	}

	return p
}
