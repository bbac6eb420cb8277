// SPDX-License-Identifier: MIT

package lpp

// Incremental builds the LPP table of s, seeding each candidate length from
// the previous entry.
//
// Algorithm Outline:
//  1. t[0] = 0.
//  2. For e = 1..n-1 the candidate length is cand = t[e-1] + 1: a border of
//     s[0..e] is always a border of s[0..e-1] extended by one symbol.
//  3. Verify s[0:cand] against s[e-cand+1:e+1] from the top with a prefix
//     cursor p and a suffix cursor q.
//  4. On a mismatch at p:
//     p == 0: no candidate is left and t[e] stays 0;
//     p >  0: shrink to cand = t[p-1] + 1 and restart the verification.
//  5. If q passes e, t[e] = cand.
//
// Candidate invariant: cand-1 is always a border of s[0..e-1] (it is t[e-1]
// or an entry of its fallback chain). Hence the suffix start e-cand+1 is
// recomputed as at least 1 after every fallback, the first cand-1 symbols
// always verify, and a mismatch can only occur at p == cand-1, which makes
// t[p-1] the next border in the chain. The restart from the top is the
// remaining inefficiency.
//
// Complexity:
//
//	Time   = O(n) per end index, O(n²) overall
//	Memory = O(n)
func Incremental[S comparable](s []S, opts ...Option) Table {
	o := resolve(opts)
	n := len(s)
	t := newTable(n)
	if n == 0 {
		return t
	}

	for e := 1; e < n; e++ {
		t.record(e, incrementalBorder(s, t, e, o.Counter))
		o.Counter.advance()
	}

	return t
}

// incrementalBorder returns the longest proper border length of s[0..e],
// given the entries t[0..e-1].
func incrementalBorder[S comparable](s []S, t Table, e int, c *Counter) int {
	cand := t.At(e-1) + 1
	p, q := 0, e-cand+1
	for q <= e {
		c.compare()
		if s[p] == s[q] {
			p++
			q++
			continue
		}
		if p == 0 {
			return 0
		}
		c.fallback()
		cand = t.At(p-1) + 1
		p, q = 0, e-cand+1
	}

	return cand
}
