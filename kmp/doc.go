// SPDX-License-Identifier: MIT

// Package kmp finds occurrences of a pattern in a text with the
// Knuth–Morris–Pratt algorithm, driven by the pattern's LPP table.
//
// What
//
//   - Compile builds the LPP table of the pattern once (lpp.Linear).
//   - A Matcher scans any number of texts in O(len(text)) time each,
//     never moving backwards in the text.
//   - Matches may overlap (default) or not (WithOverlap(false)), and a scan
//     can stop early after WithLimit(n) matches.
//
// Why
//
//	On a mismatch after j matched symbols, the longest proper border of
//	pattern[0:j] tells how much of the pattern is still known to match, so
//	the text cursor never rewinds.
//
// Usage:
//
//	m, err := kmp.Compile([]byte("aba"))
//	if err != nil {
//		// ErrEmptyPattern or ErrOptionViolation
//	}
//	m.IndexAll([]byte("abababa")) // [0 2 4]
//
//	for pos := range m.All(text) { ... }
//
// Package-level Index, Contains and Count follow the strings package
// conventions, including for an empty pattern.
package kmp
