// SPDX-License-Identifier: MIT

// Package lpp builds longest-proper-prefix (LPP) tables, also known as the
// prefix function or the KMP failure function.
//
// What
//
//	For a sequence s of n symbols, the LPP table t has n entries and
//	t[i] is the length of the longest proper prefix of s[0..i] that is
//	also a proper suffix of s[0..i]:
//
//	  s = a b a c a b a b a c
//	  t = 0 0 1 0 1 2 3 2 3 4
//
// Three builders compute the identical table:
//
//   - Naive: brute force per end index, restarting the suffix scan
//     on every mismatch. O(n³) time.
//   - Incremental: seeds each candidate from the previous entry and falls
//     back through the table, but re-verifies the candidate from the top.
//     O(n²) time.
//   - Linear: the classic two-cursor pass. The matched-length cursor
//     only falls back through already computed entries, so total work is
//     amortized O(n).
//
// All builders are total: any finite input, including an empty one, yields a
// table of the same length. They never return errors and never retain s.
//
// Symbols
//
//	Builders are generic over any comparable element type. For strings pick
//	[]byte(s) or []rune(s) and stay with it; OfString uses bytes.
//
// Instrumentation
//
//	Pass WithCounter to any builder to record comparisons, fallbacks and
//	forward advances. Linear guarantees Comparisons <= 2n and
//	Fallbacks <= n for an input of length n.
//
// Usage:
//
//	t := lpp.Linear([]byte("abcabcabc"))
//	fmt.Println(t)            // [0 0 0 1 2 3 4 5 6]
//	fmt.Println(t.Period())   // 3
//
//	var c lpp.Counter
//	_ = lpp.Naive([]byte("aaaab"), lpp.WithCounter(&c))
//
//	agreed, err := lpp.CrossCheck(input) // all three builders must agree
package lpp
