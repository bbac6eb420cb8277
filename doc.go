// SPDX-License-Identifier: MIT

// Package prefixfunc is a small library around the prefix function: the
// table of longest proper prefix lengths (LPP table) behind KMP substring
// search and repeated-pattern detection.
//
// 🚀 What is the LPP table?
//
//	For every prefix s[0..i] it stores the length of the longest proper
//	prefix that is also a suffix of that prefix:
//
//	  a b a c a b a b a c
//	  0 0 1 0 1 2 3 2 3 4
//
// ✨ What's inside:
//
//	lpp/: the LPP Table type and three builders computing it:
//	    Naive O(n³), Incremental O(n²), Linear O(n) amortized,
//	    plus a cross-check, a definition-level Verify and a
//	    work Counter that makes the linear bound testable
//	kmp/: Knuth–Morris–Pratt search on top of lpp.Linear
//	period/: "is s a repetition of a shorter block?" via the
//	    periodicity corollary, with a divisor-scan reference
//	divisors/: proper-divisor counting and the highly composite numbers
//	    that bound how many blocks a divisor scan has to try
//
// Pure Go, generic over any comparable symbol type, no global state and no
// logging: every function is a pure computation over its arguments.
//
//	go get github.com/shipitparrotclemz/prefixfunc
package prefixfunc
