// SPDX-License-Identifier: MIT

// Package kmp provides tunable options and error definitions for
// Knuth–Morris–Pratt substring search.
package kmp

import (
	"errors"
	"fmt"

	"github.com/shipitparrotclemz/prefixfunc/lpp"
)

// Sentinel errors for Compile.
var (
	// ErrEmptyPattern is returned when compiling an empty pattern.
	ErrEmptyPattern = errors.New("kmp: pattern must be non-empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmp: invalid option supplied")
)

// Option configures a Matcher via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Compile.
type Option func(*MatchOptions)

// MatchOptions holds the search parameters of a Matcher.
type MatchOptions struct {
	// Overlap allows matches to share symbols ("aa" occurs 3 times in "aaaa").
	// When false, scanning resumes after the end of each match (2 times).
	Overlap bool

	// Limit, if > 0, stops a scan after that many matches.
	// 0 means no limit.
	Limit int

	// Counter, if non-nil, receives the work done while compiling the
	// pattern and while scanning texts. It is shared by every scan.
	Counter *lpp.Counter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns MatchOptions with overlapping matches, no limit and
// no instrumentation.
func DefaultOptions() MatchOptions {
	return MatchOptions{
		Overlap: true,
		Limit:   0,
		Counter: nil,
		err:     nil,
	}
}

// WithOverlap toggles overlapping matches.
func WithOverlap(on bool) Option {
	return func(o *MatchOptions) {
		o.Overlap = on
	}
}

// WithLimit caps the number of matches reported per scan.
//
//	n > 0: stop after n matches
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *MatchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Limit = n
	}
}

// WithCounter attaches c to the Matcher.
func WithCounter(c *lpp.Counter) Option {
	return func(o *MatchOptions) {
		o.Counter = c
	}
}
