// SPDX-License-Identifier: MIT

// Package lpp defines options, counters, algorithm identifiers and sentinel
// errors shared by the LPP table builders.
package lpp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Builders themselves never fail; these are returned by the
// dispatcher, the cross-check and the verification helpers.
var (
	// ErrUnknownAlgorithm is returned when an Algorithm value is outside the enum.
	ErrUnknownAlgorithm = errors.New("lpp: unknown algorithm")

	// ErrDisagreement is returned by CrossCheck when two builders disagree.
	ErrDisagreement = errors.New("lpp: builders disagree")

	// ErrLengthMismatch indicates a table whose length differs from its input.
	ErrLengthMismatch = errors.New("lpp: table length does not match input")

	// ErrBaseCase indicates a non-empty table with t[0] != 0.
	ErrBaseCase = errors.New("lpp: first entry must be zero")

	// ErrOutOfBounds indicates an entry outside [0, i].
	ErrOutOfBounds = errors.New("lpp: entry out of bounds")

	// ErrNotBorder indicates t[i] = k but s[0:k] != s[i-k+1:i+1].
	ErrNotBorder = errors.New("lpp: entry is not a border")

	// ErrNotMaximal indicates a longer border exists than the recorded one.
	ErrNotMaximal = errors.New("lpp: entry is not maximal")
)

// Counter accumulates the work performed by a builder.
//
//   - Comparisons: symbol equality tests.
//   - Fallbacks: times a candidate length was shrunk or a scan restarted.
//   - Advances: forward steps past index 0; n-1 for an input of length n,
//     for every builder.
//
// Counts accumulate across calls until Reset. A Counter is not safe for
// concurrent use.
type Counter struct {
	Comparisons int
	Fallbacks   int
	Advances    int
}

// Work returns Comparisons + Fallbacks.
func (c *Counter) Work() int {
	if c == nil {
		return 0
	}

	return c.Comparisons + c.Fallbacks
}

// Reset zeroes all counts.
func (c *Counter) Reset() {
	if c != nil {
		*c = Counter{}
	}
}

// String implements fmt.Stringer.
func (c *Counter) String() string {
	if c == nil {
		return "lpp.Counter(nil)"
	}

	return fmt.Sprintf("comparisons=%d fallbacks=%d advances=%d", c.Comparisons, c.Fallbacks, c.Advances)
}

// compare, fallback and advance are nil-safe so builders can call them
// unconditionally in their hot loops.
func (c *Counter) compare() {
	if c != nil {
		c.Comparisons++
	}
}

func (c *Counter) fallback() {
	if c != nil {
		c.Fallbacks++
	}
}

func (c *Counter) advance() {
	if c != nil {
		c.Advances++
	}
}

// Option configures a builder via functional arguments.
type Option func(*Options)

// Options holds builder parameters.
type Options struct {
	// Counter, if non-nil, receives the work performed by the builder.
	Counter *Counter
}

// DefaultOptions returns Options with no instrumentation.
func DefaultOptions() Options {
	return Options{Counter: nil}
}

// WithCounter attaches c to the builder. A nil c leaves the builder
// uninstrumented.
func WithCounter(c *Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Algorithm selects one of the three table builders.
type Algorithm int

const (
	// NaiveAlgo is the O(n³) brute-force builder.
	NaiveAlgo Algorithm = iota

	// IncrementalAlgo is the O(n²) builder seeded from the previous entry.
	IncrementalAlgo

	// LinearAlgo is the amortized O(n) two-cursor builder.
	LinearAlgo
)

// Algorithms returns every supported Algorithm, slowest first.
func Algorithms() []Algorithm {
	return []Algorithm{NaiveAlgo, IncrementalAlgo, LinearAlgo}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case NaiveAlgo:
		return "naive"
	case IncrementalAlgo:
		return "incremental"
	case LinearAlgo:
		return "linear"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}
