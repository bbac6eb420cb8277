// SPDX-License-Identifier: MIT

package lpp

import "fmt"

// Builder is the common signature shared by Naive, Incremental and Linear.
type Builder[S comparable] func(s []S, opts ...Option) Table

// BuilderFor returns the builder implementing algo.
// Returns ErrUnknownAlgorithm for values outside the Algorithm enum.
func BuilderFor[S comparable](algo Algorithm) (Builder[S], error) {
	switch algo {
	case NaiveAlgo:
		return Naive[S], nil
	case IncrementalAlgo:
		return Incremental[S], nil
	case LinearAlgo:
		return Linear[S], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// Build runs the builder selected by algo on s.
//
// Example:
//
//	t, err := lpp.Build([]byte("ababc"), lpp.IncrementalAlgo)
//	// t = [0 0 1 2 0]
func Build[S comparable](s []S, algo Algorithm, opts ...Option) (Table, error) {
	b, err := BuilderFor[S](algo)
	if err != nil {
		return Table{}, err
	}

	return b(s, opts...), nil
}

// OfString builds the table of the bytes of s with Linear.
func OfString(s string, opts ...Option) Table {
	return Linear([]byte(s), opts...)
}

// CrossCheck runs every builder on s and returns the agreed table.
// If two builders disagree, the error wraps ErrDisagreement and names the
// first differing index. Options (e.g. a Counter) apply to every run.
//
// Complexity: dominated by Naive, O(n³).
func CrossCheck[S comparable](s []S, opts ...Option) (Table, error) {
	return crossCheck(s, map[Algorithm]Builder[S]{
		NaiveAlgo:       Naive[S],
		IncrementalAlgo: Incremental[S],
		LinearAlgo:      Linear[S],
	}, opts...)
}

// crossCheck compares every builder in builders against the LinearAlgo
// entry, in Algorithms() order.
func crossCheck[S comparable](s []S, builders map[Algorithm]Builder[S], opts ...Option) (Table, error) {
	ref, ok := builders[LinearAlgo]
	if !ok {
		return Table{}, fmt.Errorf("%w: no %s reference", ErrUnknownAlgorithm, LinearAlgo)
	}
	want := ref(s, opts...)
	for _, algo := range Algorithms() {
		b, ok := builders[algo]
		if !ok || algo == LinearAlgo {
			continue
		}
		got := b(s, opts...)
		if i := got.firstDiff(want); i >= 0 {
			return Table{}, fmt.Errorf("%w: %s and %s differ at index %d (%s vs %s)",
				ErrDisagreement, algo, LinearAlgo, i, got, want)
		}
	}

	return want, nil
}
