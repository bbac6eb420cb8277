// SPDX-License-Identifier: MIT

// Package fixture - deterministic input generators shared by the tests and
// benchmarks of lpp, kmp and period.
//
// Goals:
//   - Determinism: same seed ⇒ identical fixtures across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use Derive to create independent
//     streams for parallel subtests.
package fixture

import "math/rand"

// DefaultSeed is the seed used when callers pass seed == 0.
const DefaultSeed int64 = 1

// Rand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func Rand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64
// finalizer so that neighbouring stream ids give unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent deterministic stream for the given id.
// If base == nil, DefaultSeed is the parent; otherwise base.Int63() is
// consumed once so repeated derivations with the same id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
