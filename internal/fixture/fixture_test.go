// SPDX-License-Identifier: MIT

package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipitparrotclemz/prefixfunc/internal/fixture"
)

// TestRand_SeedDeterminism checks that equal seeds give equal streams and
// that seed 0 maps to DefaultSeed.
func TestRand_SeedDeterminism(t *testing.T) {
	a, b := fixture.Rand(7), fixture.Rand(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
	assert.Equal(t, fixture.Rand(fixture.DefaultSeed).Int63(), fixture.Rand(0).Int63())
}

// TestDerive_IndependentStreams checks that stream ids decorrelate.
func TestDerive_IndependentStreams(t *testing.T) {
	x := fixture.Derive(nil, 1).Int63()
	y := fixture.Derive(nil, 2).Int63()
	assert.NotEqual(t, x, y)
	assert.Equal(t, x, fixture.Derive(nil, 1).Int63())
}

// TestGenerators covers the deterministic shapes.
func TestGenerators(t *testing.T) {
	assert.Equal(t, []byte("aaab"), fixture.AllButLast(4))
	assert.Equal(t, []byte("b"), fixture.AllButLast(1))
	assert.Empty(t, fixture.AllButLast(0))

	assert.Equal(t, []byte("abcab"), fixture.Periodic("abc", 5))
	assert.Empty(t, fixture.Periodic("", 5))

	assert.Equal(t, []byte("abaababaabaab"), fixture.Fibonacci(13))
	assert.Equal(t, []byte("a"), fixture.Fibonacci(1))
	assert.Empty(t, fixture.Fibonacci(0))

	assert.Equal(t, []int{0, 1, 2}, fixture.Distinct(3))
}

// TestRandom stays inside the alphabet and is reproducible.
func TestRandom(t *testing.T) {
	s := fixture.Random(fixture.Rand(3), "xy", 100)
	require.Len(t, s, 100)
	assert.Empty(t, strings.Trim(string(s), "xy"))
	assert.Equal(t, s, fixture.Random(fixture.Rand(3), "xy", 100))
	assert.Empty(t, fixture.Random(nil, "", 10))
}

// TestBattery returns inputs of the requested length with unique names.
func TestBattery(t *testing.T) {
	cases := fixture.Battery(1, 17)
	seen := map[string]bool{}
	for _, c := range cases {
		assert.Len(t, c.Input, 17, c.Name)
		assert.False(t, seen[c.Name], "duplicate name %s", c.Name)
		seen[c.Name] = true
	}
	assert.Len(t, cases, 9)
}

// TestScenarios keeps the table lengths aligned with their inputs.
func TestScenarios(t *testing.T) {
	for _, sc := range fixture.Scenarios() {
		assert.Len(t, sc.Want, len(sc.Input), sc.Name)
	}
}
