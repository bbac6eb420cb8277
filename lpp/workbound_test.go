// SPDX-License-Identifier: MIT

package lpp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipitparrotclemz/prefixfunc/internal/fixture"
	"github.com/shipitparrotclemz/prefixfunc/lpp"
)

// TestLinear_WorkBound instruments Linear on adversarial inputs and checks
// Comparisons <= 2n, Fallbacks <= n and exactly n-1 forward advances.
func TestLinear_WorkBound(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000, 10000} {
		for _, c := range fixture.Battery(int64(n), n) {
			t.Run(c.Name, func(t *testing.T) {
				var cnt lpp.Counter
				_ = lpp.Linear(c.Input, lpp.WithCounter(&cnt))

				assert.LessOrEqual(t, cnt.Comparisons, 2*n, "comparisons: %s", &cnt)
				assert.LessOrEqual(t, cnt.Fallbacks, n, "fallbacks: %s", &cnt)
				assert.LessOrEqual(t, cnt.Work(), 3*n, "work: %s", &cnt)
				assert.Equal(t, n-1, cnt.Advances)
				assert.Equal(t, cnt.Advances+cnt.Fallbacks, cnt.Comparisons,
					"every iteration compares once and either advances or falls back")
			})
		}
	}
}

// TestLinear_WorkBoundNoRepeats has no borders at all, so nothing falls back.
func TestLinear_WorkBoundNoRepeats(t *testing.T) {
	var cnt lpp.Counter
	_ = lpp.Linear(fixture.Distinct(500), lpp.WithCounter(&cnt))
	assert.Equal(t, 499, cnt.Comparisons)
	assert.Equal(t, 0, cnt.Fallbacks)
}

// TestLinear_WorkBoundEmpty performs no work.
func TestLinear_WorkBoundEmpty(t *testing.T) {
	var cnt lpp.Counter
	_ = lpp.Linear([]byte{}, lpp.WithCounter(&cnt))
	assert.Equal(t, lpp.Counter{}, cnt)
}

// TestSlowBuilders_QuadraticOnAllEqual pins the exact comparison count of
// the slower builders on "aaaa...": both re-verify the whole candidate, so
// they perform 0 + 1 + ... + (n-1) comparisons where Linear performs n-1.
func TestSlowBuilders_QuadraticOnAllEqual(t *testing.T) {
	const n = 200
	input := fixture.Periodic("a", n)

	var naive, incr, linear lpp.Counter
	_ = lpp.Naive(input, lpp.WithCounter(&naive))
	_ = lpp.Incremental(input, lpp.WithCounter(&incr))
	_ = lpp.Linear(input, lpp.WithCounter(&linear))

	assert.Equal(t, n*(n-1)/2, naive.Comparisons)
	assert.Equal(t, 0, naive.Fallbacks)
	assert.Equal(t, n*(n-1)/2, incr.Comparisons)
	assert.Equal(t, n-1, linear.Comparisons)
}

// TestNaive_WorstCase checks the restart cost of Naive on "aaa...ab":
// the last end index alone costs n(n-1)/2 comparisons and n-1 restarts.
func TestNaive_WorstCase(t *testing.T) {
	const n = 100
	input := fixture.AllButLast(n)

	var cnt lpp.Counter
	tbl := lpp.Naive(input, lpp.WithCounter(&cnt))
	require.Equal(t, 0, tbl.Last())

	prefixCost := (n - 1) * (n - 2) / 2 // "aaa..." up to index n-2
	lastCost := n * (n - 1) / 2
	assert.Equal(t, prefixCost+lastCost, cnt.Comparisons)
	assert.Equal(t, n-1, cnt.Fallbacks)
}

// TestCounter_AccumulatesAndResets shares one counter across calls.
func TestCounter_AccumulatesAndResets(t *testing.T) {
	var cnt lpp.Counter
	_ = lpp.Linear([]byte("abc"), lpp.WithCounter(&cnt))
	_ = lpp.Linear([]byte("abc"), lpp.WithCounter(&cnt))
	assert.Equal(t, 4, cnt.Comparisons)
	assert.Equal(t, 4, cnt.Advances)

	cnt.Reset()
	assert.Equal(t, lpp.Counter{}, cnt)

	// nil counter is accepted and ignored
	assert.Equal(t, []int{0, 0, 0}, lpp.Linear([]byte("abc"), lpp.WithCounter(nil)).Values())
}

// TestBuilders_AdvancesAgree counts the same n-1 forward steps for every
// builder, so Advances can be compared across algorithms.
func TestBuilders_AdvancesAgree(t *testing.T) {
	for _, n := range []int{0, 1, 2, 16, 40} {
		for _, c := range fixture.Battery(int64(n), n) {
			for _, algo := range lpp.Algorithms() {
				var cnt lpp.Counter
				_, err := lpp.Build(c.Input, algo, lpp.WithCounter(&cnt))
				require.NoError(t, err)
				assert.Equal(t, max(n-1, 0), cnt.Advances, "%s on %s", algo, c.Name)
			}
		}
	}
}
