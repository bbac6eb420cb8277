// SPDX-License-Identifier: MIT

package lpp

import (
	"fmt"
	"slices"
)

// Table is an immutable LPP table.
//
// Every entry satisfies 0 <= At(i) <= i and At(0) == 0. The bounds are
// checked when an entry is written, so a Table obtained from a builder or
// from FromValues can never hold an out-of-range length.
//
// The zero Table is the (valid) table of the empty sequence.
type Table struct {
	lens []int
}

// newTable allocates a zero-filled table of n entries.
func newTable(n int) Table {
	return Table{lens: make([]int, n)}
}

// record stores k as the entry for end index i.
// Panics if k is outside [0, i]: builders must make this unreachable.
func (t Table) record(i, k int) {
	if k < 0 || k > i {
		panic(fmt.Sprintf("lpp: invariant violated: table[%d] = %d outside [0, %d]", i, k, i))
	}
	t.lens[i] = k
}

// FromValues validates vals and wraps a copy of them in a Table.
//
// Errors:
//   - ErrBaseCase: vals[0] != 0.
//   - ErrOutOfBounds: some vals[i] outside [0, i].
//
// Only the bounds are checked here; use Verify to check vals against an input.
func FromValues(vals []int) (Table, error) {
	if len(vals) > 0 && vals[0] != 0 {
		return Table{}, fmt.Errorf("%w: table[0] = %d", ErrBaseCase, vals[0])
	}
	t := newTable(len(vals))
	for i, k := range vals {
		if k < 0 || k > i {
			return Table{}, fmt.Errorf("%w: table[%d] = %d outside [0, %d]", ErrOutOfBounds, i, k, i)
		}
		t.lens[i] = k
	}

	return t, nil
}

// Len returns the number of entries (the input length).
func (t Table) Len() int { return len(t.lens) }

// At returns the LPP length for the prefix ending at index i.
// Panics if i is out of range, like a slice index.
func (t Table) At(i int) int { return t.lens[i] }

// Last returns the final entry, or 0 for an empty table.
func (t Table) Last() int {
	if len(t.lens) == 0 {
		return 0
	}

	return t.lens[len(t.lens)-1]
}

// Values returns a copy of the entries.
func (t Table) Values() []int {
	out := make([]int, len(t.lens))
	copy(out, t.lens)

	return out
}

// Equal reports whether t and o hold the same entries.
func (t Table) Equal(o Table) bool {
	return slices.Equal(t.lens, o.lens)
}

// Borders returns every border length of the prefix ending at index i,
// longest first, excluding the empty border. It is the fallback chain
// t[i], t[t[i]-1], ... that the builders walk.
//
// Complexity: O(len(result)).
func (t Table) Borders(i int) []int {
	var out []int
	for k := t.lens[i]; k > 0; k = t.lens[k-1] {
		out = append(out, k)
	}

	return out
}

// Period returns the smallest period of the whole input, n - t[n-1].
// Returns 0 for an empty table.
func (t Table) Period() int {
	if len(t.lens) == 0 {
		return 0
	}

	return len(t.lens) - t.Last()
}

// String implements fmt.Stringer, e.g. "[0 0 1 2 0]".
func (t Table) String() string {
	return fmt.Sprint(t.lens)
}

// firstDiff returns the first index where t and o differ, or -1.
// A length difference reports the shorter length.
func (t Table) firstDiff(o Table) int {
	n := min(len(t.lens), len(o.lens))
	for i := range n {
		if t.lens[i] != o.lens[i] {
			return i
		}
	}
	if len(t.lens) != len(o.lens) {
		return n
	}

	return -1
}
