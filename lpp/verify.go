// SPDX-License-Identifier: MIT

package lpp

import (
	"fmt"
	"slices"
)

// Verify checks that t is the LPP table of s straight from the definition,
// independently of any builder.
//
// Checks, in order:
//   - len(t) == len(s)                                 (ErrLengthMismatch)
//   - t[0] == 0                                        (ErrBaseCase)
//   - 0 <= t[i] <= i                                   (ErrOutOfBounds)
//   - t[i] = k > 0 implies s[0:k] == s[i-k+1:i+1]      (ErrNotBorder)
//   - no k' in (t[i], i] is also a border              (ErrNotMaximal)
//
// Complexity: O(n³) time, O(1) extra memory. Meant for tests and harnesses.
func Verify[S comparable](s []S, t Table) error {
	if t.Len() != len(s) {
		return fmt.Errorf("%w: len(table) = %d, len(input) = %d", ErrLengthMismatch, t.Len(), len(s))
	}
	if len(s) == 0 {
		return nil
	}
	if t.At(0) != 0 {
		return fmt.Errorf("%w: table[0] = %d", ErrBaseCase, t.At(0))
	}
	for i := range s {
		k := t.At(i)
		if k < 0 || k > i {
			return fmt.Errorf("%w: table[%d] = %d outside [0, %d]", ErrOutOfBounds, i, k, i)
		}
		if !isBorder(s, i, k) {
			return fmt.Errorf("%w: table[%d] = %d", ErrNotBorder, i, k)
		}
		for longer := i; longer > k; longer-- {
			if isBorder(s, i, longer) {
				return fmt.Errorf("%w: table[%d] = %d, border of length %d exists", ErrNotMaximal, i, k, longer)
			}
		}
	}

	return nil
}

// isBorder reports whether s[0:k] == s[i-k+1:i+1], for 0 <= k <= i.
func isBorder[S comparable](s []S, i, k int) bool {
	return slices.Equal(s[:k], s[i-k+1:i+1])
}
