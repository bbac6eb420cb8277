// SPDX-License-Identifier: MIT

package kmp

import (
	"iter"

	"github.com/shipitparrotclemz/prefixfunc/lpp"
)

// Matcher is a compiled pattern. It is immutable after Compile and safe for
// concurrent use, except for a Counter attached with WithCounter.
type Matcher[S comparable] struct {
	pattern []S
	table   lpp.Table
	opts    MatchOptions
}

// Compile copies pattern, builds its LPP table with lpp.Linear and applies
// opts, skipping nil ones. Returns ErrEmptyPattern or ErrOptionViolation.
//
// Complexity: O(m) time and memory for a pattern of length m.
func Compile[S comparable](pattern []S, opts ...Option) (*Matcher[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	p := make([]S, len(pattern))
	copy(p, pattern)

	return &Matcher[S]{
		pattern: p,
		table:   lpp.Linear(p, lpp.WithCounter(o.Counter)),
		opts:    o,
	}, nil
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher[S]) Pattern() []S {
	out := make([]S, len(m.pattern))
	copy(out, m.pattern)

	return out
}

// Table returns the LPP table of the pattern.
func (m *Matcher[S]) Table() lpp.Table { return m.table }

// All yields the start offset of every match in text, left to right,
// honoring Overlap and Limit.
//
// Algorithm Outline:
//
//	j = number of pattern symbols matched so far, i = text position
//	text[i] == pattern[j]: i++, j++; on j == m report i-m and continue
//	                       from j = t[m-1] (overlap) or j = 0
//	j == 0:                i++
//	otherwise:             j = t[j-1], same i
//
// Every comparison either advances i or shrinks j, and j never grows by more
// than i does, so a scan performs at most 2·len(text) comparisons.
func (m *Matcher[S]) All(text []S) iter.Seq[int] {
	return func(yield func(int) bool) {
		m.scan(text, yield)
	}
}

// Index returns the offset of the first match, or -1.
func (m *Matcher[S]) Index(text []S) int {
	pos := -1
	m.scan(text, func(i int) bool {
		pos = i

		return false
	})

	return pos
}

// IndexAll returns the offsets of all matches (see All). The result is
// non-nil.
func (m *Matcher[S]) IndexAll(text []S) []int {
	out := []int{}
	for i := range m.All(text) {
		out = append(out, i)
	}

	return out
}

// Count returns the number of matches (see All).
func (m *Matcher[S]) Count(text []S) int {
	n := 0
	m.scan(text, func(int) bool {
		n++

		return true
	})

	return n
}

// scan runs the search, calling yield for each match until it returns
// false or Limit is reached.
func (m *Matcher[S]) scan(text []S, yield func(int) bool) {
	var cmp, fb, adv, found int
	defer func() {
		if c := m.opts.Counter; c != nil {
			c.Comparisons += cmp
			c.Fallbacks += fb
			c.Advances += adv
		}
	}()

	plen := len(m.pattern)
	j := 0
	for i := 0; i < len(text); {
		cmp++
		switch {
		case text[i] == m.pattern[j]:
			i++
			j++
			adv++
			if j < plen {
				continue
			}
			found++
			if !yield(i-plen) || (m.opts.Limit > 0 && found >= m.opts.Limit) {
				return
			}
			if m.opts.Overlap {
				j = m.table.At(plen - 1)
			} else {
				j = 0
			}
		case j == 0:
			i++
			adv++
		default:
			j = m.table.At(j - 1)
			fb++
		}
	}
}

// Index returns the offset of the first occurrence of pattern in text, or
// -1. An empty pattern matches at 0.
func Index[S comparable](text, pattern []S) int {
	if len(pattern) == 0 {
		return 0
	}
	m, _ := Compile(pattern)

	return m.Index(text)
}

// Contains reports whether pattern occurs in text.
func Contains[S comparable](text, pattern []S) bool {
	return Index(text, pattern) >= 0
}

// Count returns the number of non-overlapping occurrences of pattern in
// text, like strings.Count. An empty pattern occurs len(text)+1 times.
func Count[S comparable](text, pattern []S) int {
	if len(pattern) == 0 {
		return len(text) + 1
	}
	m, _ := Compile(pattern, WithOverlap(false))

	return m.Count(text)
}
