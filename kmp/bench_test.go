// SPDX-License-Identifier: MIT

package kmp_test

import (
	"bytes"
	"testing"

	"github.com/shipitparrotclemz/prefixfunc/internal/fixture"
	"github.com/shipitparrotclemz/prefixfunc/kmp"
)

// BenchmarkMatcher_AllButLast searches "aaa...ab" in "aaa...a", the input
// that makes a naive scan quadratic.
func BenchmarkMatcher_AllButLast(b *testing.B) {
	const n = 1 << 16
	text := bytes.Repeat([]byte("a"), n)
	m, _ := kmp.Compile(fixture.AllButLast(256))

	b.ReportAllocs()
	b.SetBytes(n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Count(text)
	}
}

// BenchmarkMatcher_Random counts a short pattern in a random binary text.
func BenchmarkMatcher_Random(b *testing.B) {
	const n = 1 << 16
	text := fixture.Random(fixture.Rand(5), "ab", n)
	m, _ := kmp.Compile([]byte("abba"))

	b.ReportAllocs()
	b.SetBytes(n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Count(text)
	}
}
