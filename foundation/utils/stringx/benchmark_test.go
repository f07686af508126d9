// File: benchmark_test.go
// Title: Performance Benchmarks for stringx
// Description: Benchmarks for the hot scanning, search and copy paths and
//              for String growth through different allocators.
// Author: msto63
// Version: v0.3.2
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.3.0: Initial benchmarks
// - 2026-10-14 v0.3.2: Allocator comparison

package stringx

import (
	"strings"
	"testing"

	"github.com/msto63/strcore/foundation/utils/allocx"
)

var benchText = strings.Repeat("The Quick Brown Fox Jumps Over The Lazy Dog. ", 64)

func BenchmarkStrlen(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Strlen(benchText)
	}
}

func BenchmarkStristr(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Stristr(benchText, "lazy dog. the quick", Unbounded)
	}
}

func BenchmarkStrnstr(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Strnstr(benchText, "Lazy Dog. The Quick", Unbounded)
	}
}

func BenchmarkStrlcpy(b *testing.B) {
	dst := make([]byte, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Strlcpy(dst, benchText)
	}
}

func BenchmarkSnprintf(b *testing.B) {
	dst := make([]byte, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Snprintf(dst, "%s=%d", "key", i)
	}
}

func benchmarkAppend(b *testing.B, a allocx.Allocator) {
	chunk := []byte("0123456789abcdef")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := NewString(a)
		for j := 0; j < 32; j++ {
			_ = s.Append(chunk)
		}
		s.Release()
	}
}

func BenchmarkAppendHeap(b *testing.B) {
	benchmarkAppend(b, allocx.Heap{})
}

func BenchmarkAppendPool(b *testing.B) {
	benchmarkAppend(b, allocx.NewPool())
}
