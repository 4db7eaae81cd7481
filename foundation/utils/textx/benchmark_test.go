// File: benchmark_test.go
// Title: Benchmarks for Text
// Description: Allocation behaviour of the inline and heap paths and of
//              the common editing operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial benchmarks

package textx

import (
	"strings"
	"testing"
)

func BenchmarkNewInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("short")
	}
}

func BenchmarkNewHeap(b *testing.B) {
	s := strings.Repeat("x", 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New(s)
		v.Release()
	}
}

func BenchmarkConcatByte(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Text
		for j := 0; j < 256; j++ {
			_ = v.ConcatByte('a')
		}
		v.Release()
	}
}

func BenchmarkConcatReserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Text
		_ = v.Reserve(256)
		for j := 0; j < 256; j++ {
			_ = v.ConcatByte('a')
		}
		v.Release()
	}
}

func BenchmarkConcatInt(b *testing.B) {
	v := New("")
	_ = v.Reserve(64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Truncate(0)
		_ = v.ConcatInt(int64(i))
	}
}

func BenchmarkReplace(b *testing.B) {
	in := strings.Repeat("key=value;", 20)
	b.Run("Shrinking", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New(in)
			_ = v.Replace("value", "v")
			v.Release()
		}
	})
	b.Run("Growing", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New(in)
			_ = v.Replace(";", "; ")
			v.Release()
		}
	})
}

func BenchmarkIndex(b *testing.B) {
	v := New(strings.Repeat("abcdefgh", 64) + "needle")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Index("needle", 0)
	}
}

func BenchmarkAdd(b *testing.B) {
	lhs := New(strings.Repeat("l", 40))
	rhs := New(strings.Repeat("r", 40))
	b.Run("Add", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			Add(lhs, rhs).Release()
		}
	})
	b.Run("AddTakeBoth", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			AddTakeBoth(lhs.Clone(), rhs.Clone()).Release()
		}
	})
}

func BenchmarkAllocators(b *testing.B) {
	allocs := map[string]Allocator{
		"Pool": NewPoolAllocator(),
		"Go":   GoAllocator{},
	}
	for name, a := range allocs {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := NewWithAllocator(a)
				_ = v.Reserve(1024)
				v.Release()
			}
		})
	}
}
