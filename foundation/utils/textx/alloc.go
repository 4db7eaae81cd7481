// File: alloc.go
// Title: Heap Block Allocators
// Description: Allocator abstraction for heap-mode storage with a pooled
//              implementation backed by bytebufferpool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

// Allocator provides the heap blocks behind heap-mode values. Each block is
// released exactly once, through Realloc or Free.
type Allocator interface {
	// Alloc returns a block of exactly size bytes, or nil if none is
	// available. The contents are unspecified.
	Alloc(size int) []byte

	// Realloc returns a block of size bytes starting with the first
	// min(len(old), size) bytes of old, and releases old. On failure it
	// returns nil and old stays valid.
	Realloc(old []byte, size int) []byte

	// Free releases a block obtained from Alloc or Realloc.
	Free(block []byte)
}

// PoolAllocator recycles heap blocks through a calibrating byte buffer
// pool. It is safe for concurrent use.
type PoolAllocator struct {
	pool   bytebufferpool.Pool
	shells sync.Pool // empty *bytebufferpool.ByteBuffer wrappers
}

// NewPoolAllocator returns an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// Alloc implements Allocator. It never fails.
func (a *PoolAllocator) Alloc(size int) []byte {
	bb := a.pool.Get()
	b := bb.B
	bb.B = nil
	a.shells.Put(bb)

	if cap(b) < size {
		return make([]byte, size)
	}
	return b[:size]
}

// Realloc implements Allocator. Growing within the spare capacity of old
// keeps the same block.
func (a *PoolAllocator) Realloc(old []byte, size int) []byte {
	if size > len(old) && size <= cap(old) {
		return old[:size]
	}
	b := a.Alloc(size)
	copy(b, old)
	a.Free(old)
	return b
}

// Free implements Allocator.
func (a *PoolAllocator) Free(block []byte) {
	if cap(block) == 0 {
		return
	}
	bb, _ := a.shells.Get().(*bytebufferpool.ByteBuffer)
	if bb == nil {
		bb = &bytebufferpool.ByteBuffer{}
	}
	// Put calibrates on len and resets the buffer itself.
	bb.B = block
	a.pool.Put(bb)
}

// GoAllocator hands out plain slices and leaves reclamation to the
// garbage collector.
type GoAllocator struct{}

// Alloc implements Allocator.
func (GoAllocator) Alloc(size int) []byte { return make([]byte, size) }

// Realloc implements Allocator.
func (GoAllocator) Realloc(old []byte, size int) []byte {
	b := make([]byte, size)
	copy(b, old)
	return b
}

// Free implements Allocator.
func (GoAllocator) Free([]byte) {}

var sharedPool = NewPoolAllocator()

// defaultAllocator is used by values created without an explicit
// allocator. The choice follows Policy.PoolBlocks at call time; blocks
// from either allocator may be released to the other.
func defaultAllocator() Allocator {
	if CurrentPolicy().PoolBlocks {
		return sharedPool
	}
	return GoAllocator{}
}
