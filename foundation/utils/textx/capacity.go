// File: capacity.go
// Title: Capacity Management
// Description: Reserve and shrink logic, including migration between the
//              inline and heap representations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

// Reserve guarantees that n content bytes fit without reallocation. On an
// invalid value it allocates a fresh buffer, making the value valid again.
// On failure the previous content is left intact.
func (t *Text) Reserve(n int) error {
	if n < 0 {
		n = 0
	}
	if t.mode != modeInvalid && t.Cap() >= n {
		return nil
	}
	return t.changeBuffer(n)
}

// Shrink releases spare heap capacity. Content short enough to be stored
// inline moves back into the value and the heap block is freed.
func (t *Text) Shrink() error {
	if t.mode != modeHeap {
		return nil
	}
	if t.n > InlineCapacity && blockSize(t.n, CurrentPolicy()) >= len(t.heap) {
		return nil
	}
	return t.changeBuffer(t.n)
}

// blockSize returns the heap block size holding n content bytes plus the
// terminator under policy p.
func blockSize(n int, p Policy) int {
	size := (n + p.Alignment) &^ (p.Alignment - 1)
	if size > p.MaxCapacity+1 {
		size = p.MaxCapacity + 1
	}
	return size
}

// changeBuffer resizes the storage to hold maxLen content bytes. It never
// drops content: maxLen must be at least t.n.
func (t *Text) changeBuffer(maxLen int) error {
	if maxLen <= InlineCapacity {
		if t.mode == modeHeap {
			old := t.heap
			copy(t.inline[:], old[:t.n])
			t.heap = nil
			t.allocator().Free(old)
		}
		t.mode = modeInline
		t.inline[t.n] = 0
		return nil
	}

	p := CurrentPolicy()
	if maxLen > p.MaxCapacity {
		logger().Warn("capacity request above policy maximum",
			mdwlog.Fields{"requested": maxLen, "max_capacity": p.MaxCapacity})
		return ErrCapacityExceeded
	}

	size := blockSize(maxLen, p)
	a := t.allocator()

	var block []byte
	oldSize := 0
	switch t.mode {
	case modeHeap:
		oldSize = len(t.heap)
		block = a.Realloc(t.heap, size)
	default:
		block = a.Alloc(size)
		if block != nil && t.mode == modeInline {
			oldSize = copy(block, t.inline[:])
		}
	}
	if block == nil {
		logger().WarnWithErr("heap allocation failed", ErrAllocationFailed,
			mdwlog.Fields{"requested": maxLen, "block_size": size})
		return ErrAllocationFailed
	}

	if size > oldSize {
		clear(block[oldSize:size])
	}
	block = block[:size]
	if t.mode == modeInvalid {
		t.n = 0
	}
	t.mode = modeHeap
	t.heap = block
	t.heap[t.n] = 0
	return nil
}
