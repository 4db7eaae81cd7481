// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides a growable, zero-terminated text value
//              that stores short content inline and longer content in an
//              exclusively owned heap block.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package textx provides Text, a mutable byte string for hot paths where
// heap allocation must be kept to a minimum.
//
// # Representation
//
// Every Text carries an inline array of InlineSize bytes. Content of up to
// InlineCapacity bytes lives there and costs no allocation. Longer content
// moves to a heap block whose size is the content length plus terminator,
// rounded up to Policy.Alignment. The content is always followed by a zero
// byte, so CString can hand it to code that expects a terminated buffer.
//
//	t := textx.New("abc")      // inline
//	_ = t.ConcatString("defgh") // 8 bytes: moves to a 16-byte heap block
//	fmt.Println(t.Len(), t.Cap(), t.IsInline()) // 8 15 false
//
// # Ownership
//
// A Text owns its heap block and must not be copied by value; go vet
// reports such copies. Clone makes a deep copy, MoveFrom and Take transfer
// the block without allocating, and Release hands the block back to the
// allocator for reuse.
//
// # Failures
//
// Operations that may allocate return an error: ErrCapacityExceeded when
// the request is above Policy.MaxCapacity, ErrAllocationFailed when the
// Allocator has no block. A failed Reserve, Concat, Insert or Replace
// leaves the content unchanged. A failed assignment (Assign, Set) leaves
// the value invalid: it reads as empty and Valid reports false. Positions
// and indices outside the content are ignored rather than reported.
//
// # Allocation
//
// Heap blocks come from an Allocator. By default they are recycled through
// a PoolAllocator built on bytebufferpool; set Policy.PoolBlocks to false
// to use plain garbage-collected slices. NewWithAllocator attaches a
// specific allocator to a value and everything derived from it.
//
// # Configuration
//
// The policy can be loaded from a TOML or YAML file:
//
//	[textx]
//	alignment = 32
//	max_capacity = 1048575
//	pool_blocks = true
//	log_level = "warn"
//
//	cfg, err := config.Load("textx.toml")
//	if err != nil {
//		return err
//	}
//	if err := textx.WatchConfig(ctx, cfg); err != nil {
//		return err
//	}
//
// WatchConfig applies the file immediately and again whenever it changes.
//
// # Thread Safety
//
// A Text is not safe for concurrent mutation. The policy, the package
// logger and Empty may be used from any goroutine.
package textx
