// File: text.go
// Title: Text Value Representation
// Description: Two-mode (inline/heap) zero-terminated text value with
//              constructors, accessors, copy and move.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"unsafe"

	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
	mdwstringx "github.com/msto63/mdwtext/foundation/utils/stringx"
)

const (
	// InlineSize is the size of the storage embedded in every Text.
	InlineSize = 8

	// InlineCapacity is the longest content kept inline; one byte of
	// InlineSize is reserved for the terminator.
	InlineCapacity = InlineSize - 1

	// NotFound is returned by the search methods when nothing matches.
	NotFound = -1
)

type mode uint8

const (
	modeInline mode = iota
	modeHeap
	modeInvalid
)

// noCopy lets go vet's copylocks check flag Text values copied after use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Text is a growable byte string that is always followed by a zero byte.
//
// Content of up to InlineCapacity bytes lives inside the value; longer
// content lives in a heap block owned exclusively by the Text. The zero
// value is an empty, valid Text.
//
// A Text must not be copied after first use. Use Clone for a deep copy and
// MoveFrom or Take to transfer ownership.
type Text struct {
	noCopy noCopy

	mode   mode
	n      int
	inline [InlineSize]byte
	heap   []byte // capacity+1 bytes while mode == modeHeap
	alloc  Allocator
}

// New returns a Text holding a copy of s. If the content cannot be stored
// the result is invalid.
func New(s string) *Text {
	t := &Text{}
	_ = t.Assign(s)
	return t
}

// NewWithAllocator returns an empty Text whose heap blocks come from a.
// Values derived from it (Clone, Substring, Add) share the allocator.
func NewWithAllocator(a Allocator) *Text {
	return &Text{alloc: a}
}

// FromBytes returns a Text holding a copy of b. A nil slice yields an
// invalid value.
func FromBytes(b []byte) *Text {
	t := &Text{}
	_ = t.AssignBytes(b)
	return t
}

// FromByte returns a one-byte Text.
func FromByte(c byte) *Text {
	t := &Text{n: 1}
	t.inline[0] = c
	return t
}

// Valid reports whether t has a buffer. Invalid values read as empty but
// reject self-concatenation.
func (t *Text) Valid() bool {
	return t != nil && t.mode != modeInvalid
}

// Len returns the content length in bytes.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Cap returns how many content bytes fit without reallocation.
func (t *Text) Cap() int {
	switch t.mode {
	case modeInline:
		return InlineCapacity
	case modeHeap:
		return len(t.heap) - 1
	}
	return 0
}

// IsInline reports whether the content is stored inside the value.
func (t *Text) IsInline() bool {
	return t.mode == modeInline
}

// buf returns the active storage including the terminator slot, or nil
// for an invalid value.
func (t *Text) buf() []byte {
	if t == nil {
		return nil
	}
	switch t.mode {
	case modeInline:
		return t.inline[:]
	case modeHeap:
		return t.heap
	}
	return nil
}

func (t *Text) setLen(n int) {
	t.n = n
	t.buf()[n] = 0
}

// Bytes returns the content without the terminator. The slice aliases the
// value and is only valid until the next mutation. It is nil for an
// invalid or nil value.
func (t *Text) Bytes() []byte {
	b := t.buf()
	if b == nil {
		return nil
	}
	return b[:t.n:t.n]
}

// CString returns the content followed by its zero terminator, or nil for
// an invalid value. The slice aliases the value.
func (t *Text) CString() []byte {
	b := t.buf()
	if b == nil {
		return nil
	}
	return b[: t.n+1 : t.n+1]
}

// String returns a copy of the content.
func (t *Text) String() string {
	return string(t.Bytes())
}

// At returns the byte at index i, or 0 when i is out of range.
func (t *Text) At(i int) byte {
	if i < 0 || i >= t.n {
		return 0
	}
	return t.buf()[i]
}

// SetAt overwrites the byte at index i. Out-of-range indices are ignored.
func (t *Text) SetAt(i int, c byte) {
	if i < 0 || i >= t.n {
		return
	}
	t.buf()[i] = c
}

// allocator returns the allocator for heap transitions of t.
func (t *Text) allocator() Allocator {
	if t.alloc != nil {
		return t.alloc
	}
	return defaultAllocator()
}

// free returns the heap block, if any, to the allocator.
func (t *Text) free() {
	if t.mode == modeHeap && t.heap != nil {
		t.allocator().Free(t.heap)
	}
	t.heap = nil
}

// Invalidate releases the buffer and marks t invalid.
func (t *Text) Invalidate() {
	t.free()
	t.mode = modeInvalid
	t.n = 0
}

// Release returns the heap block to the allocator and resets t to the
// empty inline state. Call it when a heap-backed value is discarded so the
// block can be recycled.
func (t *Text) Release() {
	t.free()
	t.reset()
}

func (t *Text) reset() {
	t.mode = modeInline
	t.n = 0
	t.heap = nil
	t.inline[0] = 0
}

// offsetOf returns the offset of b inside t's storage, or -1 when b does
// not point into it.
func (t *Text) offsetOf(b []byte) int {
	buf := t.buf()
	if len(b) == 0 || len(buf) == 0 {
		return -1
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < base || p >= base+uintptr(len(buf)) {
		return -1
	}
	return int(p - base)
}

// detach returns b, or a private copy of it when b aliases t's storage.
func (t *Text) detach(b []byte) []byte {
	if t.offsetOf(b) < 0 {
		return b
	}
	return append([]byte(nil), b...)
}

// Assign replaces the content with a copy of s.
func (t *Text) Assign(s string) error {
	return t.copyFrom(mdwstringx.StringToBytes(s))
}

// AssignBytes replaces the content with a copy of b. A nil slice
// invalidates t and returns ErrNilInput.
func (t *Text) AssignBytes(b []byte) error {
	if b == nil {
		t.Invalidate()
		return ErrNilInput
	}
	return t.copyFrom(b)
}

// copyFrom copies b into t. On failure t is invalidated.
func (t *Text) copyFrom(b []byte) error {
	off := t.offsetOf(b)
	if err := t.Reserve(len(b)); err != nil {
		t.Invalidate()
		logger().WarnWithErr("assignment failed, value invalidated", err,
			mdwlog.Field("length", len(b)))
		return err
	}
	buf := t.buf()
	if off >= 0 {
		b = buf[off : off+len(b)]
	}
	copy(buf, b)
	t.setLen(len(b))
	return nil
}

// Set makes t a deep copy of src. Assigning a value to itself is a no-op;
// an invalid src invalidates t.
func (t *Text) Set(src *Text) error {
	if t == src {
		return nil
	}
	if src == nil {
		t.Invalidate()
		return ErrNilInput
	}
	if !src.Valid() {
		t.Invalidate()
		return nil
	}
	return t.copyFrom(src.Bytes())
}

// Clone returns an independent copy of t.
func (t *Text) Clone() *Text {
	c := &Text{alloc: t.alloc}
	_ = c.Set(t)
	return c
}

// MoveFrom transfers src's content and buffer to t and resets src to the
// empty inline state. No allocation happens. Moving a value onto itself
// is a no-op.
func (t *Text) MoveFrom(src *Text) {
	if t == src || src == nil {
		return
	}
	t.free()
	t.mode = src.mode
	t.n = src.n
	t.inline = src.inline
	t.heap = src.heap
	t.alloc = src.alloc
	src.reset()
}

// Take moves t's content into a new value and leaves t empty.
func (t *Text) Take() *Text {
	out := &Text{}
	out.MoveFrom(t)
	return out
}
