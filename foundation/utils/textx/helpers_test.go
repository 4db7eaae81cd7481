// File: helpers_test.go
// Title: Shared Test Helpers
// Description: Counting allocator and policy helpers used across the textx
//              tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"os"
	"testing"
	"unsafe"

	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

func TestMain(m *testing.M) {
	SetLogger(mdwlog.Discard())
	os.Exit(m.Run())
}

// countingAllocator tracks live blocks and fails on demand.
type countingAllocator struct {
	t      *testing.T
	fail   bool
	allocs int
	frees  int
	live   map[*byte]int
}

func newCountingAllocator(t *testing.T) *countingAllocator {
	t.Helper()
	return &countingAllocator{t: t, live: make(map[*byte]int)}
}

func (a *countingAllocator) Alloc(size int) []byte {
	if a.fail || size == 0 {
		return nil
	}
	b := make([]byte, size)
	a.allocs++
	a.live[&b[0]] = size
	return b
}

func (a *countingAllocator) Realloc(old []byte, size int) []byte {
	if a.fail {
		return nil
	}
	b := a.Alloc(size)
	copy(b, old)
	a.Free(old)
	return b
}

func (a *countingAllocator) Free(block []byte) {
	if len(block) == 0 {
		a.t.Errorf("Free called with empty block")
		return
	}
	key := &block[0]
	if _, ok := a.live[key]; !ok {
		a.t.Errorf("Free of unknown or already released block %p", key)
		return
	}
	delete(a.live, key)
	a.frees++
}

func (a *countingAllocator) assertNoLeaks() {
	a.t.Helper()
	if len(a.live) != 0 {
		a.t.Errorf("%d heap blocks still live (allocs=%d frees=%d)", len(a.live), a.allocs, a.frees)
	}
}

// withPolicy installs p for the duration of the test.
func withPolicy(t *testing.T, p Policy) {
	t.Helper()
	prev := CurrentPolicy()
	if err := SetPolicy(p); err != nil {
		t.Fatalf("SetPolicy(%+v) error = %v", p, err)
	}
	t.Cleanup(func() { _ = SetPolicy(prev) })
}

// bufferAddr identifies the active storage of v.
func bufferAddr(v *Text) *byte {
	return unsafe.SliceData(v.buf())
}

func mustNew(t *testing.T, s string) *Text {
	t.Helper()
	v := New(s)
	if !v.Valid() {
		t.Fatalf("New(%q) returned invalid value", s)
	}
	return v
}

func assertContent(t *testing.T, v *Text, want string) {
	t.Helper()
	if got := v.String(); got != want {
		t.Errorf("content = %q; want %q", got, want)
	}
	if v.Len() != len(want) {
		t.Errorf("Len() = %d; want %d", v.Len(), len(want))
	}
	if b := v.buf(); b != nil && b[v.Len()] != 0 {
		t.Errorf("missing terminator after %d bytes", v.Len())
	}
}
