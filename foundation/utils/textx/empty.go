// File: empty.go
// Title: Shared Empty Value
// Description: Process-wide read-only empty Text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import "sync"

var emptyText = sync.OnceValue(func() *Text { return &Text{} })

// ReadOnly is a query-only view of a Text.
type ReadOnly struct {
	t *Text
}

// Empty returns the shared empty value. It has no mutating methods and is
// safe for concurrent use.
func Empty() ReadOnly {
	return ReadOnly{t: emptyText()}
}

// Len returns the content length.
func (r ReadOnly) Len() int { return r.t.Len() }

// Valid reports whether the value has a buffer.
func (r ReadOnly) Valid() bool { return r.t.Valid() }

// String returns a copy of the content.
func (r ReadOnly) String() string { return r.t.String() }

// At returns the byte at i, or 0 when out of range.
func (r ReadOnly) At(i int) byte { return r.t.At(i) }

// Equal reports whether the view holds the same bytes as o.
func (r ReadOnly) Equal(o *Text) bool { return r.t.Equal(o) }

// Compare orders the view against o.
func (r ReadOnly) Compare(o *Text) int { return r.t.Compare(o) }

// Clone returns a mutable copy.
func (r ReadOnly) Clone() *Text { return r.t.Clone() }
