// File: search.go
// Title: Search and Extraction
// Description: Forward and backward search, substrings and bounded copies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	mdwstringx "github.com/msto63/mdwtext/foundation/utils/stringx"
)

// IndexByte returns the first index at or after from holding c, or
// NotFound. A from at or past Len() returns NotFound.
func (t *Text) IndexByte(c byte, from int) int {
	return mdwstringx.IndexByteFrom(t.Bytes(), c, from)
}

// Index returns the first index at or after from where s starts, or
// NotFound.
func (t *Text) Index(s string, from int) int {
	return t.index(mdwstringx.StringToBytes(s), from)
}

// IndexText is Index with a Text needle.
func (t *Text) IndexText(o *Text, from int) int {
	return t.index(o.Bytes(), from)
}

func (t *Text) index(needle []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= t.n {
		return NotFound
	}
	return mdwstringx.IndexFrom(t.Bytes(), needle, from)
}

// LastIndexByte returns the last index at or before from holding c, or
// NotFound. A from at or past Len() returns NotFound; pass Len()-1 to
// search the whole value.
func (t *Text) LastIndexByte(c byte, from int) int {
	if from < 0 || from >= t.n {
		return NotFound
	}
	return mdwstringx.LastIndexByteFrom(t.Bytes(), c, from)
}

// LastIndex returns the last index at or before from where s starts, or
// NotFound. from is clamped to Len()-1; the match may extend past from.
func (t *Text) LastIndex(s string, from int) int {
	return t.lastIndex(mdwstringx.StringToBytes(s), from)
}

// LastIndexText is LastIndex with a Text needle.
func (t *Text) LastIndexText(o *Text, from int) int {
	return t.lastIndex(o.Bytes(), from)
}

func (t *Text) lastIndex(needle []byte, from int) int {
	if len(needle) == 0 || t.n == 0 || len(needle) > t.n || from < 0 {
		return NotFound
	}
	if from >= t.n {
		from = t.n - 1
	}
	return mdwstringx.LastIndexFrom(t.Bytes(), needle, from)
}

// Contains reports whether s occurs in t.
func (t *Text) Contains(s string) bool {
	return t.Index(s, 0) != NotFound
}

// Substring returns a copy of bytes left through right-1. Inverted bounds
// are swapped, both bounds are clamped to 0..Len(), and left >= Len()
// yields an empty value.
func (t *Text) Substring(left, right int) *Text {
	if left > right {
		left, right = right, left
	}
	out := &Text{alloc: t.alloc}
	if left >= t.n {
		return out
	}
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	if right > t.n {
		right = t.n
	}
	_ = out.copyFrom(t.buf()[left:right])
	return out
}

// CopyTo copies content starting at index into dst, at most len(dst)-1
// bytes, and terminates it with a zero byte. It returns the number of
// content bytes copied.
func (t *Text) CopyTo(dst []byte, index int) int {
	if len(dst) == 0 {
		return 0
	}
	if index < 0 || index >= t.n {
		dst[0] = 0
		return 0
	}
	n := copy(dst[:len(dst)-1], t.buf()[index:t.n])
	dst[n] = 0
	return n
}
