// File: compare.go
// Title: Comparison and Hashing
// Description: Ordering, equality variants, prefix and suffix tests and
//              content hashing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"bytes"
	"crypto/subtle"

	"github.com/cespare/xxhash/v2"

	mdwstringx "github.com/msto63/mdwtext/foundation/utils/stringx"
)

// Compare orders t and o bytewise and returns -1, 0 or +1. When either side
// is invalid, the result is the negated sign of o's first byte if o has
// content, else the sign of t's first byte, else 0.
func (t *Text) Compare(o *Text) int {
	if !t.Valid() || !o.Valid() {
		if o.Valid() && o.n > 0 {
			return -sign(int(o.buf()[0]))
		}
		if t.Valid() && t.n > 0 {
			return sign(int(t.buf()[0]))
		}
		return 0
	}
	return bytes.Compare(t.Bytes(), o.Bytes())
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// CompareString orders t against s bytewise.
func (t *Text) CompareString(s string) int {
	return bytes.Compare(t.Bytes(), mdwstringx.StringToBytes(s))
}

// Less reports whether t orders before o.
func (t *Text) Less(o *Text) bool {
	return t.Compare(o) < 0
}

// Equal reports whether t and o hold the same bytes. Invalid values equal
// empty ones.
func (t *Text) Equal(o *Text) bool {
	return t.Len() == o.Len() && t.Compare(o) == 0
}

// EqualString reports whether t holds exactly s.
func (t *Text) EqualString(s string) bool {
	return string(t.Bytes()) == s
}

// EqualFold reports whether t and o are equal ignoring ASCII case.
func (t *Text) EqualFold(o *Text) bool {
	if t == o {
		return true
	}
	return mdwstringx.EqualFold(t.Bytes(), o.Bytes())
}

// EqualConstantTime compares t and o in time that depends only on their
// length, for secrets such as tokens. Values of different length are
// never equal.
func (t *Text) EqualConstantTime(o *Text) bool {
	if t.Len() != o.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	a, b := t.Bytes(), o.Bytes()
	equal, diff := 0, 0
	for i := range a {
		e := subtle.ConstantTimeByteEq(a[i], b[i])
		equal += e
		diff += 1 - e
	}
	equalCond := subtle.ConstantTimeEq(int32(equal), int32(len(a)))
	diffCond := subtle.ConstantTimeEq(int32(diff), 0)
	return equalCond&diffCond == 1
}

// HasPrefix reports whether t starts with o.
func (t *Text) HasPrefix(o *Text) bool {
	return t.HasPrefixAt(o, 0)
}

// HasPrefixAt reports whether o occurs in t at offset.
func (t *Text) HasPrefixAt(o *Text, offset int) bool {
	if !t.Valid() || !o.Valid() {
		return false
	}
	return hasAt(t.Bytes(), o.Bytes(), offset)
}

// HasPrefixString reports whether t starts with s.
func (t *Text) HasPrefixString(s string) bool {
	return t.Valid() && hasAt(t.Bytes(), mdwstringx.StringToBytes(s), 0)
}

func hasAt(b, p []byte, offset int) bool {
	if offset < 0 || len(p) > len(b) || offset > len(b)-len(p) {
		return false
	}
	return bytes.Equal(b[offset:offset+len(p)], p)
}

// HasSuffix reports whether t ends with o.
func (t *Text) HasSuffix(o *Text) bool {
	if !t.Valid() || !o.Valid() {
		return false
	}
	return bytes.HasSuffix(t.Bytes(), o.Bytes())
}

// HasSuffixString reports whether t ends with s.
func (t *Text) HasSuffixString(s string) bool {
	return t.Valid() && bytes.HasSuffix(t.Bytes(), mdwstringx.StringToBytes(s))
}

// Sum64 returns the 64-bit xxHash of the content.
func (t *Text) Sum64() uint64 {
	return xxhash.Sum64(t.Bytes())
}
