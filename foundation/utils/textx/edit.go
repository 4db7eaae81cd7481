// File: edit.go
// Title: In-Place Editing
// Description: Insertion, removal, trimming, case conversion and byte
//              substitution.
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

// insertBytes opens a gap of len(b) bytes at pos and copies b into it.
func (t *Text) insertBytes(pos int, b []byte) error {
	if pos < 0 || pos > t.n || len(b) == 0 {
		return nil
	}
	b = t.detach(b)
	total := t.n + len(b)
	if err := t.Reserve(total); err != nil {
		return err
	}
	buf := t.buf()
	copy(buf[pos+len(b):total], buf[pos:t.n])
	copy(buf[pos:], b)
	t.setLen(total)
	return nil
}

// Insert inserts s before position pos. Positions outside 0..Len() leave
// the value unchanged.
func (t *Text) Insert(pos int, s string) error {
	return t.insertBytes(pos, mdwstringx.StringToBytes(s))
}

// InsertBytes inserts b before position pos.
func (t *Text) InsertBytes(pos int, b []byte) error {
	return t.insertBytes(pos, b)
}

// InsertByte inserts c before position pos.
func (t *Text) InsertByte(pos int, c byte) error {
	tmp := [1]byte{c}
	return t.insertBytes(pos, tmp[:])
}

// InsertText inserts the content of o before position pos.
func (t *Text) InsertText(pos int, o *Text) error {
	if o == nil {
		return ErrNilInput
	}
	return t.insertBytes(pos, o.Bytes())
}

// Remove deletes up to count bytes starting at index. Out-of-range indices
// and non-positive counts are ignored.
func (t *Text) Remove(index, count int) {
	if index < 0 || index >= t.n || count <= 0 {
		return
	}
	if count > t.n-index {
		count = t.n - index
	}
	buf := t.buf()
	copy(buf[index:], buf[index+count:t.n])
	t.setLen(t.n - count)
}

// RemoveFrom deletes everything from index to the end.
func (t *Text) RemoveFrom(index int) {
	t.Remove(index, t.n-index)
}

// Truncate shortens the content to n bytes. Larger n is ignored.
func (t *Text) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	t.RemoveFrom(n)
}

// Trim removes leading and trailing whitespace (space, \t, \n, \v, \f, \r).
func (t *Text) Trim() {
	if t.n == 0 {
		return
	}
	buf := t.buf()
	start, end := mdwstringx.TrimBounds(buf[:t.n])
	if start > 0 {
		copy(buf, buf[start:end])
	}
	t.setLen(end - start)
}

// ToLower converts ASCII letters to lower case in place.
func (t *Text) ToLower() {
	mdwstringx.ToLowerInPlace(t.Bytes())
}

// ToUpper converts ASCII letters to upper case in place.
func (t *Text) ToUpper() {
	mdwstringx.ToUpperInPlace(t.Bytes())
}

// ReplaceByte substitutes every occurrence of find with repl.
func (t *Text) ReplaceByte(find, repl byte) {
	b := t.Bytes()
	for i, c := range b {
		if c == find {
			b[i] = repl
		}
	}
}
