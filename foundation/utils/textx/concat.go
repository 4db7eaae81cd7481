// File: concat.go
// Title: Concatenation
// Description: Appending bytes, text and formatted numbers, the io writer
//              interfaces and the combining Add family.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	mdwmathx "github.com/msto63/mdwtext/foundation/utils/mathx"
	mdwstringx "github.com/msto63/mdwtext/foundation/utils/stringx"
)

// appendBytes appends b. b may point into t's own storage: the source is
// located again after the buffer has been grown.
func (t *Text) appendBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	off := t.offsetOf(b)
	total := t.n + len(b)
	if err := t.Reserve(total); err != nil {
		return err
	}
	buf := t.buf()
	if off >= 0 {
		b = buf[off : off+len(b)]
	}
	copy(buf[t.n:], b)
	t.setLen(total)
	return nil
}

// Concat appends o. Appending a value to itself doubles it. A nil or
// invalid o returns ErrNilInput without modifying t.
func (t *Text) Concat(o *Text) error {
	if o == nil || !o.Valid() {
		return ErrNilInput
	}
	if o == t && t.n > 0 {
		n := t.n
		if err := t.Reserve(2 * n); err != nil {
			return err
		}
		buf := t.buf()
		copy(buf[n:], buf[:n])
		t.setLen(2 * n)
		return nil
	}
	return t.appendBytes(o.Bytes())
}

// ConcatString appends s.
func (t *Text) ConcatString(s string) error {
	return t.appendBytes(mdwstringx.StringToBytes(s))
}

// ConcatBytes appends b. A nil slice returns ErrNilInput.
func (t *Text) ConcatBytes(b []byte) error {
	if b == nil {
		return ErrNilInput
	}
	return t.appendBytes(b)
}

// ConcatByte appends a single byte.
func (t *Text) ConcatByte(c byte) error {
	tmp := [1]byte{c}
	return t.appendBytes(tmp[:])
}

// ConcatInt appends the decimal form of v.
func (t *Text) ConcatInt(v int64) error {
	var tmp [24]byte
	b, _ := mdwmathx.AppendInt(tmp[:0], v, 10)
	return t.appendBytes(b)
}

// ConcatUint appends the decimal form of v.
func (t *Text) ConcatUint(v uint64) error {
	var tmp [24]byte
	b, _ := mdwmathx.AppendUint(tmp[:0], v, 10)
	return t.appendBytes(b)
}

// ConcatFloat appends v with two decimals in a field of at least four.
func (t *Text) ConcatFloat(v float64) error {
	var tmp [32]byte
	return t.appendBytes(mdwmathx.AppendFixed(tmp[:0], v, 4, 2))
}

// AppendInteger appends v rendered in base. Base 10 renders the signed
// value; other bases render the two's-complement bit pattern of T.
func AppendInteger[T Integer](t *Text, v T, base int) error {
	var tmp [72]byte
	b, err := appendInteger(tmp[:0], v, base)
	if err != nil {
		return err
	}
	return t.appendBytes(b)
}

// Write implements io.Writer.
func (t *Text) Write(p []byte) (int, error) {
	if err := t.appendBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (t *Text) WriteString(s string) (int, error) {
	if err := t.ConcatString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (t *Text) WriteByte(c byte) error {
	return t.ConcatByte(c)
}

// Add returns a new value holding lhs followed by rhs. Neither operand is
// modified. On failure the result is invalid.
func Add(lhs, rhs *Text) *Text {
	return join(lhs.alloc, lhs.Bytes(), rhs.Bytes())
}

// AddTake is Add for a right operand the caller discards. When rhs has
// spare room for the result, lhs is inserted at its front and rhs's buffer
// becomes the result. rhs is left empty or invalid.
func AddTake(lhs, rhs *Text) *Text {
	total := lhs.n + rhs.n
	if rhs.Valid() && rhs.Cap() > total {
		_ = rhs.insertBytes(0, lhs.Bytes())
		return rhs.Take()
	}
	res := join(lhs.alloc, lhs.Bytes(), rhs.Bytes())
	if rhs != lhs {
		rhs.Invalidate()
	}
	return res
}

// AddTakeBoth is Add for two operands the caller discards. The result
// reuses rhs's buffer when only rhs can hold it, otherwise lhs's. Both
// operands are left empty or invalid.
func AddTakeBoth(lhs, rhs *Text) *Text {
	if lhs == rhs {
		if err := lhs.Concat(lhs); err != nil {
			lhs.Invalidate()
		}
		return lhs.Take()
	}
	total := lhs.n + rhs.n
	if total > lhs.Cap() && total < rhs.Cap() && rhs.Valid() {
		_ = rhs.insertBytes(0, lhs.Bytes())
		lhs.Release()
		return rhs.Take()
	}
	if err := lhs.appendBytes(rhs.Bytes()); err != nil {
		lhs.Invalidate()
	}
	rhs.Invalidate()
	return lhs.Take()
}

// AddString returns a new value holding s followed by rhs.
func AddString(s string, rhs *Text) *Text {
	return join(rhs.alloc, mdwstringx.StringToBytes(s), rhs.Bytes())
}

// AddByte returns a new value holding c followed by rhs.
func AddByte(c byte, rhs *Text) *Text {
	tmp := [1]byte{c}
	return join(rhs.alloc, tmp[:], rhs.Bytes())
}

// join builds a fresh value from a followed by b with a single reservation.
func join(alloc Allocator, a, b []byte) *Text {
	res := &Text{alloc: alloc}
	if err := res.Reserve(len(a) + len(b)); err != nil {
		res.Invalidate()
		return res
	}
	_ = res.appendBytes(a)
	_ = res.appendBytes(b)
	return res
}
