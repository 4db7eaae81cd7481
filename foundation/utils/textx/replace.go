// File: replace.go
// Title: Substring Replacement
// Description: Replaces every non-overlapping match, with separate paths
//              for equal, shrinking and growing replacements.
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

// Replace substitutes every non-overlapping occurrence of find, scanning
// left to right, with repl. An empty find or empty value is a no-op. When
// the result needs more room, the buffer is reserved once up front; if
// that fails the value is unchanged.
func (t *Text) Replace(find, repl string) error {
	return t.replace(mdwstringx.StringToBytes(find), mdwstringx.StringToBytes(repl))
}

// ReplaceText is Replace with Text operands.
func (t *Text) ReplaceText(find, repl *Text) error {
	if find == nil || repl == nil {
		return ErrNilInput
	}
	return t.replace(find.Bytes(), repl.Bytes())
}

func (t *Text) replace(find, repl []byte) error {
	if t.n == 0 || len(find) == 0 {
		return nil
	}
	find = t.detach(find)
	repl = t.detach(repl)

	delta := len(repl) - len(find)
	switch {
	case delta == 0:
		t.replaceSameLength(find, repl)
	case delta < 0:
		t.replaceShrinking(find, repl)
	default:
		return t.replaceGrowing(find, repl, delta)
	}
	return nil
}

func (t *Text) replaceSameLength(find, repl []byte) {
	buf := t.buf()[:t.n]
	for i := 0; ; {
		j := mdwstringx.IndexFrom(buf, find, i)
		if j < 0 {
			return
		}
		copy(buf[j:], repl)
		i = j + len(repl)
	}
}

func (t *Text) replaceShrinking(find, repl []byte) {
	buf := t.buf()
	r, w := 0, 0
	for {
		j := mdwstringx.IndexFrom(buf[:t.n], find, r)
		if j < 0 {
			break
		}
		w += copy(buf[w:], buf[r:j])
		w += copy(buf[w:], repl)
		r = j + len(find)
	}
	if r == 0 {
		return
	}
	w += copy(buf[w:], buf[r:t.n])
	t.setLen(w)
}

// replaceGrowing records match offsets in a forward pass, reserves the
// final size once, then splices from the last match backwards so every
// shift moves bytes that have not been visited yet.
func (t *Text) replaceGrowing(find, repl []byte, delta int) error {
	var stack [16]int
	pos := stack[:0]
	buf := t.buf()[:t.n]
	for i := 0; ; {
		j := mdwstringx.IndexFrom(buf, find, i)
		if j < 0 {
			break
		}
		pos = append(pos, j)
		i = j + len(find)
	}
	if len(pos) == 0 {
		return nil
	}

	total := t.n + len(pos)*delta
	if err := t.Reserve(total); err != nil {
		return err
	}

	full := t.buf()
	tail := t.n
	for k := len(pos) - 1; k >= 0; k-- {
		p := pos[k]
		end := p + len(find)
		copy(full[end+(k+1)*delta:], full[end:tail])
		copy(full[p+k*delta:], repl)
		tail = p
	}
	t.setLen(total)
	return nil
}
