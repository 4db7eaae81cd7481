// File: fuzz_test.go
// Title: Fuzz Tests for Text
// Description: Property checks of concatenation, replacement and editing
//              against the standard library string functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial fuzz tests

package textx

import (
	"strings"
	"testing"
)

const fuzzMaxInput = 512

func FuzzConcatAssociative(f *testing.F) {
	f.Add("", "", "")
	f.Add("a", "bc", "def")
	f.Add("inline", "and then", strings.Repeat("heap", 10))

	f.Fuzz(func(t *testing.T, a, b, c string) {
		if len(a)+len(b)+len(c) > fuzzMaxInput {
			t.Skip()
		}
		left := New(a)
		_ = left.ConcatString(b)
		_ = left.ConcatString(c)

		bc := New(b)
		_ = bc.ConcatString(c)
		right := New(a)
		_ = right.Concat(bc)

		if !left.Equal(right) || left.String() != a+b+c {
			t.Fatalf("(%q+%q)+%q = %q, %q+(%q+%q) = %q", a, b, c, left, a, b, c, right)
		}
	})
}

func FuzzAddVariants(f *testing.F) {
	f.Add("", "")
	f.Add("x", strings.Repeat("y", 50))
	f.Add(strings.Repeat("x", 50), "y")

	f.Fuzz(func(t *testing.T, a, b string) {
		if len(a)+len(b) > fuzzMaxInput {
			t.Skip()
		}
		want := a + b
		for name, got := range map[string]*Text{
			"Add":         Add(New(a), New(b)),
			"AddTake":     AddTake(New(a), New(b)),
			"AddTakeBoth": AddTakeBoth(New(a), New(b)),
			"AddString":   AddString(a, New(b)),
		} {
			if got.String() != want {
				t.Errorf("%s(%q, %q) = %q", name, a, b, got)
			}
		}
	})
}

func FuzzReplace(f *testing.F) {
	f.Add("abc", "b", "XY")
	f.Add("abcabc", "abc", "Z")
	f.Add("aaaaa", "aa", "aaa")
	f.Add("a.b.c", ".", "")

	f.Fuzz(func(t *testing.T, s, find, repl string) {
		if len(s) > fuzzMaxInput || len(find) > 16 || len(repl) > 16 {
			t.Skip()
		}
		want := s
		if find != "" {
			want = strings.ReplaceAll(s, find, repl)
		}
		if len(want) > CurrentPolicy().MaxCapacity {
			t.Skip()
		}

		v := New(s)
		if err := v.Replace(find, repl); err != nil {
			t.Fatalf("Replace(%q, %q) on %q error = %v", find, repl, s, err)
		}
		if v.String() != want {
			t.Fatalf("Replace(%q, %q) on %q = %q; want %q", find, repl, s, v, want)
		}
	})
}

func FuzzInsertRemove(f *testing.F) {
	f.Add("hello", 2, "xyz")
	f.Add("", 0, "abc")
	f.Add(strings.Repeat("h", 30), 15, "middle")

	f.Fuzz(func(t *testing.T, s string, pos int, ins string) {
		if len(s)+len(ins) > fuzzMaxInput || pos < 0 || pos > len(s) {
			t.Skip()
		}
		v := New(s)
		if err := v.Insert(pos, ins); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if want := s[:pos] + ins + s[pos:]; v.String() != want {
			t.Fatalf("Insert(%d, %q) on %q = %q; want %q", pos, ins, s, v, want)
		}
		v.Remove(pos, len(ins))
		if v.String() != s {
			t.Fatalf("Remove after Insert = %q; want %q", v, s)
		}
	})
}

func FuzzTrimAndSearch(f *testing.F) {
	f.Add("  hello world  ", "o")
	f.Add("\t\n", "")

	f.Fuzz(func(t *testing.T, s, needle string) {
		if len(s) > fuzzMaxInput {
			t.Skip()
		}
		v := New(s)
		if needle != "" {
			if got, want := v.Index(needle, 0), strings.Index(s, needle); got != want {
				t.Errorf("Index(%q) on %q = %d; want %d", needle, s, got, want)
			}
			if got, want := v.LastIndex(needle, len(s)), strings.LastIndex(s, needle); got != want {
				t.Errorf("LastIndex(%q) on %q = %d; want %d", needle, s, got, want)
			}
		}

		v.Trim()
		if want := strings.Trim(s, " \t\n\v\f\r"); v.String() != want {
			t.Errorf("Trim(%q) = %q; want %q", s, v, want)
		}
	})
}
