// File: compare_test.go
// Title: Unit Tests for Comparison and Hashing
// Description: Ordering, equality variants, prefix and suffix tests and
//              content hashes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package textx

import (
	"slices"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func invalidText() *Text {
	v := &Text{}
	v.Invalidate()
	return v
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Text
		want int
	}{
		{"equal", New("abc"), New("abc"), 0},
		{"less", New("abc"), New("abd"), -1},
		{"greater", New("b"), New("abc"), 1},
		{"prefix orders first", New("ab"), New("abc"), -1},
		{"empty vs content", New(""), New("a"), -1},
		{"high bytes are unsigned", New("\xff"), New("a"), 1},
		{"invalid vs content", invalidText(), New("a"), -1},
		{"content vs invalid", New("a"), invalidText(), 1},
		{"invalid vs empty", invalidText(), New(""), 0},
		{"both invalid", invalidText(), invalidText(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestCompareStringAndLess(t *testing.T) {
	v := mustNew(t, "mango")
	if v.CompareString("apple") != 1 || v.CompareString("mango") != 0 || v.CompareString("pear") != -1 {
		t.Error("CompareString() ordering mismatch")
	}

	words := []string{"pear", "apple", "mango", "fig", "apricot"}
	texts := make([]*Text, len(words))
	for i, w := range words {
		texts[i] = New(w)
	}
	slices.SortFunc(texts, func(a, b *Text) int { return a.Compare(b) })
	slices.Sort(words)
	for i := range words {
		if texts[i].String() != words[i] {
			t.Fatalf("sorted[%d] = %q; want %q", i, texts[i].String(), words[i])
		}
	}
	if !texts[0].Less(texts[1]) || texts[1].Less(texts[0]) {
		t.Error("Less() inconsistent with Compare()")
	}
}

func TestEqual(t *testing.T) {
	long := strings.Repeat("z", 30)
	tests := []struct {
		name string
		a, b *Text
		want bool
	}{
		{"inline", New("abc"), New("abc"), true},
		{"heap", New(long), New(long), true},
		{"inline vs heap", New("abc"), New(long), false},
		{"differs", New("abc"), New("abd"), false},
		{"invalid equals empty", invalidText(), New(""), true},
		{"invalid vs content", invalidText(), New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v; want %v", got, tt.want)
			}
			if got := tt.a.EqualConstantTime(tt.b); got != tt.want {
				t.Errorf("EqualConstantTime() = %v; want %v", got, tt.want)
			}
		})
	}

	v := mustNew(t, "token")
	if !v.EqualString("token") || v.EqualString("Token") {
		t.Error("EqualString() mismatch")
	}
}

func TestEqualFold(t *testing.T) {
	a := mustNew(t, "Content-Type")
	if !a.EqualFold(New("content-TYPE")) {
		t.Error("EqualFold() should ignore ASCII case")
	}
	if a.EqualFold(New("content-typ")) {
		t.Error("EqualFold() length mismatch reported equal")
	}
	if !a.EqualFold(a) {
		t.Error("EqualFold(self) = false")
	}
	if New("\xc4").EqualFold(New("\xe4")) {
		t.Error("EqualFold() must not fold non-ASCII bytes")
	}
}

func TestPrefixSuffix(t *testing.T) {
	v := mustNew(t, "config.toml")

	if !v.HasPrefix(New("config")) || v.HasPrefix(New("toml")) {
		t.Error("HasPrefix() mismatch")
	}
	if !v.HasPrefixAt(New("toml"), 7) || v.HasPrefixAt(New("toml"), 8) || v.HasPrefixAt(New("c"), -1) {
		t.Error("HasPrefixAt() mismatch")
	}
	if !v.HasPrefixString("conf") || v.HasPrefixString("config.toml.bak") {
		t.Error("HasPrefixString() mismatch")
	}
	if !v.HasSuffix(New(".toml")) || v.HasSuffix(New(".yaml")) {
		t.Error("HasSuffix() mismatch")
	}
	if !v.HasSuffixString("toml") || v.HasSuffixString("x.config.toml") {
		t.Error("HasSuffixString() mismatch")
	}
	if !v.HasPrefix(New("")) || !v.HasSuffix(New("")) {
		t.Error("empty affix should always match")
	}

	inv := invalidText()
	if inv.HasPrefix(New("")) || v.HasSuffix(inv) || inv.HasPrefixString("") {
		t.Error("affix tests involving invalid values should be false")
	}
}

func TestSum64(t *testing.T) {
	a := mustNew(t, "hash me")
	b := mustNew(t, strings.Repeat("pad", 10))
	_ = b.Assign("hash me")

	if a.Sum64() != b.Sum64() {
		t.Error("Sum64() differs for equal content in different modes")
	}
	if a.Sum64() != xxhash.Sum64String("hash me") {
		t.Error("Sum64() does not match xxhash of the content")
	}
	if invalidText().Sum64() != New("").Sum64() {
		t.Error("invalid value should hash like empty")
	}
}
