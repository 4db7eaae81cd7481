// File: case_test.go
// Title: Unit Tests for ASCII Case Utilities
// Description: Tests classification, in-place conversion and folding
//              comparison, including bytes outside ASCII.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.3.0: ASCII folding tests

package stringx

import (
	"testing"
)

func TestCaseClassification(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		if got, want := IsUpper(b), c >= 'A' && c <= 'Z'; got != want {
			t.Errorf("IsUpper(%#x) = %v; want %v", c, got, want)
		}
		if got, want := IsLower(b), c >= 'a' && c <= 'z'; got != want {
			t.Errorf("IsLower(%#x) = %v; want %v", c, got, want)
		}
		if c >= 0x80 && (ToLowerByte(b) != b || ToUpperByte(b) != b) {
			t.Errorf("non-ASCII byte %#x changed by case mapping", c)
		}
	}
}

func TestInPlaceConversion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lower string
		upper string
	}{
		{"empty", "", "", ""},
		{"mixed", "Hello, World 42", "hello, world 42", "HELLO, WORLD 42"},
		{"utf8 untouched", "Grüße", "grüße", "GRüßE"},
		{"brackets around letters", "@[`{", "@[`{", "@[`{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower := []byte(tt.input)
			ToLowerInPlace(lower)
			if string(lower) != tt.lower {
				t.Errorf("ToLowerInPlace(%q) = %q; want %q", tt.input, lower, tt.lower)
			}

			upper := []byte(tt.input)
			ToUpperInPlace(upper)
			if string(upper) != tt.upper {
				t.Errorf("ToUpperInPlace(%q) = %q; want %q", tt.input, upper, tt.upper)
			}
		})
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"hello", "HELLO", true},
		{"HeLLo", "hEllO", true},
		{"hello", "hellO!", false},
		{"abc", "abd", false},
		{"@", "`", false},
		{"straße", "STRAßE", true},
		{"k", "\u212a", false},
	}

	for _, tt := range tests {
		if got := EqualFold([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
