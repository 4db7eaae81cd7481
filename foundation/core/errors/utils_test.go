// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, sentinels and module helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleTextx).
			Operation("insert").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if err.Error() != "test error" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v", err.Severity())
		}
		if ExtractModule(err) != ModuleTextx || ExtractOperation(err) != "insert" {
			t.Errorf("module/operation = %q/%q", ExtractModule(err), ExtractOperation(err))
		}
		if err.Operation() != "textx.insert" {
			t.Errorf("Operation() = %q", err.Operation())
		}
	})

	t.Run("auto generated code and message", func(t *testing.T) {
		err := NewErrorBuilder(ModuleTextx).Operation("reserve").Build()
		if string(err.Code()) != CodeTextxAllocationFailed {
			t.Errorf("Code() = %v, want %v", err.Code(), CodeTextxAllocationFailed)
		}
		if err.Error() != "textx.reserve failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := NewErrorBuilder(ModuleConfig).Operation("watch").Cause(cause).Build()
		if !errors.Is(err, cause) {
			t.Error("builder must keep the cause in the chain")
		}
		if string(err.Code()) != CodeConfigWatchFailed {
			t.Errorf("Code() = %v", err.Code())
		}
	})
}

func TestSentinel(t *testing.T) {
	s := Sentinel(ModuleTextx, "reserve", mdwerror.CodeAllocationFailed, "heap block allocation failed")

	if s.Code() != mdwerror.CodeAllocationFailed {
		t.Errorf("Code() = %v", s.Code())
	}
	if !IsModuleError(s, ModuleTextx) {
		t.Error("sentinel should belong to textx")
	}
	if !errors.Is(s, s) {
		t.Error("sentinel should match itself")
	}
	if s.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", s.Severity())
	}
}

func TestOperationError(t *testing.T) {
	if OperationError(ModuleTextx, "concat", nil, nil) != nil {
		t.Error("nil cause should produce nil error")
	}
	cause := errors.New("boom")
	err := OperationError(ModuleTextx, "concat", cause, map[string]interface{}{"len": 3})
	if !strings.Contains(err.Error(), "textx.concat operation failed") {
		t.Errorf("Error() = %q", err.Error())
	}
	if ExtractDetails(err)["len"] != 3 {
		t.Error("context detail lost")
	}
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"below", 1, true},
		{"lower bound", 2, false},
		{"inside", 16, false},
		{"upper bound", 36, false},
		{"above", 37, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange(ModuleMathx, "base", tt.value, 2, 36)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIntRange(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "validation failed:") {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}
