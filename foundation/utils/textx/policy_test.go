// File: policy_test.go
// Title: Unit Tests for Policy and Configuration Binding
// Description: Policy validation, loading from configuration files and hot
//              reload.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package textx

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/mdwtext/foundation/core/config"
	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
	mdwerrors "github.com/msto63/mdwtext/foundation/core/errors"
	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
		code    string
	}{
		{"default", DefaultPolicy(), false, ""},
		{"alignment one", Policy{Alignment: 1, MaxCapacity: 100}, false, ""},
		{"zero alignment", Policy{Alignment: 0, MaxCapacity: 100}, true, mdwerrors.CodeOutOfRange},
		{"alignment too large", Policy{Alignment: 8192, MaxCapacity: 100}, true, mdwerrors.CodeOutOfRange},
		{"alignment not power of two", Policy{Alignment: 24, MaxCapacity: 100}, true, mdwerrors.CodeConfigInvalidValue},
		{"capacity below inline", Policy{Alignment: 16, MaxCapacity: 3}, true, mdwerrors.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.Code(tt.code)) {
				t.Errorf("Validate() code = %v; want %s", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestSetPolicyRejectsInvalid(t *testing.T) {
	before := CurrentPolicy()
	if err := SetPolicy(Policy{Alignment: 3, MaxCapacity: 100}); err == nil {
		t.Fatal("SetPolicy() accepted an invalid policy")
	}
	if CurrentPolicy() != before {
		t.Error("rejected policy was installed")
	}
}

func TestPolicyFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  config.Format
		want    Policy
		wantErr bool
	}{
		{
			name:    "toml",
			content: "[textx]\nalignment = 32\nmax_capacity = 4096\npool_blocks = false\n",
			format:  config.FormatTOML,
			want:    Policy{Alignment: 32, MaxCapacity: 4096, PoolBlocks: false},
		},
		{
			name:    "yaml partial",
			content: "textx:\n  max_capacity: 512\n",
			format:  config.FormatYAML,
			want:    Policy{Alignment: 16, MaxCapacity: 512, PoolBlocks: true},
		},
		{
			name:    "empty",
			content: "",
			format:  config.FormatTOML,
			want:    DefaultPolicy(),
		},
		{
			name:    "invalid alignment",
			content: "[textx]\nalignment = 12\n",
			format:  config.FormatTOML,
			want:    DefaultPolicy(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			got, err := PolicyFromConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PolicyFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PolicyFromConfig() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	withPolicy(t, DefaultPolicy())
	prevLogger := Logger()
	SetLogger(mdwlog.Discard())
	t.Cleanup(func() { SetLogger(prevLogger) })

	cfg, err := config.LoadFromString("[textx]\nalignment = 64\nlog_level = \"error\"\n", config.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if err := ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if got := CurrentPolicy().Alignment; got != 64 {
		t.Errorf("Alignment = %d; want 64", got)
	}
	if got := Logger().GetLevel(); got != mdwlog.LevelError {
		t.Errorf("log level = %v; want error", got)
	}

	v := mustNew(t, "0123456789")
	if got := v.Cap(); got != 63 {
		t.Errorf("Cap() under 64-byte alignment = %d; want 63", got)
	}

	bad, _ := config.LoadFromString("[textx]\nlog_level = \"loud\"\n", config.FormatTOML)
	err = ApplyConfig(bad)
	if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeConfigInvalidValue)) {
		t.Errorf("ApplyConfig(bad level) error = %v", err)
	}
}

func TestWatchConfigReload(t *testing.T) {
	withPolicy(t, DefaultPolicy())

	dir := t.TempDir()
	path := filepath.Join(dir, "textx.toml")
	if err := os.WriteFile(path, []byte("[textx]\nalignment = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := WatchConfig(ctx, cfg); err != nil {
		t.Fatalf("WatchConfig() error = %v", err)
	}
	defer cfg.StopWatching()

	if got := CurrentPolicy().Alignment; got != 32 {
		t.Fatalf("initial Alignment = %d; want 32", got)
	}

	if err := os.WriteFile(path, []byte("[textx]\nalignment = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for CurrentPolicy().Alignment != 64 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for policy reload")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestWatchConfigWithoutFile(t *testing.T) {
	withPolicy(t, DefaultPolicy())

	cfg, _ := config.LoadFromString("[textx]\nalignment = 8\n", config.FormatTOML)
	err := WatchConfig(context.Background(), cfg)
	if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeConfigWatchFailed)) {
		t.Errorf("WatchConfig() error = %v", err)
	}
	if got := CurrentPolicy().Alignment; got != 8 {
		t.Errorf("Alignment = %d; want 8 applied before watching", got)
	}
}
