// File: policy.go
// Title: Capacity Policy and Configuration Binding
// Description: Package-wide growth tuning, loaded from configuration files
//              and updated on hot reload.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/msto63/mdwtext/foundation/core/config"
	mdwerrors "github.com/msto63/mdwtext/foundation/core/errors"
	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

// Configuration keys read by PolicyFromConfig and ApplyConfig.
const (
	KeyAlignment   = "textx.alignment"
	KeyMaxCapacity = "textx.max_capacity"
	KeyPoolBlocks  = "textx.pool_blocks"
	KeyLogLevel    = "textx.log_level"
)

const maxAlignment = 4096

// Policy controls heap growth for all values.
type Policy struct {
	// Alignment is the granularity of heap block sizes. It must be a power
	// of two.
	Alignment int

	// MaxCapacity is the largest content length a value may reserve.
	MaxCapacity int

	// PoolBlocks recycles heap blocks of values without their own
	// allocator through a shared PoolAllocator.
	PoolBlocks bool
}

// DefaultPolicy returns 16-byte alignment, a 65535-byte ceiling and pooled
// blocks.
func DefaultPolicy() Policy {
	return Policy{Alignment: 16, MaxCapacity: 65535, PoolBlocks: true}
}

// Validate checks the policy bounds.
func (p Policy) Validate() error {
	if err := mdwerrors.ValidateIntRange(mdwerrors.ModuleTextx, "alignment", p.Alignment, 1, maxAlignment); err != nil {
		return err
	}
	if p.Alignment&(p.Alignment-1) != 0 {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleTextx).
			Operation("validate_alignment").
			Messagef("alignment %d is not a power of two", p.Alignment).
			Code(mdwerrors.CodeConfigInvalidValue).
			Detail("alignment", p.Alignment).
			Build()
	}
	return mdwerrors.ValidateIntRange(mdwerrors.ModuleTextx, "max_capacity", p.MaxCapacity, InlineCapacity, math.MaxInt32)
}

var policy atomic.Pointer[Policy]

func init() {
	p := DefaultPolicy()
	policy.Store(&p)
}

// CurrentPolicy returns the policy in effect.
func CurrentPolicy() Policy {
	return *policy.Load()
}

// SetPolicy validates and installs p. Existing heap blocks keep their size
// until the next reallocation.
func SetPolicy(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	prev := policy.Swap(&p)
	if *prev != p {
		logger().Info("policy changed", mdwlog.Fields{
			"alignment":    p.Alignment,
			"max_capacity": p.MaxCapacity,
			"pool_blocks":  p.PoolBlocks,
		})
	}
	return nil
}

// PolicyFromConfig builds a Policy from cfg. Missing keys keep their
// DefaultPolicy values.
func PolicyFromConfig(cfg *config.Config) (Policy, error) {
	def := DefaultPolicy()
	p := Policy{
		Alignment:   cfg.GetInt(KeyAlignment, def.Alignment),
		MaxCapacity: cfg.GetInt(KeyMaxCapacity, def.MaxCapacity),
		PoolBlocks:  cfg.GetBool(KeyPoolBlocks, def.PoolBlocks),
	}
	if err := p.Validate(); err != nil {
		return def, err
	}
	return p, nil
}

// ApplyConfig installs the policy and log level found in cfg.
func ApplyConfig(cfg *config.Config) error {
	p, err := PolicyFromConfig(cfg)
	if err != nil {
		return err
	}
	if cfg.Has(KeyLogLevel) {
		level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel))
		if err != nil {
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleTextx).
				Operation("ApplyConfig").
				Message("invalid log level").
				Cause(err).
				Code(mdwerrors.CodeConfigInvalidValue).
				Detail("key", KeyLogLevel).
				Build()
		}
		logger().SetLevel(level)
	}
	return SetPolicy(p)
}

// WatchConfig applies cfg now and again on every reload until ctx ends.
// Reloads with invalid values are logged and leave the current policy in
// place.
func WatchConfig(ctx context.Context, cfg *config.Config) error {
	if err := ApplyConfig(cfg); err != nil {
		return err
	}
	cfg.OnChange(func(_, updated *config.Config) {
		if err := ApplyConfig(updated); err != nil {
			logger().WarnWithErr("ignoring invalid configuration reload", err,
				mdwlog.Field("file", updated.FilePath()))
		}
	})
	if err := cfg.Watch(ctx); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleTextx).
			Operation("WatchConfig").
			Message("failed to watch configuration").
			Cause(err).
			Code(mdwerrors.CodeConfigWatchFailed).
			Build()
	}
	return nil
}
