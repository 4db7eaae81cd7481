// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and fsnotify-backed hot reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: fsnotify watcher replaces polling; discovery and
//                      rule validation removed

/*
Package config provides configuration loading for the mDW foundation.

Values are addressed with dot notation ("textx.alignment"). An environment
variable built from the optional prefix and the upper-cased key
(TEXTX_ALIGNMENT, or MDW_TEXTX_ALIGNMENT with prefix "MDW") overrides the
file value.

	cfg, err := config.Load("tuning.toml")
	if err != nil {
		return err
	}
	alignment := cfg.GetInt("textx.alignment", 16)

Hot reload:

	cfg.OnChange(func(old, updated *config.Config) {
		apply(updated)
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := cfg.Watch(ctx); err != nil {
		return err
	}

Watch returns once the watcher is installed; reloads are delivered to the
registered handlers from the watcher goroutine until ctx is cancelled or
StopWatching is called.
*/
package config
