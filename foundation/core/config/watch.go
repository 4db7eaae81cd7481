// File: watch.go
// Title: Configuration File Watching
// Description: fsnotify-based hot reload with trailing debounce.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial polling implementation
// - 2026-10-19 v0.2.0: Replaced polling with fsnotify, reload failures logged

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

// DebounceDelay is how long the watcher waits after the last file event
// before reloading. Editors often write a file in several steps.
var DebounceDelay = 75 * time.Millisecond

// Watch starts watching the configuration file for changes. It returns once
// the watcher is installed. Registered handlers run on the watcher goroutine
// after each successful reload; failed reloads keep the current data.
func (c *Config) Watch(ctx context.Context) error {
	c.mu.RLock()
	filePath := c.filePath
	c.mu.RUnlock()

	if filePath == "" {
		return mdwerror.New("cannot watch config without file path").
			WithCode(mdwerror.CodeInvalidState).
			WithOperation("config.Watch")
	}

	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	if c.watchCancel != nil {
		return mdwerror.New("config is already being watched").
			WithCode(mdwerror.CodeInvalidState).
			WithOperation("config.Watch").
			WithDetail("filePath", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	// Watch the directory: atomic saves replace the file inode.
	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("directory", dir)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	c.watchCancel = cancel

	go c.watchLoop(watchCtx, watcher, filepath.Clean(filePath))
	return nil
}

// StopWatching stops a watcher started by Watch. It is a no-op when not
// watching.
func (c *Config) StopWatching() {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	if c.watchCancel != nil {
		c.watchCancel()
		c.watchCancel = nil
	}
}

// IsWatching reports whether a watcher is active.
func (c *Config) IsWatching() bool {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	return c.watchCancel != nil
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, filePath string) {
	defer watcher.Close()

	timer := time.NewTimer(DebounceDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			c.watchMu.Lock()
			c.watchCancel = nil
			c.watchMu.Unlock()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(DebounceDelay)

		case <-timer.C:
			if err := c.reload(); err != nil {
				watchLogger().WarnWithErr("config reload failed", err, mdwlog.Field("file", filePath))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			watchLogger().ErrorWithErr("config watcher error", err, mdwlog.Field("file", filePath))
		}
	}
}

func watchLogger() *mdwlog.Logger {
	return mdwlog.GetDefault().WithName("config")
}

// reload re-reads the file and notifies handlers when the content parsed.
// On error the current data is kept.
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}
	data, err := parseContent(content, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	old := c.snapshot()
	c.data = data
	updated := c.snapshot()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(old, updated)
	}
	return nil
}
