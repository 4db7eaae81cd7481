// Package log provides structured, leveled logging for the mDW foundation.
//
// Package: log
// Title: Structured Logging for mDW Foundation
// Description: A small structured logger with JSON, text and logfmt output.
//              Library packages hold their own named logger and only log on
//              failure paths, so the logger never sits on a hot path.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Removed async mode, timers and request/user context;
//                      added atomic level switching and Discard
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelWarn,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "textx",
//	})
//	logger.Warn("heap allocation failed", log.Fields{"size": 32})
package log
