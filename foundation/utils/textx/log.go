// File: log.go
// Title: Package Logger
// Description: Logger used on failure paths and policy changes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"os"
	"sync/atomic"

	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
)

var pkgLogger atomic.Pointer[mdwlog.Logger]

func init() {
	pkgLogger.Store(mdwlog.GetDefault().
		WithName("textx").
		WithLevel(mdwlog.LevelWarn).
		WithFormat(mdwlog.FormatText).
		WithOutput(os.Stderr))
}

// SetLogger replaces the package logger. nil discards all output.
func SetLogger(l *mdwlog.Logger) {
	if l == nil {
		l = mdwlog.Discard()
	}
	pkgLogger.Store(l)
}

// Logger returns the package logger.
func Logger() *mdwlog.Logger {
	return pkgLogger.Load()
}

func logger() *mdwlog.Logger {
	return pkgLogger.Load()
}
