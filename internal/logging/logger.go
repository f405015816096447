// Package logging holds the *slog.Logger shared by tricolor's packages.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger installs sl as the shared logger. Nil restores the default,
// which discards everything.
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		sl = slog.New(slog.DiscardHandler)
	}
	logger.Store(sl)
}

// Logger returns the shared logger, or a discarding logger if none was set.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}
