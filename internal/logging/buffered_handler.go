package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Entry is one record captured by a BufferedHandler.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// BufferedHandler is a slog.Handler that keeps records in memory so tests
// can assert on what was logged.
type BufferedHandler struct {
	level slog.Leveler
	attrs []slog.Attr

	mu      *sync.Mutex
	entries *[]Entry
}

// NewBufferedHandler returns an empty handler. A nil level captures everything.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	return &BufferedHandler{
		level:   level,
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

// Enabled implements slog.Handler.
func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]string, len(h.attrs)+r.NumAttrs()),
	}
	for _, a := range h.attrs {
		e.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, e)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &h2
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *BufferedHandler) WithGroup(string) slog.Handler {
	return h
}

// Entries returns a copy of the captured records.
func (h *BufferedHandler) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), (*h.entries)...)
}

// Contains reports whether any captured message contains s.
func (h *BufferedHandler) Contains(s string) bool {
	for _, e := range h.Entries() {
		if strings.Contains(e.Message, s) {
			return true
		}
	}
	return false
}

// Reset drops all captured records.
func (h *BufferedHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = nil
}
