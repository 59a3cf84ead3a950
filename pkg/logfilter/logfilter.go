// Package logfilter wraps a slog.Handler to drop records below a level or
// whose message contains a known-noisy substring.
package logfilter

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// DefaultSuppress lists message fragments dropped by default. Memory-mapped
// model files cannot be unmapped inside the sandbox, and the runtime reports
// each attempt.
var DefaultSuppress = []string{"Failed to unmap"}

// Options configures a Handler.
type Options struct {
	// Level is the minimum level passed through. Zero means Info.
	Level slog.Leveler

	// Suppress lists message substrings to drop. Nil means DefaultSuppress;
	// use an empty non-nil slice to suppress nothing.
	Suppress []string
}

// Handler filters records before handing them to an inner handler.
type Handler struct {
	inner    slog.Handler
	level    slog.Leveler
	suppress []string
	dropped  *atomic.Int64
}

// New returns a Handler writing accepted records to inner.
func New(inner slog.Handler, opts Options) *Handler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	suppress := opts.Suppress
	if suppress == nil {
		suppress = DefaultSuppress
	}
	return &Handler{
		inner:    inner,
		level:    level,
		suppress: suppress,
		dropped:  new(atomic.Int64),
	}
}

// NewConsole returns a Handler over a text handler writing to w.
func NewConsole(w io.Writer, opts Options) *Handler {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return New(inner, opts)
}

// Enabled reports whether records at l pass the level filter.
func (h *Handler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level.Level() && h.inner.Enabled(ctx, l)
}

// Handle drops suppressed records and forwards the rest.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.level.Level() {
		return nil
	}
	for _, s := range h.suppress {
		if strings.Contains(r.Message, s) {
			h.dropped.Add(1)
			return nil
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.inner = h.inner.WithAttrs(attrs)
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	c := *h
	c.inner = h.inner.WithGroup(name)
	return &c
}

// Suppressed returns how many records were dropped by message match. The
// count is shared with handlers derived through WithAttrs and WithGroup.
func (h *Handler) Suppressed() int64 {
	return h.dropped.Load()
}
