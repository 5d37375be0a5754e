package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceByLevelHandler decorates records with their source location, but only
// for the configured levels. Keeps info/debug lines short in production while
// warn/error still point at the call site.
//
// The wrapped handler must be constructed with AddSource: false.
type sourceByLevelHandler struct {
	inner  slog.Handler
	levels map[slog.Level]bool
}

// NewSourceByLevelHandler wraps inner so that only records at the given levels
// carry a source attribute.
func NewSourceByLevelHandler(inner slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &sourceByLevelHandler{inner: inner, levels: m}
}

func (h *sourceByLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] {
		// Skip runtime.Callers, this frame, and the slog frontend frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *sourceByLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceByLevelHandler{inner: h.inner.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceByLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceByLevelHandler{inner: h.inner.WithGroup(name), levels: h.levels}
}

func (h *sourceByLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
