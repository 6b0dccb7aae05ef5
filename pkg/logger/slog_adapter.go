package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SlogHandler implements slog.Handler on top of a namespace Logger so that
// libraries expecting a *slog.Logger share the same DEBUG gating.
type SlogHandler struct {
	logger *Logger
}

// NewSlogHandler creates a slog.Handler that wraps a namespace Logger.
func NewSlogHandler(logger *Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
// All levels are enabled whenever the underlying logger is enabled.
func (h *SlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return h.logger.Enabled()
}

// Handle handles the Record. It is only called when Enabled returns true.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.logger.Enabled() {
		return nil
	}

	var msg strings.Builder
	msg.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&msg, " %s=%s", a.Key, a.Value.String())
		return true
	})

	prefix := ""
	switch r.Level {
	case slog.LevelDebug:
		prefix = "[DEBUG] "
	case slog.LevelInfo:
		prefix = "[INFO] "
	case slog.LevelWarn:
		prefix = "[WARN] "
	case slog.LevelError:
		prefix = "[ERROR] "
	}

	h.logger.Print(prefix + msg.String())
	return nil
}

// WithAttrs returns the handler itself; attributes are not persisted.
func (h *SlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler itself; groups are not persisted.
func (h *SlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NewSlogLogger creates a *slog.Logger backed by a namespace Logger.
func NewSlogLogger(namespace string) *slog.Logger {
	return slog.New(NewSlogHandler(New(namespace)))
}
