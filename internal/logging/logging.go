// Package logging builds the structured loggers used across splitpane.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"splitpane/internal/layout"
)

// New creates a text logger tagged with component.
func New(w io.Writer, component string, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("component", component))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open creates a logger appending to path. An empty path discards output, since
// the terminal belongs to the TUI.
func Open(path, component string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, component, level), f, nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Observer logs every group operation: changes at info, no-ops at debug.
type Observer struct {
	logger *slog.Logger
}

var _ layout.Observer = (*Observer)(nil)

// NewObserver creates an Observer writing to logger.
func NewObserver(logger *slog.Logger) *Observer {
	return &Observer{logger: logger}
}

// Observe implements layout.Observer.
func (o *Observer) Observe(ctx context.Context, op layout.Operation) {
	attrs := []slog.Attr{
		slog.String("group", op.Group),
		slog.String("op", op.Name),
		slog.String("kind", op.Kind.String()),
		slog.String("before", op.Before),
		slog.String("after", op.After),
		slog.Float64("delta", op.Delta),
	}
	if !op.Changed {
		o.logger.LogAttrs(ctx, slog.LevelDebug, "layout unchanged", attrs...)
		return
	}
	attrs = append(attrs, slog.String("sizes", formatSizes(op.Next)))
	o.logger.LogAttrs(ctx, slog.LevelInfo, "layout changed", attrs...)
}

func formatSizes(s layout.Sizes) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
