package scanio

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with scanio-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithColumns adds the selected columns to the logger.
func (l *Logger) WithColumns(cols []int) *Logger {
	return &Logger{
		Logger: l.Logger.With("columns", cols),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogRead logs a completed file scan.
func (l *Logger) LogRead(ctx context.Context, path string, records int, size int64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"path", path,
			"records", records,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"path", path,
			"records", records,
			"bytes", size,
			"duration", duration,
		)
	}
}

// LogOpen logs opening a column file.
func (l *Logger) LogOpen(ctx context.Context, kind, path string, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open column failed",
			"kind", kind,
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "column opened",
			"kind", kind,
			"path", path,
			"length", length,
		)
	}
}
