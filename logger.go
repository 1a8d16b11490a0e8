package carwash

import (
	"context"
	"log/slog"
	"os"

	"github.com/dealpredict/carwash/clean"
)

// Logger wraps slog.Logger with carwash-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogStep logs the effect of one cleaning step.
func (l *Logger) LogStep(ctx context.Context, s clean.Summary) {
	l.DebugContext(ctx, "step completed", s.Attrs()...)
}

// LogRun logs the outcome of a full pipeline run.
func (l *Logger) LogRun(ctx context.Context, rowsIn, rowsOut, steps int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pipeline run failed",
			"rows_in", rowsIn,
			"steps", steps,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "pipeline run completed",
			"rows_in", rowsIn,
			"rows_out", rowsOut,
			"steps", steps,
		)
	}
}

// LogRead logs a table read through the table store.
func (l *Logger) LogRead(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table read failed",
			"object", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table read",
			"object", name,
			"rows", rows,
		)
	}
}

// LogWrite logs a table write through the table store.
func (l *Logger) LogWrite(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table write failed",
			"object", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table written",
			"object", name,
			"rows", rows,
		)
	}
}
