package vecmat

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecmat-specific context.
// The package logs at Debug level only: storage strategy selection
// during random construction and regime selection during matrix
// multiplication.
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

// logger is the package-wide logger. Logging is off by default.
var logger = NoopLogger()

// SetLogger replaces the package logger. Passing nil disables
// logging again.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger = l
}
