package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a structured logger for the application
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new logger writing to stdout
func NewLogger(level, format string) *Logger {
	return NewLoggerTo(os.Stdout, level, format)
}

// NewLoggerTo creates a new logger writing to w. format is "json" or "text".
func NewLoggerTo(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// NopLogger discards everything, for tests
func NopLogger() *Logger {
	return NewLoggerTo(io.Discard, "error", "text")
}

// ParseLevel maps a level name onto a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a logger carrying the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithComponent scopes the logger to a named component
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}
