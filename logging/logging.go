// Package logging constructs the structured loggers used by the archiver.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a structured logger writing JSON lines to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// NewWithFile creates a logger that writes to both stdout and the named
// log file. The returned closer owns the file handle.
func NewWithFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(io.MultiWriter(os.Stdout, f), level), f, nil
}

// ForComponent returns a child logger tagged with a component attribute.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}
