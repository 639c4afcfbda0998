// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Options controls logger construction
type Options struct {
	// Writer defaults to os.Stdout
	Writer io.Writer
	// Level is one of debug, info, warn, error
	Level string
	// Format is json, text, or anything else for colored console output
	Format    string
	AddSource bool
}

// New creates a logger for the given options
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			Level:     level,
			AddSource: opts.AddSource,
		})
	case "text":
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
			Level:     level,
			AddSource: opts.AddSource,
		})
	default:
		handler = tint.NewHandler(opts.Writer, &tint.Options{
			Level:      level,
			AddSource:  opts.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Err returns an error attribute for structured logging
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
