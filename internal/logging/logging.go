// Package logging configures the process-wide slog logger and hands out
// component-scoped children of it.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the default logger. Level gates what gets written,
// format selects the text or JSON handler, and an optional writer
// redirects output away from os.Stderr (tests pass a buffer).
func Init(level slog.Level, format string, w ...io.Writer) {
	out := io.Writer(os.Stderr)
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}
	slog.SetDefault(slog.New(newHandler(out, level, format)))
}

func newHandler(out io.Writer, level slog.Level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// New returns a child of the default logger tagged with the component
// name, so every line says which part of the pipeline wrote it.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps a config string to a slog.Level. Unknown values fall back
// to Info so a typo in config never silences logging entirely.
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
