// Package logger builds the log/slog loggers used by the CLI and the executor.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Config selects the handler and level.
type Config struct {
	// Debug lowers the level to Debug and adds source locations.
	Debug bool
	// JSON switches from the text handler to the JSON handler.
	JSON bool
	// Writer receives log records; nil means os.Stderr.
	Writer io.Writer
}

// New returns a logger for cfg. Timestamps are rendered in UTC RFC3339Nano.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record without formatting it.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
