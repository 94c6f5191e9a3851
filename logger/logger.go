package logger

import (
	"io"
	"log/slog"
)

var log *slog.Logger

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetLogger(l *slog.Logger) {
	log = l
}

// New returns a text logger writing to w, normally stderr so stdout only
// carries result lines. Debug records are only kept when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Debug records pipeline progress; shown with -v
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

