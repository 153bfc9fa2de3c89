package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on w at debug level when debug is set, and a
// logger that drops everything otherwise.
func NewLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
