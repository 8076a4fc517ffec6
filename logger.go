package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured slog.Logger writing JSON to stderr with
// the given level. Stdout is kept clean; the Tk console may share it.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
