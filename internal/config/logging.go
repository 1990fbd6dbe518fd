package config

import (
	"io"
	"log/slog"
)

// logLevel is shared by every logger NewLogger creates. Info by default.
var logLevel = new(slog.LevelVar)

// SetVerbose switches debug logging on or off.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose reports whether debug logging is on.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// NewLogger returns a text logger writing to w at the shared level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
