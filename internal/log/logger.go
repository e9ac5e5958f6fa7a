package log

import (
	"io"
	"log/slog"
)

var logger *slog.Logger

func init() {
	// The editor owns the terminal, so nothing is logged until SetOutput.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// SetOutput routes log records at or above level to w.
func SetOutput(w io.Writer, level slog.Level) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
