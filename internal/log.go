package internal

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewLogger creates a tinted slog logger at the given level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// NewDefaultLogger creates a logger based on the LOG_LEVEL environment variable.
func NewDefaultLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = slog.LevelError
	case "WARN":
		level = slog.LevelWarn
	case "INFO":
		level = slog.LevelInfo
	case "DEBUG", "TRACE":
		level = slog.LevelDebug
	}
	return NewLogger(level)
}
