package internal

import (
	"log/slog"
	"os"
	"strings"
)

// GetLoggerFromString builds the application logger from a level name.
// Unknown names fall back to info.
func GetLoggerFromString(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return GetLoggerFromLevel(lvl)
}

// GetLoggerFromLevel builds a text logger on stderr at the given level.
func GetLoggerFromLevel(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
