// Package logging configures the process-wide slog logger. Level and
// format come from LOG_LEVEL and LOG_FORMAT so CI runs can switch to
// JSON without flags.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures the default slog logger from the environment.
// LOG_LEVEL: debug, info, warn, error (default: warn — the CLI prints
// its own reports, structured logs are for diagnostics).
// LOG_FORMAT: text, json (default: text).
func Init() {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
