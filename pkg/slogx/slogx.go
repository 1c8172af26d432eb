// Package slogx configures structured logging for programs built on the
// CirtusAI SDK. The SDK itself only logs through the logger handed to it;
// this package is the glue-side convenience for constructing one.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	App    string // e.g. "cirtusai-cli"
	Level  string // e.g. "debug", "info", "warn", "error"
	Format string // e.g. "json", "text"
}

// New returns a configured slog.Logger instance and sets it as the default.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With(
		"app", cfg.App,
		"sdk", "cirtusai-sdk-go",
	)

	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a string to slog.Level.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
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
