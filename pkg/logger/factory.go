package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New creates a JSON-formatted logger with optional context extractors.
// Long-running processes such as the language server use this one.
func New(extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewContextHandler(log, extractors...))
}

// NewPretty creates a colorized, human-readable logger on stderr so stdout
// stays free for data output. The translation CLI uses this one.
func NewPretty(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	log := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(NewContextHandler(log, extractors...))
}
