// Package logger provides structured logging with context extraction and Sentry integration.
//
// This package extends the standard library's log/slog with automatic
// context-based attribute injection, a colorized CLI handler and optional
// Sentry error reporting. Translation tooling and the language server share
// it so every log line carries the same enrichment.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	// Define an extractor for the active translation language
//	langExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if lang, ok := ctx.Value(langKey).(string); ok && lang != "" {
//			return slog.String("language", lang), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(langExtractor)
//
//	// Use with context - language is automatically included
//	log.InfoContext(ctx, "translations reloaded", slog.Int("clients", 3))
//	// Output: {"level":"INFO","msg":"translations reloaded","clients":3,"language":"de"}
//
// # CLI Output
//
// NewPretty writes colorized single-line records to stderr, which keeps
// stdout clean for piped data such as converted translation files:
//
//	log := logger.NewPretty(slog.LevelDebug)
//	log.Debug("parsed", slog.String("file", "de/Main.lng"))
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	cfg := logger.SentryConfig{
//		DSN:         os.Getenv("LINGO_SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}
//	log := logger.NewWithSentry(cfg, langExtractor)
//
// If the DSN is empty, the logger gracefully falls back to stdout-only
// logging, so the same code path works in development and production.
//
// # Handler Decoration
//
// NewContextHandler can wrap any slog.Handler to add context extraction:
//
//	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	log := slog.New(logger.NewContextHandler(jsonHandler, extractors...))
//
// Extractors run on every log call, so scoped values stay fresh, and an
// extractor returning false contributes nothing to that record.
package logger
