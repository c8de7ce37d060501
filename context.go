package lingo

import (
	"context"
	"log/slog"
)

type languageCtxKey struct{}

// ContextWithLanguage returns a context carrying the active language id.
func ContextWithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, languageCtxKey{}, language)
}

// LanguageFromContext returns the language id carried by ctx, if any.
func LanguageFromContext(ctx context.Context) (string, bool) {
	language, ok := ctx.Value(languageCtxKey{}).(string)
	return language, ok && language != ""
}

// LanguageExtractor adds the context language to log records. Pass it to the
// logger factories so every line names the language being processed.
func LanguageExtractor(ctx context.Context) (slog.Attr, bool) {
	if language, ok := LanguageFromContext(ctx); ok {
		return slog.String("language", language), true
	}
	return slog.Attr{}, false
}
