package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context. Returning false
// skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type contextKey string

const (
	localeKey    contextKey = "locale"
	stringKeyKey contextKey = "string_key"
)

// ContextWithLocale tags the context with the locale being operated on.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// ContextWithStringKey tags the context with the translation key being
// looked up or rendered.
func ContextWithStringKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, stringKeyKey, key)
}

// LocaleExtractor surfaces the locale set by ContextWithLocale.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if locale, ok := ctx.Value(localeKey).(string); ok && locale != "" {
		return slog.String("locale", locale), true
	}
	return slog.Attr{}, false
}

// StringKeyExtractor surfaces the key set by ContextWithStringKey.
func StringKeyExtractor(ctx context.Context) (slog.Attr, bool) {
	if key, ok := ctx.Value(stringKeyKey).(string); ok && key != "" {
		return slog.String("string_key", key), true
	}
	return slog.Attr{}, false
}
