// Package logger builds the structured loggers the SDK uses for its
// diagnostics: fetch retries, cache persistence, render degradations.
//
// It extends log/slog with context extraction, so request-scoped values
// like the active locale travel into every log line without being passed
// around explicitly, and with optional Sentry forwarding for production
// error tracking.
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug), logger.WithExtractors(logger.LocaleExtractor))
//
//	ctx := logger.ContextWithLocale(ctx, "fr")
//	log.InfoContext(ctx, "translations updated")
//	// {"level":"INFO","msg":"translations updated","locale":"fr"}
//
// Sentry forwarding degrades gracefully: with no DSN configured the
// logger writes to its writer only, so the same construction code runs in
// development and production.
package logger
