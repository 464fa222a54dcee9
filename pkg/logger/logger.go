package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

type config struct {
	writer     io.Writer
	level      slog.Level
	text       bool
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures logger construction.
type Option func(*config)

// WithWriter redirects log output; os.Stdout is the default.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithLevel sets the minimum level; slog.LevelInfo is the default.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithTextFormat switches from JSON to human-readable text output.
func WithTextFormat() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithExtractors registers context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// SentryConfig holds the Sentry forwarding settings.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`

	// MinLevel is the lowest level forwarded as a Sentry log entry.
	// Errors always create issues.
	MinLevel slog.Level
}

// WithSentry forwards warnings and errors to Sentry in addition to the
// regular writer. An empty DSN disables forwarding.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		c.sentry = &cfg
	}
}

// New builds a structured logger for SDK diagnostics.
func New(opts ...Option) *slog.Logger {
	cfg := config{writer: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&cfg)
	}

	var base slog.Handler
	if cfg.text {
		base = slog.NewTextHandler(cfg.writer, &slog.HandlerOptions{Level: cfg.level})
	} else {
		base = slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{Level: cfg.level})
	}

	if cfg.sentry != nil && cfg.sentry.DSN != "" {
		if handler, err := sentryHandler(*cfg.sentry); err != nil {
			slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			base = newMultiHandler(base, handler)
		}
	}

	return slog.New(newExtractorHandler(base, cfg.extractors...))
}

// NewDiscard returns a logger that drops everything. It is the default
// inside SDK components when the caller configures no logger.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background()), nil
}
