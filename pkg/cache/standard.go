package cache

import (
	"log/slog"
)

// StandardOption configures the standard cache composition.
type StandardOption func(*standardOptions)

type standardOptions struct {
	providers []Provider
	policy    MergePolicy
	logger    *slog.Logger
}

// WithProviders prepends read-only snapshot providers used to seed the
// cache, in precedence order: later providers overwrite earlier ones,
// subject to the merge policy. The writable snapshot file itself is always
// layered last, on top of these.
func WithProviders(providers ...Provider) StandardOption {
	return func(o *standardOptions) {
		o.providers = append(o.providers, providers...)
	}
}

// WithMergePolicy sets the merge policy applied while seeding.
// Defaults to MergeUpdateUsingTranslated.
func WithMergePolicy(policy MergePolicy) StandardOption {
	return func(o *standardOptions) {
		o.policy = policy
	}
}

// WithLogger sets the logger used for best-effort seed and persistence
// failures. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) StandardOption {
	return func(o *standardOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewStandard builds the default cache composition around a writable
// snapshot file (outermost to innermost):
//
//	FileOutput > ReadOnly > ProviderSeed > MergeFilter > Memory
//
// The configured providers seed memory first, then the snapshot file at
// path is layered on top, so previously persisted live updates take
// precedence over bundled snapshots. Reads reflect the seeded state; live
// updates bypass memory (read-only guard) and land in the snapshot file,
// where the next startup picks them up.
//
// Close the returned cache to flush pending snapshot writes.
func NewStandard(path string, opts ...StandardOption) *FileOutput {
	o := &standardOptions{
		policy: MergeUpdateUsingTranslated,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	providers := make([]Provider, 0, len(o.providers)+1)
	providers = append(providers, o.providers...)
	providers = append(providers, NewFileProvider(path))

	chain := NewMergeFilter(NewMemory(), o.policy)
	seeded := NewProviderSeed(chain, providers, o.logger)

	return NewFileOutput(NewReadOnly(seeded), path, o.logger)
}
