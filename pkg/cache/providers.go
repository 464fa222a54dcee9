package cache

import (
	"log/slog"

	"github.com/otastrings/otastrings/pkg/translations"
)

// ProviderSeed is a cache decorator that seeds the inner cache from an
// ordered list of read-only snapshot providers, once, at construction.
// Later providers overwrite earlier ones subject to whatever merge policy
// sits below. Its own Update is a no-op: the seed layer represents static
// snapshot data, not a live sync target.
type ProviderSeed struct {
	inner Cache
}

// NewProviderSeed wraps inner and immediately feeds every provider snapshot
// into it, in provider order. Provider failures are logged and skipped;
// seeding is best-effort.
func NewProviderSeed(inner Cache, providers []Provider, logger *slog.Logger) *ProviderSeed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, provider := range providers {
		if provider == nil {
			continue
		}
		set, err := provider.Load()
		if err != nil {
			logger.Warn("translation snapshot provider failed", slog.Any("error", err))
			continue
		}
		if len(set) == 0 {
			continue
		}
		inner.Update(set)
	}

	return &ProviderSeed{inner: inner}
}

// Get implements Cache.
func (p *ProviderSeed) Get() translations.TranslationSet {
	return p.inner.Get()
}

// GetTemplate implements Cache.
func (p *ProviderSeed) GetTemplate(key, locale string) (string, bool) {
	return p.inner.GetTemplate(key, locale)
}

// Update implements Cache as a no-op.
func (p *ProviderSeed) Update(translations.TranslationSet) {}

var _ Cache = (*ProviderSeed)(nil)
