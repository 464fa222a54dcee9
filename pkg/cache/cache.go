package cache

import (
	"github.com/otastrings/otastrings/pkg/translations"
)

// Cache is the capability shared by every layer of the translation cache.
//
// The Memory store serializes access internally; decorator layers add no
// locking of their own and are as concurrency-safe as the store they wrap.
type Cache interface {
	// Get returns the complete cached TranslationSet.
	Get() translations.TranslationSet

	// GetTemplate returns the template stored for key in locale. The second
	// return value is false when the entry was never populated; a populated
	// entry with an empty template returns ("", true).
	GetTemplate(key, locale string) (string, bool)

	// Update applies an incoming TranslationSet. The effect depends on the
	// layer: stores write it, filters transform it, guards drop it.
	Update(incoming translations.TranslationSet)
}

// Provider supplies a read-only TranslationSet snapshot used to seed a cache
// at construction time.
type Provider interface {
	Load() (translations.TranslationSet, error)
}

// ProviderFunc adapts a bare function to the Provider interface.
type ProviderFunc func() (translations.TranslationSet, error)

// Load implements Provider.
func (fn ProviderFunc) Load() (translations.TranslationSet, error) {
	return fn()
}

// Nop is the inert cache: reads return an empty set and updates are
// discarded. Useful where the interface is required but no storage is
// wanted.
type Nop struct{}

// NewNop creates an inert cache.
func NewNop() *Nop {
	return &Nop{}
}

// Get implements Cache.
func (*Nop) Get() translations.TranslationSet {
	return translations.TranslationSet{}
}

// GetTemplate implements Cache.
func (*Nop) GetTemplate(_, _ string) (string, bool) {
	return "", false
}

// Update implements Cache.
func (*Nop) Update(translations.TranslationSet) {}

var _ Cache = (*Nop)(nil)
