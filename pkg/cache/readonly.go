package cache

import (
	"github.com/otastrings/otastrings/pkg/translations"
)

// ReadOnly is a cache decorator that drops every update from its callers
// while passing reads through untouched. It protects a seeded state from
// in-place mutation, forcing live updates through a separate persisted
// path. The guard only blocks its own callers: layers beneath it (such as
// the provider seed's one-time bootstrap) write directly to their inner
// cache and are unaffected.
type ReadOnly struct {
	inner Cache
}

// NewReadOnly wraps inner with an update guard.
func NewReadOnly(inner Cache) *ReadOnly {
	return &ReadOnly{inner: inner}
}

// Get implements Cache.
func (r *ReadOnly) Get() translations.TranslationSet {
	return r.inner.Get()
}

// GetTemplate implements Cache.
func (r *ReadOnly) GetTemplate(key, locale string) (string, bool) {
	return r.inner.GetTemplate(key, locale)
}

// Update implements Cache as a no-op.
func (r *ReadOnly) Update(translations.TranslationSet) {}

var _ Cache = (*ReadOnly)(nil)
