package cache

import (
	"maps"
	"sync"

	"github.com/otastrings/otastrings/pkg/translations"
)

// Memory is the innermost cache layer: an in-memory TranslationSet guarded
// by a read-write lock, so lookups can run concurrently with fetch-driven
// updates. Update replaces the stored table of every locale present in the
// incoming set; wrap it in a MergeFilter for selective merging.
type Memory struct {
	mu  sync.RWMutex
	set translations.TranslationSet
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{set: make(translations.TranslationSet)}
}

// Get implements Cache. The returned set is a copy; mutating it does not
// affect the cache.
func (m *Memory) Get() translations.TranslationSet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.set.Clone()
}

// GetTemplate implements Cache.
func (m *Memory) GetTemplate(key, locale string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.set.Get(locale, key)
}

// Update implements Cache. Each locale present in incoming replaces the
// stored table for that locale wholesale; locales absent from incoming are
// left untouched.
func (m *Memory) Update(incoming translations.TranslationSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for locale, table := range incoming {
		m.set[locale] = maps.Clone(table)
	}
}

var _ Cache = (*Memory)(nil)
