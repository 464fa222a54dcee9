package cache

import (
	"maps"

	"github.com/otastrings/otastrings/pkg/translations"
)

// MergePolicy governs how an incoming TranslationSet combines with
// previously cached entries.
type MergePolicy int

const (
	// MergeReplaceAll discards prior contents for every locale present in
	// the incoming set and writes the incoming entries verbatim, including
	// entries with empty templates ("known but untranslated").
	MergeReplaceAll MergePolicy = iota

	// MergeUpdateUsingTranslated writes only incoming entries whose
	// template is non-empty. Empty incoming values are dropped so a noisy
	// or incomplete sync can never blank out a known-good cached
	// translation.
	MergeUpdateUsingTranslated
)

// MergeFilter is a cache decorator that applies a MergePolicy to every
// update before handing it to the inner cache. Reads pass straight through.
type MergeFilter struct {
	inner  Cache
	policy MergePolicy
}

// NewMergeFilter wraps inner with the given merge policy.
func NewMergeFilter(inner Cache, policy MergePolicy) *MergeFilter {
	return &MergeFilter{inner: inner, policy: policy}
}

// Get implements Cache.
func (f *MergeFilter) Get() translations.TranslationSet {
	return f.inner.Get()
}

// GetTemplate implements Cache.
func (f *MergeFilter) GetTemplate(key, locale string) (string, bool) {
	return f.inner.GetTemplate(key, locale)
}

// Update implements Cache. Under MergeReplaceAll the incoming set is
// forwarded verbatim; the inner store replaces the affected locales. Under
// MergeUpdateUsingTranslated the filter builds the merged locale tables
// itself, keeping existing entries and admitting only translated incoming
// ones.
func (f *MergeFilter) Update(incoming translations.TranslationSet) {
	if f.policy == MergeReplaceAll {
		f.inner.Update(incoming)
		return
	}

	existing := f.inner.Get()
	merged := make(translations.TranslationSet, len(incoming))

	for locale, table := range incoming {
		dst := make(translations.LocaleStringTable, len(table))
		if current, ok := existing[locale]; ok {
			maps.Copy(dst, current)
		}
		for key, entry := range table {
			if entry.IsTranslated() {
				dst[key] = entry
			}
		}
		merged[locale] = dst
	}

	f.inner.Update(merged)
}

var _ Cache = (*MergeFilter)(nil)
