package translations

import "maps"

// StringEntry is a single cached translation. The template lives under the
// well-known "string" field on the wire; an empty template means the key is
// known to the service but carries no usable translation yet.
type StringEntry struct {
	String string `json:"string"`
}

// IsTranslated reports whether the entry carries a non-empty template.
func (e StringEntry) IsTranslated() bool {
	return e.String != ""
}

// LocaleStringTable maps translation keys to entries for one locale.
type LocaleStringTable map[string]StringEntry

// TranslationSet maps locale codes to their string tables. It is the unit
// exchanged between the CDS client, the cache decorators, and disk snapshots.
type TranslationSet map[string]LocaleStringTable

// Get returns the template for key in locale. The second return value is
// false when the entry has never been populated; a populated entry with an
// empty template returns ("", true).
func (s TranslationSet) Get(locale, key string) (string, bool) {
	table, ok := s[locale]
	if !ok {
		return "", false
	}
	entry, ok := table[key]
	if !ok {
		return "", false
	}
	return entry.String, true
}

// Put stores a template for key in locale, allocating the locale table on
// first use.
func (s TranslationSet) Put(locale, key, template string) {
	table, ok := s[locale]
	if !ok {
		table = make(LocaleStringTable)
		s[locale] = table
	}
	table[key] = StringEntry{String: template}
}

// Locales returns the locale codes present in the set, in no particular order.
func (s TranslationSet) Locales() []string {
	locales := make([]string, 0, len(s))
	for locale := range s {
		locales = append(locales, locale)
	}
	return locales
}

// Clone returns a deep copy of the set. Mutating the copy never affects the
// original.
func (s TranslationSet) Clone() TranslationSet {
	clone := make(TranslationSet, len(s))
	for locale, table := range s {
		clone[locale] = maps.Clone(table)
	}
	return clone
}

// Overlay writes every entry of incoming into the set verbatim, allocating
// locale tables as needed. Entries with empty templates overwrite too; use
// the cache merge policies for selective merging.
func (s TranslationSet) Overlay(incoming TranslationSet) {
	for locale, table := range incoming {
		dst, ok := s[locale]
		if !ok {
			dst = make(LocaleStringTable, len(table))
			s[locale] = dst
		}
		maps.Copy(dst, table)
	}
}

// IsEmpty reports whether the set contains no entries at all.
func (s TranslationSet) IsEmpty() bool {
	for _, table := range s {
		if len(table) > 0 {
			return false
		}
	}
	return true
}
