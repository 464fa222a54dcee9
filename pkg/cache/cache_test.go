package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings/pkg/cache"
	"github.com/otastrings/otastrings/pkg/translations"
)

func table(pairs map[string]string) translations.LocaleStringTable {
	t := make(translations.LocaleStringTable, len(pairs))
	for k, v := range pairs {
		t[k] = translations.StringEntry{String: v}
	}
	return t
}

// --- Memory ---

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()

		m := cache.NewMemory()
		require.Empty(t, m.Get())
		_, ok := m.GetTemplate("a", "fr")
		require.False(t, ok)
	})

	t.Run("update replaces locales wholesale", func(t *testing.T) {
		t.Parallel()

		m := cache.NewMemory()
		m.Update(translations.TranslationSet{
			"fr": table(map[string]string{"a": "a", "b": "b"}),
			"de": table(map[string]string{"x": "x"}),
		})
		m.Update(translations.TranslationSet{
			"fr": table(map[string]string{"c": "c"}),
		})

		_, ok := m.GetTemplate("a", "fr")
		require.False(t, ok)
		tmpl, ok := m.GetTemplate("c", "fr")
		require.True(t, ok)
		require.Equal(t, "c", tmpl)

		// Locales absent from the update are untouched.
		tmpl, ok = m.GetTemplate("x", "de")
		require.True(t, ok)
		require.Equal(t, "x", tmpl)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		t.Parallel()

		m := cache.NewMemory()
		m.Update(translations.TranslationSet{"fr": table(map[string]string{"a": "a"})})

		snapshot := m.Get()
		snapshot.Put("fr", "a", "mutated")

		tmpl, _ := m.GetTemplate("a", "fr")
		require.Equal(t, "a", tmpl)
	})
}

// --- MergeFilter ---

func TestMergeFilter(t *testing.T) {
	t.Parallel()

	existing := translations.TranslationSet{
		"fr": table(map[string]string{"a": "a", "b": "b", "c": "c", "d": "", "e": ""}),
	}
	incoming := translations.TranslationSet{
		"fr": table(map[string]string{"b": "B", "c": "", "e": "E", "f": "F", "g": ""}),
	}

	t.Run("replace-all discards prior locale contents", func(t *testing.T) {
		t.Parallel()

		f := cache.NewMergeFilter(cache.NewMemory(), cache.MergeReplaceAll)
		f.Update(existing.Clone())
		f.Update(incoming.Clone())

		require.Equal(t, translations.TranslationSet{
			"fr": table(map[string]string{"b": "B", "c": "", "e": "E", "f": "F", "g": ""}),
		}, f.Get())
	})

	t.Run("update-using-translated keeps known-good entries", func(t *testing.T) {
		t.Parallel()

		f := cache.NewMergeFilter(cache.NewMemory(), cache.MergeReplaceAll)
		f.Update(existing.Clone())

		filtered := cache.NewMergeFilter(f, cache.MergeUpdateUsingTranslated)
		filtered.Update(incoming.Clone())

		require.Equal(t, translations.TranslationSet{
			"fr": table(map[string]string{"a": "a", "b": "B", "c": "c", "d": "", "e": "E", "f": "F"}),
		}, filtered.Get())
	})

	t.Run("update-using-translated is idempotent", func(t *testing.T) {
		t.Parallel()

		f := cache.NewMergeFilter(cache.NewMemory(), cache.MergeUpdateUsingTranslated)
		f.Update(incoming.Clone())
		once := f.Get()

		f.Update(incoming.Clone())
		require.Equal(t, once, f.Get())
	})

	t.Run("update-using-translated on a fresh cache drops empty values", func(t *testing.T) {
		t.Parallel()

		f := cache.NewMergeFilter(cache.NewMemory(), cache.MergeUpdateUsingTranslated)
		f.Update(incoming.Clone())

		require.Equal(t, translations.TranslationSet{
			"fr": table(map[string]string{"b": "B", "e": "E", "f": "F"}),
		}, f.Get())
	})
}

// --- ReadOnly ---

func TestReadOnly(t *testing.T) {
	t.Parallel()

	inner := cache.NewMemory()
	inner.Update(translations.TranslationSet{"fr": table(map[string]string{"a": "seeded"})})

	guard := cache.NewReadOnly(inner)
	guard.Update(translations.TranslationSet{"fr": table(map[string]string{"a": "live", "b": "new"})})

	tmpl, ok := guard.GetTemplate("a", "fr")
	require.True(t, ok)
	require.Equal(t, "seeded", tmpl)
	_, ok = guard.GetTemplate("b", "fr")
	require.False(t, ok)
}

// --- ProviderSeed ---

func TestProviderSeed(t *testing.T) {
	t.Parallel()

	t.Run("seeds in provider order", func(t *testing.T) {
		t.Parallel()

		first := cache.ProviderFunc(func() (translations.TranslationSet, error) {
			return translations.TranslationSet{"fr": table(map[string]string{"a": "first", "b": "first"})}, nil
		})
		second := cache.ProviderFunc(func() (translations.TranslationSet, error) {
			return translations.TranslationSet{"fr": table(map[string]string{"b": "second"})}, nil
		})

		seeded := cache.NewProviderSeed(
			cache.NewMergeFilter(cache.NewMemory(), cache.MergeUpdateUsingTranslated),
			[]cache.Provider{first, second},
			nil,
		)

		tmpl, _ := seeded.GetTemplate("a", "fr")
		require.Equal(t, "first", tmpl)
		tmpl, _ = seeded.GetTemplate("b", "fr")
		require.Equal(t, "second", tmpl)
	})

	t.Run("skips failing providers", func(t *testing.T) {
		t.Parallel()

		failing := cache.ProviderFunc(func() (translations.TranslationSet, error) {
			return nil, errors.New("disk gone")
		})
		working := cache.ProviderFunc(func() (translations.TranslationSet, error) {
			return translations.TranslationSet{"fr": table(map[string]string{"a": "ok"})}, nil
		})

		seeded := cache.NewProviderSeed(cache.NewMemory(), []cache.Provider{failing, working}, nil)

		tmpl, ok := seeded.GetTemplate("a", "fr")
		require.True(t, ok)
		require.Equal(t, "ok", tmpl)
	})

	t.Run("own update is a no-op", func(t *testing.T) {
		t.Parallel()

		seeded := cache.NewProviderSeed(cache.NewMemory(), nil, nil)
		seeded.Update(translations.TranslationSet{"fr": table(map[string]string{"a": "live"})})

		require.Empty(t, seeded.Get())
	})
}

// --- Nop ---

func TestNop(t *testing.T) {
	t.Parallel()

	n := cache.NewNop()
	n.Update(translations.TranslationSet{"fr": table(map[string]string{"a": "a"})})

	require.Empty(t, n.Get())
	_, ok := n.GetTemplate("a", "fr")
	require.False(t, ok)
}
