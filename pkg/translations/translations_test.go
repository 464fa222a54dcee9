package translations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings/pkg/translations"
)

func TestTranslationSet_Get(t *testing.T) {
	t.Parallel()

	set := translations.TranslationSet{
		"fr": {
			"welcome": {String: "Bienvenue"},
			"pending": {String: ""},
		},
	}

	t.Run("returns populated template", func(t *testing.T) {
		t.Parallel()

		tmpl, ok := set.Get("fr", "welcome")
		require.True(t, ok)
		require.Equal(t, "Bienvenue", tmpl)
	})

	t.Run("empty template is populated but unusable", func(t *testing.T) {
		t.Parallel()

		tmpl, ok := set.Get("fr", "pending")
		require.True(t, ok)
		require.Empty(t, tmpl)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, ok := set.Get("fr", "absent")
		require.False(t, ok)
	})

	t.Run("missing locale", func(t *testing.T) {
		t.Parallel()

		_, ok := set.Get("de", "welcome")
		require.False(t, ok)
	})
}

func TestTranslationSet_Overlay(t *testing.T) {
	t.Parallel()

	t.Run("incoming wins including empty templates", func(t *testing.T) {
		t.Parallel()

		set := translations.TranslationSet{
			"fr": {"a": {String: "a"}, "b": {String: "b"}},
		}
		set.Overlay(translations.TranslationSet{
			"fr": {"b": {String: ""}, "c": {String: "c"}},
			"de": {"a": {String: "A"}},
		})

		tmpl, ok := set.Get("fr", "b")
		require.True(t, ok)
		require.Empty(t, tmpl)

		tmpl, _ = set.Get("fr", "a")
		require.Equal(t, "a", tmpl)
		tmpl, _ = set.Get("fr", "c")
		require.Equal(t, "c", tmpl)
		tmpl, _ = set.Get("de", "a")
		require.Equal(t, "A", tmpl)
	})
}

func TestTranslationSet_Clone(t *testing.T) {
	t.Parallel()

	original := translations.TranslationSet{
		"fr": {"a": {String: "a"}},
	}
	clone := original.Clone()
	clone.Put("fr", "a", "mutated")
	clone.Put("de", "b", "new")

	tmpl, _ := original.Get("fr", "a")
	require.Equal(t, "a", tmpl)
	_, ok := original.Get("de", "b")
	require.False(t, ok)
}

func TestTranslationSet_IsEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, translations.TranslationSet{}.IsEmpty())
	require.True(t, translations.TranslationSet{"fr": {}}.IsEmpty())
	require.False(t, translations.TranslationSet{"fr": {"a": {String: ""}}}.IsEmpty())
}
