package otastrings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings"
	"github.com/otastrings/otastrings/pkg/cache"
	"github.com/otastrings/otastrings/pkg/policy"
	"github.com/otastrings/otastrings/pkg/translations"
)

// seededCache returns a memory cache holding the given locale tables,
// keyed by generated keys from source string and context.
func seededCache(locales map[string]map[string]string) cache.Cache {
	set := translations.TranslationSet{}
	for locale, entries := range locales {
		table := translations.LocaleStringTable{}
		for key, value := range entries {
			table[key] = translations.StringEntry{String: value}
		}
		set[locale] = table
	}
	mem := cache.NewMemory()
	mem.Update(set)
	return mem
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := otastrings.New("", "en")
		require.ErrorIs(t, err, otastrings.ErrMissingToken)
	})

	t.Run("missing source locale", func(t *testing.T) {
		t.Parallel()

		_, err := otastrings.New("tok", "")
		require.ErrorIs(t, err, translations.ErrEmptySourceLocale)
	})

	t.Run("bad host", func(t *testing.T) {
		t.Parallel()

		_, err := otastrings.New("tok", "en", otastrings.WithCDSHost("://nope"))
		require.Error(t, err)
	})
}

func TestClient_Translate(t *testing.T) {
	t.Parallel()

	frKey := translations.GenerateKey("Hello", "")

	newClient := func(t *testing.T, opts ...otastrings.Option) *otastrings.Client {
		t.Helper()

		base := []otastrings.Option{
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {frKey: "Bonjour"},
			})),
		}
		client, err := otastrings.New("tok", "en", append(base, opts...)...)
		require.NoError(t, err)
		return client
	}

	t.Run("source locale renders the source string", func(t *testing.T) {
		t.Parallel()

		client := newClient(t)
		out := client.Translate("Hello, %s!", otastrings.TranslateParams{Args: []any{"Ada"}})
		require.Equal(t, "Hello, Ada!", out)
	})

	t.Run("current locale resolves the translation", func(t *testing.T) {
		t.Parallel()

		client := newClient(t,
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.Equal(t, "Bonjour", client.Translate("Hello", otastrings.TranslateParams{}))
		require.Equal(t, "fr", client.CurrentLocale())
	})

	t.Run("explicit key overrides generation", func(t *testing.T) {
		t.Parallel()

		client, err := otastrings.New("tok", "en",
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {"custom.key": "Salut"},
			})),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		out := client.Translate("Hello", otastrings.TranslateParams{Key: "custom.key"})
		require.Equal(t, "Salut", out)
	})

	t.Run("context feeds key generation", func(t *testing.T) {
		t.Parallel()

		ctxKey := translations.GenerateKey("Open", "menu")
		client, err := otastrings.New("tok", "en",
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {ctxKey: "Ouvrir"},
			})),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		require.Equal(t, "Ouvrir", client.Translate("Open", otastrings.TranslateParams{Context: "menu"}))
		// Without the context the key differs and the lookup misses.
		require.Equal(t, "Open", client.Translate("Open", otastrings.TranslateParams{}))
	})

	t.Run("missing translation applies the missing policy", func(t *testing.T) {
		t.Parallel()

		client := newClient(t,
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")),
			otastrings.WithMissingPolicy(policy.WrappedString("[[", "]]")))

		require.Equal(t, "[[Goodbye]]", client.Translate("Goodbye", otastrings.TranslateParams{}))
	})

	t.Run("empty cached template counts as untranslated", func(t *testing.T) {
		t.Parallel()

		key := translations.GenerateKey("Pending", "")
		client, err := otastrings.New("tok", "en",
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {key: ""},
			})),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		require.Equal(t, "Pending", client.Translate("Pending", otastrings.TranslateParams{}))
	})

	t.Run("render failure falls back to the rendered source", func(t *testing.T) {
		t.Parallel()

		key := translations.GenerateKey("Value: %d", "")
		client, err := otastrings.New("tok", "en",
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {key: "Valeur: %d et %d"},
			})),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		out := client.Translate("Value: %d", otastrings.TranslateParams{Args: []any{5}})
		require.Equal(t, "Value: 5", out)
	})

	t.Run("custom error policy", func(t *testing.T) {
		t.Parallel()

		key := translations.GenerateKey("Value: %d", "")
		client, err := otastrings.New("tok", "en",
			otastrings.WithAppLocales("fr"),
			otastrings.WithCache(seededCache(map[string]map[string]string{
				"fr": {key: "Valeur: %d et %d"},
			})),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")),
			otastrings.WithErrorPolicy(policy.Static("??")))
		require.NoError(t, err)

		require.Equal(t, "??", client.Translate("Value: %d", otastrings.TranslateParams{Args: []any{5}}))
	})
}

func TestClient_TranslatePlural(t *testing.T) {
	t.Parallel()

	source := "{cnt, plural, one {%d message} other {%d messages}}"
	key := translations.GenerateKey(source, "")
	client, err := otastrings.New("tok", "en",
		otastrings.WithAppLocales("de"),
		otastrings.WithCache(seededCache(map[string]map[string]string{
			"de": {key: "{cnt, plural, one {%d Nachricht} other {%d Nachrichten}}"},
		})),
		otastrings.WithCurrentLocaleResolver(translations.StaticResolver("de")))
	require.NoError(t, err)

	require.Equal(t, "1 Nachricht", client.TranslatePlural(source, 1, otastrings.TranslateParams{}))
	require.Equal(t, "7 Nachrichten", client.TranslatePlural(source, 7, otastrings.TranslateParams{}))
}

func TestClient_FetchTranslations(t *testing.T) {
	t.Parallel()

	helloKey := translations.GenerateKey("Hello", "")

	t.Run("fetched translations become visible", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.True(t, strings.HasSuffix(r.URL.Path, "/content/fr"))
			w.Write([]byte(`{"data":{"` + helloKey + `":{"string":"Bonjour"}}}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := otastrings.New("tok", "en",
			otastrings.WithCDSHost(srv.URL),
			otastrings.WithAppLocales("fr"),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		require.Empty(t, client.FetchTranslations(context.Background()))
		require.Equal(t, "Bonjour", client.Translate("Hello", otastrings.TranslateParams{}))
	})

	t.Run("partial failure still updates the cache", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/content/fr") {
				w.Write([]byte(`{"data":{"` + helloKey + `":{"string":"Bonjour"}}}`)) //nolint:errcheck
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := otastrings.New("tok", "en",
			otastrings.WithCDSHost(srv.URL),
			otastrings.WithAppLocales("fr", "de"),
			otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
		require.NoError(t, err)

		errs := client.FetchTranslations(context.Background())
		require.Len(t, errs, 1)
		require.Equal(t, "Bonjour", client.Translate("Hello", otastrings.TranslateParams{}))
	})

	t.Run("filters reach the wire", func(t *testing.T) {
		t.Parallel()

		var query atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query.Store(r.URL.RawQuery)
			w.Write([]byte(`{"data":{}}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := otastrings.New("tok", "en",
			otastrings.WithCDSHost(srv.URL),
			otastrings.WithAppLocales("fr"))
		require.NoError(t, err)

		require.Empty(t, client.FetchTranslations(context.Background(),
			otastrings.WithFetchTags("ui"), otastrings.WithFetchStatus("reviewed")))
		raw, _ := query.Load().(string)
		require.Contains(t, raw, "reviewed")
		require.Contains(t, raw, "ui")
	})
}

func TestClient_ForceCacheInvalidation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invalidate", r.URL.Path)
		w.Write([]byte(`{"data":{"status":"success","count":3}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client, err := otastrings.New("tok", "en",
		otastrings.WithCDSHost(srv.URL),
		otastrings.WithSecret("sec"))
	require.NoError(t, err)

	require.True(t, client.ForceCacheInvalidation(context.Background()))
}

func TestClient_PersistedCacheRoundTrip(t *testing.T) {
	t.Parallel()

	helloKey := translations.GenerateKey("Hello", "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"` + helloKey + `":{"string":"Bonjour"}}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "translations.json")

	// First run fetches and persists.
	first, err := otastrings.New("tok", "en",
		otastrings.WithCDSHost(srv.URL),
		otastrings.WithAppLocales("fr"),
		otastrings.WithCacheFile(path))
	require.NoError(t, err)
	require.Empty(t, first.FetchTranslations(context.Background()))
	require.NoError(t, first.Close())

	// Second run sees the snapshot without any network fetch.
	second, err := otastrings.New("tok", "en",
		otastrings.WithAppLocales("fr"),
		otastrings.WithCacheFile(path),
		otastrings.WithCurrentLocaleResolver(translations.StaticResolver("fr")))
	require.NoError(t, err)
	defer second.Close() //nolint:errcheck

	require.Equal(t, "Bonjour", second.Translate("Hello", otastrings.TranslateParams{}))
}
