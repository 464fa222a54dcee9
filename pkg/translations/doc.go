// Package translations defines the shared data model of the OTA localization
// pipeline: the locale -> key -> template mapping exchanged between the CDS
// client, the cache layers, and disk persistence, plus deterministic key
// generation and locale configuration.
//
// # Translation sets
//
// A TranslationSet groups string tables by locale code:
//
//	set := translations.TranslationSet{
//	    "fr": {
//	        "welcome": {String: "Bienvenue"},
//	    },
//	}
//	tmpl, ok := set.Get("fr", "welcome")
//
// An entry with an empty template means "key is known but not translated",
// which is distinct from the key being absent entirely. Merge policies in the
// cache layer rely on that distinction.
//
// # Key generation
//
// Keys are either the raw source string itself or a stable hash of the source
// string and its context:
//
//	key := translations.GenerateKey("Hello", "menu,greeting")
//
// GenerateKey is a pure function: identical inputs always produce the same
// key across processes and releases.
//
// # Locale configuration
//
// LocaleConfig captures the source locale, the ordered list of supported
// locales, and a pluggable resolver for the current locale:
//
//	cfg, err := translations.NewLocaleConfig("en", []string{"fr", "de"},
//	    translations.WithCurrentLocale(translations.StaticResolver("fr")),
//	)
package translations
