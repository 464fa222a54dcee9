// Package otastrings delivers over-the-air localized strings: it pulls
// translations for an application's configured locales from a Content
// Delivery Service, keeps them in a layered cache with optional disk
// persistence, and renders them at lookup time with plural and
// placeholder handling.
//
// A Client is an explicit handle wiring together the locale
// configuration, the CDS client, the cache, and the render policies.
// Construct one at startup and inject it wherever strings are resolved:
//
//	client, err := otastrings.New("cds-token", "en",
//		otastrings.WithAppLocales("fr", "de"),
//		otastrings.WithCDSHost("https://cds.example.com"),
//		otastrings.WithCacheFile(filepath.Join(cacheDir, "translations.json")),
//		otastrings.WithCurrentLocaleResolver(localePrefs),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	if errs := client.FetchTranslations(ctx); len(errs) > 0 {
//		log.Warn("some locales failed to sync")
//	}
//
//	greeting := client.Translate("Welcome back, %s!", otastrings.TranslateParams{
//		Args: []any{username},
//	})
//
// Translation lookups never fail: a missing translation falls back
// through the configured missing-translation policy, and a template that
// cannot be rendered falls back through the render-error policy. Both
// default to showing the source string.
//
// The subpackages are usable on their own: pkg/cds speaks the wire
// protocol, pkg/cache holds the decorator chain and snapshot providers,
// pkg/render parses and renders plural and substitution templates, and
// pkg/policy hosts the fallback policies.
package otastrings
