package translations

// CurrentLocaleResolver reports the locale the application is currently
// displaying. The default resolver pins the source locale; embedding
// platforms plug in their own OS-preference lookup.
type CurrentLocaleResolver interface {
	CurrentLocale() string
}

// ResolverFunc adapts a bare function to the CurrentLocaleResolver interface.
type ResolverFunc func() string

// CurrentLocale implements CurrentLocaleResolver.
func (fn ResolverFunc) CurrentLocale() string {
	return fn()
}

// StaticResolver returns a resolver that always reports the given locale.
func StaticResolver(locale string) CurrentLocaleResolver {
	return ResolverFunc(func() string { return locale })
}

// LocaleConfig holds the locale setup of the embedding application: the
// source locale the original strings are authored in, the full ordered list
// of supported locales, and the current-locale resolver.
//
// The source locale is always a member of the supported set and always comes
// first; duplicates are collapsed while preserving first-seen order.
type LocaleConfig struct {
	sourceLocale string
	appLocales   []string
	resolver     CurrentLocaleResolver
}

// LocaleOption configures a LocaleConfig during construction.
type LocaleOption func(*LocaleConfig)

// WithCurrentLocale sets the current-locale resolver.
// Defaults to a static resolver pinned to the source locale.
func WithCurrentLocale(resolver CurrentLocaleResolver) LocaleOption {
	return func(c *LocaleConfig) {
		if resolver != nil {
			c.resolver = resolver
		}
	}
}

// NewLocaleConfig creates a locale configuration. The source locale must be
// non-empty; appLocales may repeat it or contain duplicates, both are
// collapsed.
func NewLocaleConfig(sourceLocale string, appLocales []string, opts ...LocaleOption) (*LocaleConfig, error) {
	if sourceLocale == "" {
		return nil, ErrEmptySourceLocale
	}

	c := &LocaleConfig{
		sourceLocale: sourceLocale,
		appLocales:   dedupeLocales(sourceLocale, appLocales),
		resolver:     StaticResolver(sourceLocale),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SourceLocale returns the locale the application's strings are authored in.
func (c *LocaleConfig) SourceLocale() string {
	return c.sourceLocale
}

// AppLocales returns the supported locales, source locale first. The slice
// is a copy; callers may mutate it freely.
func (c *LocaleConfig) AppLocales() []string {
	out := make([]string, len(c.appLocales))
	copy(out, c.appLocales)
	return out
}

// TranslatedLocales returns the supported locales excluding the source
// locale, which never needs fetching.
func (c *LocaleConfig) TranslatedLocales() []string {
	out := make([]string, 0, len(c.appLocales)-1)
	for _, locale := range c.appLocales[1:] {
		out = append(out, locale)
	}
	return out
}

// CurrentLocale reports the locale currently in effect via the configured
// resolver.
func (c *LocaleConfig) CurrentLocale() string {
	return c.resolver.CurrentLocale()
}

// IsSource reports whether locale is the source locale.
func (c *LocaleConfig) IsSource(locale string) bool {
	return locale == c.sourceLocale
}

// IsSupported reports whether locale is in the supported set.
func (c *LocaleConfig) IsSupported(locale string) bool {
	for _, l := range c.appLocales {
		if l == locale {
			return true
		}
	}
	return false
}

func dedupeLocales(sourceLocale string, appLocales []string) []string {
	seen := map[string]bool{sourceLocale: true}
	out := make([]string, 0, len(appLocales)+1)
	out = append(out, sourceLocale)

	for _, locale := range appLocales {
		if locale == "" || seen[locale] {
			continue
		}
		seen[locale] = true
		out = append(out, locale)
	}

	return out
}
