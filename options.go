package otastrings

import (
	"log/slog"
	"net/http"

	"github.com/otastrings/otastrings/pkg/cache"
	"github.com/otastrings/otastrings/pkg/cds"
	"github.com/otastrings/otastrings/pkg/policy"
	"github.com/otastrings/otastrings/pkg/render"
	"github.com/otastrings/otastrings/pkg/translations"
)

type options struct {
	host       string
	secret     string
	httpClient *http.Client
	cdsOpts    []cds.Option

	appLocales []string
	resolver   translations.CurrentLocaleResolver

	cache     cache.Cache
	cacheFile string
	cacheOpts []cache.StandardOption

	missing   policy.MissingPolicy
	errPolicy policy.ErrorPolicy
	renderer  *render.Renderer
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithCDSHost points the client at a specific CDS instance. Defaults to
// the public production host.
func WithCDSHost(host string) Option {
	return func(o *options) {
		if host != "" {
			o.host = host
		}
	}
}

// WithSecret sets the write secret required for push and invalidation.
func WithSecret(secret string) Option {
	return func(o *options) {
		o.secret = secret
	}
}

// WithHTTPClient replaces the HTTP client used for CDS requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithCDSOptions forwards extra options to the underlying CDS client,
// e.g. cds.WithPollInterval for faster push polling.
func WithCDSOptions(opts ...cds.Option) Option {
	return func(o *options) {
		o.cdsOpts = append(o.cdsOpts, opts...)
	}
}

// WithAppLocales declares the locales the application supports beyond the
// source locale. Only these are fetched.
func WithAppLocales(locales ...string) Option {
	return func(o *options) {
		o.appLocales = append(o.appLocales, locales...)
	}
}

// WithCurrentLocaleResolver plugs in the application's notion of the
// active locale. Defaults to a resolver pinned to the source locale.
func WithCurrentLocaleResolver(resolver translations.CurrentLocaleResolver) Option {
	return func(o *options) {
		o.resolver = resolver
	}
}

// WithCache replaces the whole cache. Defaults to a plain in-memory cache
// with no persistence.
func WithCache(c cache.Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithCacheFile enables the standard disk-persisted cache composition
// around the given snapshot file. Extra options add snapshot providers or
// change the merge policy. Takes precedence over WithCache.
func WithCacheFile(path string, opts ...cache.StandardOption) Option {
	return func(o *options) {
		o.cacheFile = path
		o.cacheOpts = append(o.cacheOpts, opts...)
	}
}

// WithMissingPolicy sets the fallback applied to untranslated strings.
// Defaults to returning the source string.
func WithMissingPolicy(p policy.MissingPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.missing = p
		}
	}
}

// WithErrorPolicy sets the fallback applied when rendering fails.
// Defaults to re-rendering the source string.
func WithErrorPolicy(p policy.ErrorPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.errPolicy = p
		}
	}
}

// WithRenderer replaces the template renderer, e.g. to install a custom
// plural classifier or device resolver.
func WithRenderer(r *render.Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithLogger sets the logger for SDK diagnostics. Defaults to discarding
// everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
