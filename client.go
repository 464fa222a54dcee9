package otastrings

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/otastrings/otastrings/pkg/cache"
	"github.com/otastrings/otastrings/pkg/cds"
	"github.com/otastrings/otastrings/pkg/logger"
	"github.com/otastrings/otastrings/pkg/policy"
	"github.com/otastrings/otastrings/pkg/render"
	"github.com/otastrings/otastrings/pkg/translations"
)

// DefaultCDSHost is the public production Content Delivery Service.
const DefaultCDSHost = "https://cds.svc.transifex.net"

// Client is the SDK handle. It wires the locale configuration, the CDS
// client, the cache, and the render policies together. All methods are
// safe for concurrent use.
type Client struct {
	locales   *translations.LocaleConfig
	cds       *cds.Client
	cache     cache.Cache
	renderer  *render.Renderer
	missing   policy.MissingPolicy
	errPolicy policy.ErrorPolicy
	log       *slog.Logger

	fetches singleflight.Group
}

// TranslateParams carries the per-lookup settings of a translation.
type TranslateParams struct {
	// Key overrides the generated lookup key.
	Key string

	// Context disambiguates identical source strings; it feeds into key
	// generation exactly as it did at push time.
	Context string

	// Args are the positional arguments for placeholder substitution.
	Args []any
}

// New builds a Client for the given CDS token and source locale.
func New(token, sourceLocale string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	o := &options{
		host: DefaultCDSHost,
		log:  logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var localeOpts []translations.LocaleOption
	if o.resolver != nil {
		localeOpts = append(localeOpts, translations.WithCurrentLocale(o.resolver))
	}
	locales, err := translations.NewLocaleConfig(sourceLocale, o.appLocales, localeOpts...)
	if err != nil {
		return nil, err
	}

	cdsOpts := append([]cds.Option{cds.WithLogger(o.log)}, o.cdsOpts...)
	if o.httpClient != nil {
		cdsOpts = append(cdsOpts, cds.WithHTTPClient(o.httpClient))
	}
	cdsClient, err := cds.New(cds.Config{Host: o.host, Token: token, Secret: o.secret}, cdsOpts...)
	if err != nil {
		return nil, err
	}

	store := o.cache
	if o.cacheFile != "" {
		cacheOpts := append([]cache.StandardOption{cache.WithLogger(o.log)}, o.cacheOpts...)
		store = cache.NewStandard(o.cacheFile, cacheOpts...)
	}
	if store == nil {
		store = cache.NewMemory()
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = render.New()
	}

	missing := o.missing
	if missing == nil {
		missing = policy.SourceString()
	}
	errPolicy := o.errPolicy
	if errPolicy == nil {
		errPolicy = policy.RenderedSource(renderer.Render)
	}

	return &Client{
		locales:   locales,
		cds:       cdsClient,
		cache:     store,
		renderer:  renderer,
		missing:   missing,
		errPolicy: errPolicy,
		log:       o.log,
	}, nil
}

// Translate resolves and renders the translation of sourceString for the
// current locale. It never fails: missing translations fall through the
// missing-translation policy and render failures through the error
// policy, so the caller always gets displayable text.
func (c *Client) Translate(sourceString string, params TranslateParams) string {
	locale := c.locales.CurrentLocale()

	template, found := c.lookup(sourceString, params, locale)
	if !found {
		template = c.missing.Get(sourceString)
	}

	out, err := c.renderer.Render(template, locale, params.Args...)
	if err != nil {
		ctx := logger.ContextWithLocale(context.Background(), locale)
		c.log.WarnContext(ctx, "template render failed, applying error policy",
			slog.Any("error", err))
		return c.errPolicy.Get(sourceString, template, locale, params.Args...)
	}
	return out
}

// TranslatePlural is Translate with the count routed as the first
// positional argument, which is where plural selectors look for it.
func (c *Client) TranslatePlural(sourceString string, count int, params TranslateParams) string {
	args := make([]any, 0, len(params.Args)+1)
	args = append(args, count)
	args = append(args, params.Args...)
	params.Args = args
	return c.Translate(sourceString, params)
}

// lookup finds the template to render. The source locale renders the
// source string directly; other locales consult the cache by explicit key
// first, then by generated key. Cached entries with empty templates count
// as untranslated.
func (c *Client) lookup(sourceString string, params TranslateParams, locale string) (string, bool) {
	if c.locales.IsSource(locale) {
		return sourceString, true
	}

	if params.Key != "" {
		if template, ok := c.cache.GetTemplate(params.Key, locale); ok && template != "" {
			return template, true
		}
	}

	key := translations.GenerateKey(sourceString, params.Context)
	if template, ok := c.cache.GetTemplate(key, locale); ok && template != "" {
		return template, true
	}
	return "", false
}

type fetchConfig struct {
	tags   []string
	status string
}

// FetchOption narrows what FetchTranslations pulls.
type FetchOption func(*fetchConfig)

// WithFetchTags limits the fetch to strings carrying all the given tags.
func WithFetchTags(tags ...string) FetchOption {
	return func(c *fetchConfig) {
		c.tags = append(c.tags, tags...)
	}
}

// WithFetchStatus limits the fetch to strings in the given translation
// status.
func WithFetchStatus(status string) FetchOption {
	return func(c *fetchConfig) {
		c.status = status
	}
}

// FetchTranslations pulls translations for all configured locales and
// feeds them to the cache. Partial success is normal: the cache receives
// whatever arrived, and the returned slice carries one error per locale
// that failed. Concurrent calls with the same filters share one fetch.
func (c *Client) FetchTranslations(ctx context.Context, opts ...FetchOption) []error {
	var cfg fetchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	key := strings.Join(cfg.tags, ",") + "\x00" + cfg.status
	result, _, _ := c.fetches.Do(key, func() (any, error) {
		set, errs := c.cds.Fetch(ctx, c.locales.TranslatedLocales(),
			cds.WithTags(cfg.tags...), cds.WithStatus(cfg.status))
		if !set.IsEmpty() {
			c.cache.Update(set)
		}
		return errs, nil
	})

	errs, _ := result.([]error)
	return errs
}

// PushTranslations submits source strings to the service and waits for
// the resulting job to resolve. See cds.PushResult for the outcome shape.
func (c *Client) PushTranslations(ctx context.Context, strs []translations.SourceString, cfg cds.PushConfig) cds.PushResult {
	return c.cds.Push(ctx, strs, cfg)
}

// ForceCacheInvalidation asks the service to regenerate its cached
// content. It reports success as a bool; failures are logged.
func (c *Client) ForceCacheInvalidation(ctx context.Context) bool {
	return c.cds.Invalidate(ctx)
}

// CurrentLocale reports the locale lookups currently resolve against.
func (c *Client) CurrentLocale() string {
	return c.locales.CurrentLocale()
}

// Close flushes and releases cache resources. Required when the cache
// persists to disk; harmless otherwise.
func (c *Client) Close() error {
	if closer, ok := c.cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
