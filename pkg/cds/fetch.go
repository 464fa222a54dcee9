package cds

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/otastrings/otastrings/pkg/translations"
)

// FetchOption narrows the content a fetch requests.
type FetchOption func(url.Values)

// WithTags limits the fetch to strings carrying all of the given tags.
func WithTags(tags ...string) FetchOption {
	return func(q url.Values) {
		if len(tags) > 0 {
			q.Set("filter[tags]", strings.Join(tags, ","))
		}
	}
}

// WithStatus limits the fetch to strings in the given translation status,
// e.g. "translated" or "reviewed".
func WithStatus(status string) FetchOption {
	return func(q url.Values) {
		if status != "" {
			q.Set("filter[status]", status)
		}
	}
}

// Fetch pulls translations for every given locale concurrently and merges
// them into one TranslationSet. Locales that fail do not abort the rest:
// the returned set holds everything that arrived, and the error slice
// carries one LocaleError per locale that did not.
func (c *Client) Fetch(ctx context.Context, locales []string, opts ...FetchOption) (translations.TranslationSet, []error) {
	if len(locales) == 0 {
		return translations.TranslationSet{}, []error{ErrNoLocales}
	}

	query := url.Values{}
	for _, opt := range opts {
		opt(query)
	}

	var (
		mu   sync.Mutex
		set  = translations.TranslationSet{}
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, locale := range locales {
		g.Go(func() error {
			table, err := c.fetchLocale(ctx, locale, query)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, &LocaleError{Locale: locale, Err: err})
				return nil
			}
			set[locale] = table
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	return set, errs
}

// fetchLocale requests one locale's content, re-requesting while the
// service reports it is still being prepared. The attempt budget keeps a
// perpetually not-ready locale from spinning forever.
func (c *Client) fetchLocale(ctx context.Context, locale string, query url.Values) (translations.LocaleStringTable, error) {
	path := "/content/" + url.PathEscape(locale)

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, false)
		if err != nil {
			return nil, errors.Join(ErrRequestFailed, err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Join(ErrRequestFailed, err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := responseBody(resp)
			if err != nil {
				return nil, errors.Join(ErrRequestFailed, err)
			}
			if len(body) == 0 {
				return nil, ErrEmptyResponse
			}

			var payload pullResponse
			if err := json.Unmarshal(body, &payload); err != nil {
				return nil, errors.Join(ErrRequestFailed, err)
			}
			if payload.Data == nil {
				return nil, ErrInvalidResponse
			}
			return payload.Data, nil

		case http.StatusAccepted:
			// Content is still being generated server side.
			_, _ = responseBody(resp)
			c.log.DebugContext(ctx, "content not ready, retrying",
				slog.String("locale", locale),
				slog.Int("attempt", attempt+1))
			continue

		default:
			_, _ = responseBody(resp)
			return nil, &ServerError{StatusCode: resp.StatusCode}
		}
	}

	return nil, ErrMaxRetriesReached
}
