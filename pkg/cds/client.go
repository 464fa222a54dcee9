package cds

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultMaxRetries   = 20
	defaultPollInterval = time.Second

	apiVersion    = "v2"
	sdkIdentifier = "otastrings-go"
)

// Config holds the connection settings for a CDS instance.
type Config struct {
	// Host is the base URL of the service, e.g. "https://cds.example.com".
	Host string

	// Token identifies the project for read operations.
	Token string

	// Secret authorizes write operations (push, invalidate). Optional for
	// read-only clients.
	Secret string
}

// Client talks to a single CDS instance. It is safe for concurrent use.
type Client struct {
	host         *url.URL
	token        string
	secret       string
	httpClient   *http.Client
	log          *slog.Logger
	maxRetries   int
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for retry and polling diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxRetries overrides the attempt budget for not-ready resources and
// unresolved push jobs.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithPollInterval overrides the delay between push job status requests.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// New validates the configuration and returns a ready Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	host, err := url.Parse(strings.TrimSuffix(cfg.Host, "/"))
	if err != nil || host.Scheme == "" || host.Host == "" {
		if err == nil {
			err = errors.New("missing scheme or host")
		}
		return nil, errors.Join(ErrInvalidHost, err)
	}

	c := &Client{
		host:         host,
		token:        cfg.Token,
		secret:       cfg.Secret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          slog.New(slog.DiscardHandler),
		maxRetries:   defaultMaxRetries,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newRequest builds a protocol request. Write operations authenticate with
// "token:secret", read operations with the token alone. The query must be
// passed separately: embedding it in path would get the '?' percent-escaped
// away by URL serialization.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte, withSecret bool) (*http.Request, error) {
	u := *c.host
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	bearer := c.token
	if withSecret && c.secret != "" {
		bearer += ":" + c.secret
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept-Version", apiVersion)
	req.Header.Set("X-Native-Sdk", sdkIdentifier)
	return req, nil
}

// responseBody drains and closes the response body, inflating it when the
// server honored the gzip encoding request. Setting Accept-Encoding by hand
// disables the transport's transparent decompression, so it happens here.
func responseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close() //nolint:errcheck

	var reader io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close() //nolint:errcheck
		reader = gz
	}
	return io.ReadAll(reader)
}
