// Package redisconn dials the Redis instance backing the shared
// translation snapshot used by cache.RedisProvider and cache.RedisOutput.
// It wraps go-redis URL parsing with a verified, bounded-retry connect so
// server fleets fail fast on misconfiguration instead of at first lookup.
package redisconn

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidURL is returned when the connection URL cannot be parsed.
	ErrInvalidURL = errors.New("redisconn: invalid connection URL")

	// ErrConnectionFailed is returned when the server does not answer a
	// ping within the retry budget.
	ErrConnectionFailed = errors.New("redisconn: connection failed")
)

type options struct {
	poolSize      int
	dialTimeout   time.Duration
	retryAttempts int
	retryInterval time.Duration
}

// Option configures Connect.
type Option func(*options)

// WithPoolSize caps the connection pool. Defaults to the go-redis default.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithDialTimeout bounds each dial attempt. Defaults to 5s.
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dialTimeout = d
		}
	}
}

// WithRetry sets how often and how patiently the initial ping is retried.
// Defaults to 3 attempts, 1s apart.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.retryAttempts = attempts
		}
		if interval > 0 {
			o.retryInterval = interval
		}
	}
}

// Connect parses the URL, dials the server, and verifies it with a ping
// before returning the client. The caller owns the client and must close
// it when done.
func Connect(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	o := options{
		dialTimeout:   5 * time.Second,
		retryAttempts: 3,
		retryInterval: time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	parsed.DialTimeout = o.dialTimeout
	if o.poolSize > 0 {
		parsed.PoolSize = o.poolSize
	}

	client := redis.NewClient(parsed)

	var lastErr error
	for attempt := 0; attempt < o.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, errors.Join(ErrConnectionFailed, ctx.Err())
			case <-time.After(o.retryInterval):
			}
		}
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrConnectionFailed, lastErr)
}
