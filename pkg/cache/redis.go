package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/otastrings/otastrings/pkg/translations"
)

// defaultRedisTimeout bounds provider loads and mirror writes so a slow
// Redis never stalls cache construction or an update path.
const defaultRedisTimeout = 5 * time.Second

// RedisProvider loads a TranslationSet snapshot from a single Redis key
// holding the JSON document written by RedisOutput. Server fleets point
// every instance at the same key so one fetch serves all of them. A missing
// key yields an empty set.
type RedisProvider struct {
	client redis.UniversalClient
	key    string
}

// NewRedisProvider creates a provider reading the snapshot stored under key.
func NewRedisProvider(client redis.UniversalClient, key string) *RedisProvider {
	return &RedisProvider{client: client, key: key}
}

// Load implements Provider.
func (p *RedisProvider) Load() (translations.TranslationSet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisTimeout)
	defer cancel()

	data, err := p.client.Get(ctx, p.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return translations.TranslationSet{}, nil
		}
		return nil, fmt.Errorf("reading snapshot key %q: %w", p.key, err)
	}

	var set translations.TranslationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, fmt.Errorf("parsing key %q: %w", p.key, err))
	}

	return set, nil
}

// RedisOutput is a cache decorator mirroring every update into a Redis key,
// the shared-fleet counterpart of FileOutput. The update is forwarded to
// the inner cache synchronously; the Redis write happens afterwards on the
// caller's goroutine with a bounded timeout. Write failures are logged, not
// raised.
type RedisOutput struct {
	inner  Cache
	client redis.UniversalClient
	key    string
	logger *slog.Logger
}

// NewRedisOutput wraps inner and mirrors every update to key.
func NewRedisOutput(inner Cache, client redis.UniversalClient, key string, logger *slog.Logger) *RedisOutput {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RedisOutput{inner: inner, client: client, key: key, logger: logger}
}

// Get implements Cache.
func (r *RedisOutput) Get() translations.TranslationSet {
	return r.inner.Get()
}

// GetTemplate implements Cache.
func (r *RedisOutput) GetTemplate(key, locale string) (string, bool) {
	return r.inner.GetTemplate(key, locale)
}

// Update implements Cache. The mirrored snapshot is the inner state
// overlaid with the incoming set, matching FileOutput's persistence
// semantics.
func (r *RedisOutput) Update(incoming translations.TranslationSet) {
	r.inner.Update(incoming)

	snapshot := r.inner.Get()
	snapshot.Overlay(incoming)

	data, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Error("failed to serialize translation snapshot", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("failed to mirror translation snapshot to redis",
			slog.String("key", r.key), slog.Any("error", err))
	}
}

var (
	_ Provider = (*RedisProvider)(nil)
	_ Cache    = (*RedisOutput)(nil)
)
