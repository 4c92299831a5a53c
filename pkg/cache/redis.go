package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/logging"
)

// Redis is a Cache backed by a Redis server, for deployments where several
// sync processes should share the query cache and bookkeeping keys.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the Redis server at url (redis://host:port/db) and
// verifies it responds before returning. Callers that prefer to degrade to an
// in-process cache should handle the error rather than abort.
func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapConfig("redis_url", err)
	}
	opts.DialTimeout = constants.RedisDialTimeout

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), constants.RedisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapConfig("redis_url", err)
	}

	logging.Debug().Str("addr", opts.Addr).Msg("Connected to redis cache")
	return &Redis{client: client}, nil
}

// Get returns the value stored under key. Transport failures are reported as
// misses so a flaky cache server degrades to refetching, not to a failed sync.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Ctx(ctx).Debug().Str("key", key).Err(err).Msg("Redis get failed")
		}
		return nil, false
	}
	return data, true
}

// Set stores value under key with the given ttl. A non-positive ttl stores
// the entry without expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.WrapPersistence("cache_set", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.WrapPersistence("cache_delete", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
