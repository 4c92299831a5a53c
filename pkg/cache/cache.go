// Package cache provides the short-lived key-value caches the sync engine
// depends on: a raw-query cache in front of the SPARQL clients and a separate
// sync-bookkeeping cache for last-successful-sync timestamps. Both speak the
// same small interface; callers construct the instances explicitly and pass
// them in, so there is no hidden process-wide cache state.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/logging"
)

// Cache is a key-value store with per-entry TTL. Get reports a miss for
// expired, absent, or unreadable entries; it never fails the caller.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GetJSON reads a cached JSON value into target. A decode failure counts as a
// miss so a poisoned entry degrades to a refetch instead of an error.
func GetJSON(ctx context.Context, c Cache, key string, target any) bool {
	data, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		logging.Ctx(ctx).Debug().Str("key", key).Err(err).Msg("Dropping undecodable cache entry")
		_ = c.Delete(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a JSON-encoded value under key.
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WrapParse("json", err)
	}
	return c.Set(ctx, key, data, ttl)
}
