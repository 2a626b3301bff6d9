package redis

import (
	"encoding/json"
	"time"
)

// Read-cache TTL. The store is the source of truth; cached results are
// short-lived and dropped wholesale on any write, never patched.
const cacheTTL = 60 * time.Second

const (
	ReviewsPrefix = "reviews:"
	SettingsKey   = "settings"
)

// CacheGet loads a cached JSON value into dest. Returns false on miss,
// decode failure, or when the cache is disabled.
func CacheGet(key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSet stores a JSON-encoded value with the default TTL. Failures are
// ignored: the cache is an optimization, not a source of truth.
func CacheSet(key string, value interface{}) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	Client.Set(Ctx, key, raw, cacheTTL)
}

// Invalidate removes the given keys.
func Invalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}

// InvalidatePrefix removes every key under a prefix, so a mutation drops
// all cached views of the affected collection at once.
func InvalidatePrefix(prefix string) {
	if Client == nil {
		return
	}
	iter := Client.Scan(Ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
