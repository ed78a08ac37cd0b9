// Package cache is a read-through redis cache with namespaced keys and
// per-view TTLs. It is strictly best-effort: every failure is logged
// and swallowed, and a nil *Cache is a valid no-op instance, so the
// service layer never depends on redis being up.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Key prefix, kept stable so operators can inspect keys by hand.
const prefix = "zomato-cache"

// Namespaces group keys by the entity views they hold.
const (
	NSRestaurants = "restaurants"
	NSMenuItems   = "menu_items"
	NSCustomers   = "customers"
	NSOrders      = "orders"
	NSReviews     = "reviews"
	NSAnalytics   = "analytics"
)

type Cache struct {
	rdb *redis.Client
	log zerolog.Logger
}

// New connects to redis at addr. An empty addr disables caching and
// returns nil, which every method accepts.
func New(addr, password string, db int, log zerolog.Logger) *Cache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return &Cache{rdb: rdb, log: log}
}

// Enabled reports whether a redis backend is configured.
func (c *Cache) Enabled() bool {
	return c != nil
}

func (c *Cache) key(ns, key string) string {
	return prefix + ":" + ns + ":" + key
}

// GetJSON loads a cached value into dest. Returns false on miss,
// disabled cache, or any redis/decode failure.
func (c *Cache) GetJSON(ctx context.Context, ns, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(ns, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", c.key(ns, key)).Msg("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", c.key(ns, key)).Msg("cache decode failed")
		return false
	}
	return true
}

// SetJSON stores v under ns:key for ttl. Failures are logged only.
func (c *Cache) SetJSON(ctx context.Context, ns, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key(ns, key)).Msg("cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, c.key(ns, key), raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", c.key(ns, key)).Msg("cache set failed")
	}
}

// Invalidate drops the given keys in ns, or the whole namespace when
// called with no keys (or the literal "*").
func (c *Cache) Invalidate(ctx context.Context, ns string, keys ...string) {
	if c == nil {
		return
	}
	if len(keys) == 0 || (len(keys) == 1 && keys[0] == "*") {
		c.clearPattern(ctx, c.key(ns, "*"))
		return
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(ns, k))
	}
	if err := c.rdb.Del(ctx, full...).Err(); err != nil {
		c.log.Warn().Err(err).Str("namespace", ns).Msg("cache invalidate failed")
	}
}

func (c *Cache) clearPattern(ctx context.Context, pattern string) int64 {
	var deleted int64
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("cache delete failed")
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Str("pattern", pattern).Msg("cache scan failed")
	}
	return deleted
}

// ClearNamespace removes every key in ns and reports how many went.
func (c *Cache) ClearNamespace(ctx context.Context, ns string) int64 {
	if c == nil {
		return 0
	}
	return c.clearPattern(ctx, c.key(ns, "*"))
}

// ClearAll removes every key this cache owns.
func (c *Cache) ClearAll(ctx context.Context) int64 {
	if c == nil {
		return 0
	}
	return c.clearPattern(ctx, prefix+":*")
}

type Stats struct {
	Enabled     bool             `json:"enabled"`
	TotalKeys   int64            `json:"totalKeys"`
	ByNamespace map[string]int64 `json:"byNamespace"`
}

// Stats counts cached keys per namespace.
func (c *Cache) Stats(ctx context.Context) Stats {
	s := Stats{ByNamespace: map[string]int64{}}
	if c == nil {
		return s
	}
	s.Enabled = true
	for _, ns := range []string{NSRestaurants, NSMenuItems, NSCustomers, NSOrders, NSReviews, NSAnalytics} {
		var n int64
		iter := c.rdb.Scan(ctx, 0, c.key(ns, "*"), 100).Iterator()
		for iter.Next(ctx) {
			n++
		}
		if err := iter.Err(); err != nil {
			c.log.Warn().Err(err).Str("namespace", ns).Msg("cache stats scan failed")
		}
		s.ByNamespace[ns] = n
		s.TotalKeys += n
	}
	return s
}

// Ping verifies connectivity, for the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
