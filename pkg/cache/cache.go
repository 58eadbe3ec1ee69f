package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss indicates the requested key was not found in cache.
var ErrCacheMiss = errors.New("cache miss")

// Client wraps the Redis connection used for price projections and
// latest-updated-prices hashes.
type Client struct {
	rdb *redis.Client
}

// New creates a cache client on top of an existing Redis connection.
func New(rdb *redis.Client) *Client {
	if rdb == nil {
		panic("redis client cannot be nil")
	}
	return &Client{rdb: rdb}
}

// Ping verifies the Redis connection.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// FlushAll clears the entire cache. Called once at startup before the
// warm-up repopulates it.
func (c *Client) FlushAll(ctx context.Context) error {
	if err := c.rdb.FlushAll(ctx).Err(); err != nil {
		CacheErrors.WithLabelValues("flush").Inc()
		return fmt.Errorf("redis flushall: %w", err)
	}
	return nil
}

// Get retrieves a string value by key.
// Returns ErrCacheMiss if the key doesn't exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			CacheMisses.Inc()
			return "", ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return "", fmt.Errorf("redis get: %w", err)
	}

	CacheHits.WithLabelValues("redis").Inc()
	return val, nil
}

// Set stores a string value under key with the given TTL.
// A zero or negative TTL stores the value without expiration.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// HSet sets a single hash field. Overwrites any prior value for the field.
func (c *Client) HSet(ctx context.Context, key, field, value string) error {
	if err := c.rdb.HSet(ctx, key, field, value).Err(); err != nil {
		CacheErrors.WithLabelValues("hset").Inc()
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

// HGetAll returns all fields and values of a hash. A missing key yields an
// empty map, mirroring Redis semantics.
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		CacheErrors.WithLabelValues("hgetall").Inc()
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	return fields, nil
}

// Keys enumerates keys matching the glob pattern. Enumeration order is
// unspecified.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		CacheErrors.WithLabelValues("keys").Inc()
		return nil, fmt.Errorf("redis keys: %w", err)
	}
	return keys, nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
