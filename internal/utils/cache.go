package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil detection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache stores JSON-encoded values of type T under a common key prefix
type Cache[T any] struct {
	rdb    *redis.Client
	prefix string
}

// NewCache returns a Cache whose keys are prefix+id
func NewCache[T any](rdb *redis.Client, prefix string) *Cache[T] {
	return &Cache[T]{rdb: rdb, prefix: prefix}
}

// Get returns the value stored for id and whether it was present
func (c *Cache[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var v T
	raw, err := c.rdb.Get(ctx, c.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil // Missing or expired
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Set stores v for id, expiring after ttl
func (c *Cache[T]) Set(ctx context.Context, id string, v T, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.prefix+id, raw, ttl).Err()
}

// Touch moves the expiry of id to ttl from now and reports whether id was present
func (c *Cache[T]) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return c.rdb.Expire(ctx, c.prefix+id, ttl).Result()
}

// Delete removes id. Deleting a missing id is not an error.
func (c *Cache[T]) Delete(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, c.prefix+id).Err()
}
