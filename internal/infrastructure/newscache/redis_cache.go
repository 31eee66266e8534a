package newscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"moneystocks/services/chat-api/internal/domain/news"
)

// Cache stores news digests in Redis.
type Cache struct {
	client *redis.Client
}

// NewCache builds a Redis-backed cache from a redis:// URL and verifies
// connectivity with a ping.
func NewCache(ctx context.Context, url string) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.DialTimeout = 5 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

// Get returns the cached digest, reporting a miss as (nil, false, nil).
func (c *Cache) Get(ctx context.Context, key string) (*news.Digest, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var digest news.Digest
	if err := json.Unmarshal(raw, &digest); err != nil {
		return nil, false, err
	}
	return &digest, true, nil
}

// Set stores the digest with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, digest *news.Digest, ttl time.Duration) error {
	raw, err := json.Marshal(digest)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ensure interface compliance.
var _ news.Cache = (*Cache)(nil)
