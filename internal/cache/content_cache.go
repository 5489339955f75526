package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache stores fetched content text keyed by URL so repeat analyses
// of the same page skip the fetch round trip.
type ContentCache interface {
	Get(ctx context.Context, url string) (string, bool, error)
	Set(ctx context.Context, url, text string) error
}

type contentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewContentCache(client *redis.Client, ttl time.Duration) ContentCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &contentCache{client: client, ttl: ttl}
}

func contentKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "content:" + hex.EncodeToString(sum[:16])
}

func (c *contentCache) Get(ctx context.Context, url string) (string, bool, error) {
	text, err := c.client.Get(ctx, contentKey(url)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *contentCache) Set(ctx context.Context, url, text string) error {
	return c.client.Set(ctx, contentKey(url), text, c.ttl).Err()
}
