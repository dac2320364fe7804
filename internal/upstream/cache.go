package upstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores aggregator responses in Redis for a short TTL so repeated
// catalog searches do not hammer the upstream. A nil Cache or unreachable
// Redis degrades to pass-through.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache builds a response cache. client may be nil.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

// Get loads a cached response into out and reports whether it was found.
func (c *Cache) Get(ctx context.Context, target string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, cacheKey(target)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Set stores a response. Failures are ignored: caching is best effort.
func (c *Cache) Set(ctx context.Context, target string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(target), raw, c.ttl)
}
