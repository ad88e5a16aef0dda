package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a redis-backed cache for asset listings. Lookups are best
// effort: a cache problem degrades to the index, it never fails a
// browse operation.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to redis. A zero ttl means entries never expire.
func NewCache(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect asset cache: %w", err)
	}
	return &Cache{client: c, ttl: ttl}, nil
}

// GetAssets returns the cached listing for key, if present and decodable.
func (c *Cache) GetAssets(key string) ([]Info, bool) {
	val, err := c.client.Get(context.Background(), key).Result()
	if err != nil {
		return nil, false
	}
	var assets []Info
	if err := json.Unmarshal([]byte(val), &assets); err != nil {
		// Stale or corrupt entry; drop it.
		c.Invalidate(key)
		return nil, false
	}
	return assets, true
}

// PutAssets stores a listing under key.
func (c *Cache) PutAssets(key string, assets []Info) {
	data, err := json.Marshal(assets)
	if err != nil {
		return
	}
	c.client.Set(context.Background(), key, data, c.ttl)
}

// Invalidate removes cached listings.
func (c *Cache) Invalidate(keys ...string) {
	if len(keys) == 0 {
		return
	}
	c.client.Del(context.Background(), keys...)
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
