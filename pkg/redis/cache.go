package redis

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the subset of Client operations a Cache relies on
type Store interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

var _ Store = (*Client)(nil)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// RefreshTTL indicates whether to refresh the TTL on access
	RefreshTTL bool
	// Serializer is a custom serializer function
	Serializer func(interface{}) ([]byte, error)
	// Deserializer is a custom deserializer function
	Deserializer func([]byte, interface{}) error
	// CacheName prefixes every key as CacheName::key
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          10 * time.Minute,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	if ttl >= 0 {
		co.TTL = ttl
	}
	return co
}

// WithRefreshTTL enables TTL refresh on access
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the cache name used as key prefix
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides JSON caching on top of a Store
type Cache struct {
	store Store
	opts  *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(store Store, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		store: store,
		opts:  opts,
	}
}

func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get loads key into dest. found is false on a cache miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (found bool, err error) {
	fullKey := c.buildCacheKey(key)
	data, found, err := c.store.GetBytes(ctx, fullKey)
	if err != nil || !found {
		return false, err
	}

	if c.opts.RefreshTTL {
		if err := c.store.Expire(ctx, fullKey, c.opts.TTL); err != nil {
			return false, err
		}
	}

	if err := c.opts.Deserializer(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializes value and stores it with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.buildCacheKey(key), data, c.opts.TTL)
}

// Delete evicts key
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, c.buildCacheKey(key))
}
