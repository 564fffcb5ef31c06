package redis

import (
	"context"
	"fmt"

	"todo-api/internal/domain/gateway/cache"
	pkgredis "todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// ConfigFromProperties reads app.cache.*; unset values keep the client defaults
func ConfigFromProperties() *pkgredis.Config {
	config := pkgredis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.cache.host", "localhost")).
		WithPassword(resource.GetString("app.cache.password")).
		WithDatabase(resource.GetInt("app.cache.database"))

	if port := resource.GetInt("app.cache.port"); port > 0 {
		config.WithPort(port)
	}
	if ttl := resource.GetDuration("app.cache.ttl.default"); ttl > 0 {
		config.DefaultCacheTTL = ttl
	}
	if ttl := resource.GetDuration("app.cache.ttl." + cache.TodoCacheName); ttl > 0 {
		config.WithCacheTTL(cache.TodoCacheName, ttl)
	}
	if timeout := resource.GetDuration("app.cache.dial-timeout"); timeout > 0 {
		config.DialTimeout = timeout
	}
	if poolSize := resource.GetInt("app.cache.max-active"); poolSize > 0 {
		config.MaxActive = poolSize
	}
	return config
}

// NewClient connects to the configured Redis and verifies it answers a ping
func NewClient(ctx context.Context, config *pkgredis.Config) (*pkgredis.Client, error) {
	client, err := pkgredis.NewClient(config)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}
