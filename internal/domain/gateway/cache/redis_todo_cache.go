package cache

import (
	"context"
	"strconv"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

const TodoCacheName = "todos"

// RedisTodoCache stores items as JSON under todos::<id>. Reads extend the TTL of the item.
type RedisTodoCache struct {
	cache *redis.Cache
}

var _ TodoCache = (*RedisTodoCache)(nil)

func NewRedisTodoCache(store redis.Store, ttl time.Duration) *RedisTodoCache {
	opts := redis.NewCacheOptions().
		WithCacheName(TodoCacheName).
		WithTTL(ttl).
		WithRefreshTTL(true)
	return &RedisTodoCache{cache: redis.NewCache(store, opts)}
}

func (c *RedisTodoCache) Get(ctx context.Context, id int64) (*entity.TodoItem, error) {
	var item entity.TodoItem
	found, err := c.cache.Get(ctx, key(id), &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func (c *RedisTodoCache) Put(ctx context.Context, item entity.TodoItem) error {
	return c.cache.Set(ctx, key(item.ID), item)
}

func (c *RedisTodoCache) Evict(ctx context.Context, id int64) error {
	return c.cache.Delete(ctx, key(id))
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.client.HealthCheck(ctx); err != nil {
		return model.ComponentDown(err)
	}

	health := model.ComponentUp()
	stats := gateway.client.PoolStats()
	health.Details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	health.Details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return health
}
