package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
)

type memoryStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	expired []string
}

func (s *memoryStore) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.values[key]
	return value, found, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value.([]byte)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func (s *memoryStore) Expire(_ context.Context, key string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired = append(s.expired, key)
	return nil
}

func TestRedisTodoCache(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{values: make(map[string][]byte)}
	todoCache := NewRedisTodoCache(store, time.Minute)

	miss, err := todoCache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, miss)

	item := entity.TodoItem{ID: 7, Description: "buy milk", Completed: true}
	require.NoError(t, todoCache.Put(ctx, item))
	assert.JSONEq(t, `{"id":7,"description":"buy milk","completed":true}`, string(store.values["todos::7"]))

	hit, err := todoCache.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, item, *hit)
	assert.Equal(t, []string{"todos::7"}, store.expired)

	require.NoError(t, todoCache.Evict(ctx, 7))
	miss, err = todoCache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
