package redis

import (
	"context"
	"errors"
	"sync"
	"time"
)

// memoryStore is an in-process Store and Locker used by the package tests
type memoryStore struct {
	mu        sync.Mutex
	values    map[string][]byte
	ttls      map[string]time.Duration
	refreshes int
	failGet   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (s *memoryStore) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, false, s.failGet
	}
	value, found := s.values[key]
	return value, found, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		s.values[key] = v
	case string:
		s.values[key] = []byte(v)
	default:
		return errors.New("unsupported value")
	}
	s.ttls[key] = expiration
	return nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
		delete(s.ttls, key)
	}
	return nil
}

func (s *memoryStore) Expire(_ context.Context, key string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ttls[key] = expiration
	return nil
}

func (s *memoryStore) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[key]; exists {
		return false, nil
	}
	s.values[key] = []byte(value.(string))
	s.ttls[key] = expiration
	return true, nil
}

// Eval understands the two lock scripts: compare the owner token, then delete or expire
func (s *memoryStore) Eval(_ context.Context, script string, keys []string, args ...interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, exists := s.values[keys[0]]
	if !exists || string(current) != args[0].(string) {
		return 0, nil
	}
	switch script {
	case unlockScript:
		delete(s.values, keys[0])
	case refreshScript:
		s.ttls[keys[0]] = time.Duration(args[1].(int64)) * time.Millisecond
		s.refreshes++
	}
	return 1, nil
}

// expire drops a key as if its TTL had elapsed
func (s *memoryStore) expire(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	delete(s.ttls, key)
}

func (s *memoryStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.values[key]
	return exists
}

func (s *memoryStore) refreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshes
}
