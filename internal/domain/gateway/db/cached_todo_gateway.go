package db

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// CachedTodoGateway decorates a TodoGateway with a read-through item cache.
// Cache failures are logged and the call falls back to the wrapped gateway.
type CachedTodoGateway struct {
	next  TodoGateway
	cache cache.TodoCache
}

var _ TodoGateway = (*CachedTodoGateway)(nil)

func NewCachedTodoGateway(next TodoGateway, todoCache cache.TodoCache) *CachedTodoGateway {
	return &CachedTodoGateway{next: next, cache: todoCache}
}

func (gateway *CachedTodoGateway) Save(ctx context.Context, item entity.TodoItem) (*entity.TodoItem, error) {
	saved, err := gateway.next.Save(ctx, item)
	if err != nil {
		gateway.evict(ctx, item.ID)
		return nil, err
	}

	if err := gateway.cache.Put(ctx, *saved); err != nil {
		log.Warn(msg.GetMessage("todo.cache.put-failed", saved.ID), zap.Error(err))
		gateway.evict(ctx, saved.ID)
	}
	return saved, nil
}

func (gateway *CachedTodoGateway) FindByID(ctx context.Context, id int64) (*entity.TodoItem, error) {
	cached, err := gateway.cache.Get(ctx, id)
	if err != nil {
		log.Warn(msg.GetMessage("todo.cache.get-failed", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	item, err := gateway.next.FindByID(ctx, id)
	if err != nil || item == nil {
		return item, err
	}

	if err := gateway.cache.Put(ctx, *item); err != nil {
		log.Warn(msg.GetMessage("todo.cache.put-failed", id), zap.Error(err))
	}
	return item, nil
}

func (gateway *CachedTodoGateway) FindAll(ctx context.Context) ([]entity.TodoItem, error) {
	return gateway.next.FindAll(ctx)
}

func (gateway *CachedTodoGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	cached, err := gateway.cache.Get(ctx, id)
	if err != nil {
		log.Warn(msg.GetMessage("todo.cache.get-failed", id), zap.Error(err))
	}
	if cached != nil {
		return true, nil
	}
	return gateway.next.ExistsByID(ctx, id)
}

func (gateway *CachedTodoGateway) DeleteByID(ctx context.Context, id int64) error {
	err := gateway.next.DeleteByID(ctx, id)
	gateway.evict(ctx, id)
	return err
}

func (gateway *CachedTodoGateway) evict(ctx context.Context, id int64) {
	if id == 0 {
		return
	}
	if err := gateway.cache.Evict(ctx, id); err != nil {
		log.Warn(msg.GetMessage("todo.cache.evict-failed", id), zap.Error(err))
	}
}
