package cache

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoCache keeps todo items by id. Get returns nil without error on a miss.
type TodoCache interface {
	Get(ctx context.Context, id int64) (*entity.TodoItem, error)
	Put(ctx context.Context, item entity.TodoItem) error
	Evict(ctx context.Context, id int64) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
