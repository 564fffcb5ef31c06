package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// TodoGateway persists todo items. FindByID returns nil without error when the id is absent.
// DeleteByID is not guaranteed to be safe for absent ids; callers check ExistsByID first.
type TodoGateway interface {
	Save(ctx context.Context, item entity.TodoItem) (*entity.TodoItem, error)
	FindByID(ctx context.Context, id int64) (*entity.TodoItem, error)
	FindAll(ctx context.Context) ([]entity.TodoItem, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
