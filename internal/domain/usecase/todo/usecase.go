package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// UseCase holds the todo item business rules. Not-found conditions are reported as ErrTodoItemNotFound,
// rejected input as *ValidationError.
//
// UpdateTodoItem and ToggleTodoItemCompletion read, modify and save in separate storage calls, so concurrent
// writers to the same id race and the last save wins.
type UseCase interface {
	CreateTodoItem(ctx context.Context, request model.TodoItemRequest) (*entity.TodoItem, error)
	GetAllTodoItems(ctx context.Context) ([]entity.TodoItem, error)
	// GetTodoItemByID returns nil without error when the id is absent
	GetTodoItemByID(ctx context.Context, id int64) (*entity.TodoItem, error)
	UpdateTodoItem(ctx context.Context, id int64, request model.TodoItemRequest) (*entity.TodoItem, error)
	DeleteTodoItem(ctx context.Context, id int64) error
	ToggleTodoItemCompletion(ctx context.Context, id int64) (*entity.TodoItem, error)
	SummarizeTodoItems(ctx context.Context) (*model.TodoSummary, error)
}
