package todo

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type mockTodoGateway struct {
	mock.Mock
}

func (m *mockTodoGateway) Save(ctx context.Context, item entity.TodoItem) (*entity.TodoItem, error) {
	args := m.Called(ctx, item)
	saved, _ := args.Get(0).(*entity.TodoItem)
	return saved, args.Error(1)
}

func (m *mockTodoGateway) FindByID(ctx context.Context, id int64) (*entity.TodoItem, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*entity.TodoItem)
	return found, args.Error(1)
}

func (m *mockTodoGateway) FindAll(ctx context.Context) ([]entity.TodoItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.TodoItem)
	return items, args.Error(1)
}

func (m *mockTodoGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTodoGateway) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockEventGateway struct {
	mock.Mock
}

func (m *mockEventGateway) Publish(ctx context.Context, event model.TodoEvent) error {
	return m.Called(ctx, event).Error(0)
}

func eventOf(eventType model.TodoEventType, id int64) interface{} {
	return mock.MatchedBy(func(event model.TodoEvent) bool {
		return event.Type == eventType && event.TodoID == id
	})
}

func ptr[T any](value T) *T {
	return &value
}
