package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

func newUseCase() (UseCase, *mockTodoGateway, *mockEventGateway) {
	gateway := new(mockTodoGateway)
	events := new(mockEventGateway)
	return NewTodoUseCase(gateway, events), gateway, events
}

func TestCreateTodoItem(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	saved := &entity.TodoItem{ID: 1, Description: "buy milk"}
	gateway.On("Save", ctx, entity.TodoItem{Description: "buy milk"}).Return(saved, nil).Once()
	events.On("Publish", ctx, eventOf(model.TodoCreated, 1)).Return(nil).Once()

	created, err := uc.CreateTodoItem(ctx, model.TodoItemRequest{Description: ptr("buy milk")})
	require.NoError(t, err)
	assert.Equal(t, saved, created)

	gateway.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateTodoItem_KeepsCompletedFlag(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("Save", ctx, entity.TodoItem{Description: "done already", Completed: true}).
		Return(&entity.TodoItem{ID: 2, Description: "done already", Completed: true}, nil).Once()
	events.On("Publish", ctx, mock.Anything).Return(nil)

	created, err := uc.CreateTodoItem(ctx, model.TodoItemRequest{Description: ptr("done already"), Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, created.Completed)
}

func TestCreateTodoItem_RejectsBlankDescription(t *testing.T) {
	uc, gateway, events := newUseCase()

	for _, request := range []model.TodoItemRequest{
		{},
		{Description: ptr("")},
		{Description: ptr("   ")},
		{Description: ptr("\t\n")},
	} {
		_, err := uc.CreateTodoItem(context.Background(), request)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "description", validationErr.Field)
	}

	gateway.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateTodoItem_StorageFailure(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("Save", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := uc.CreateTodoItem(ctx, model.TodoItemRequest{Description: ptr("buy milk")})
	require.EqualError(t, err, "connection reset")
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateTodoItem_PublishFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("Save", ctx, mock.Anything).Return(&entity.TodoItem{ID: 5, Description: "buy milk"}, nil)
	events.On("Publish", ctx, mock.Anything).Return(errors.New("queue unavailable"))

	created, err := uc.CreateTodoItem(ctx, model.TodoItemRequest{Description: ptr("buy milk")})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestGetTodoItems(t *testing.T) {
	ctx := context.Background()
	uc, gateway, _ := newUseCase()

	items := []entity.TodoItem{{ID: 1, Description: "a"}, {ID: 2, Description: "b", Completed: true}}
	gateway.On("FindAll", ctx).Return(items, nil)
	gateway.On("FindByID", ctx, int64(2)).Return(&items[1], nil)
	gateway.On("FindByID", ctx, int64(999999)).Return(nil, nil)

	all, err := uc.GetAllTodoItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, all)

	found, err := uc.GetTodoItemByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &items[1], found)

	missing, err := uc.GetTodoItemByID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateTodoItem(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("FindByID", ctx, int64(3)).Return(&entity.TodoItem{ID: 3, Description: "old"}, nil)
	gateway.On("Save", ctx, entity.TodoItem{ID: 3, Description: "new", Completed: true}).
		Return(&entity.TodoItem{ID: 3, Description: "new", Completed: true}, nil).Once()
	events.On("Publish", ctx, eventOf(model.TodoUpdated, 3)).Return(nil).Once()

	updated, err := uc.UpdateTodoItem(ctx, 3, model.TodoItemRequest{Description: ptr("new"), Completed: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, entity.TodoItem{ID: 3, Description: "new", Completed: true}, *updated)

	gateway.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestUpdateTodoItem_AcceptsEmptyDescription(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("FindByID", ctx, int64(3)).Return(&entity.TodoItem{ID: 3, Description: "old"}, nil)
	gateway.On("Save", ctx, entity.TodoItem{ID: 3, Description: ""}).
		Return(&entity.TodoItem{ID: 3, Description: ""}, nil).Once()
	events.On("Publish", ctx, mock.Anything).Return(nil)

	updated, err := uc.UpdateTodoItem(ctx, 3, model.TodoItemRequest{Description: ptr(""), Completed: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
}

func TestUpdateTodoItem_MissingFields(t *testing.T) {
	ctx := context.Background()
	uc, gateway, _ := newUseCase()

	gateway.On("FindByID", ctx, int64(3)).Return(&entity.TodoItem{ID: 3, Description: "old"}, nil)

	var validationErr *ValidationError
	_, err := uc.UpdateTodoItem(ctx, 3, model.TodoItemRequest{Completed: ptr(true)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description", validationErr.Field)

	_, err = uc.UpdateTodoItem(ctx, 3, model.TodoItemRequest{Description: ptr("x")})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "completed", validationErr.Field)

	gateway.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("FindByID", ctx, int64(999999)).Return(nil, nil)
	gateway.On("ExistsByID", ctx, int64(999999)).Return(false, nil)

	_, err := uc.UpdateTodoItem(ctx, 999999, model.TodoItemRequest{Description: ptr("x"), Completed: ptr(true)})
	require.ErrorIs(t, err, ErrTodoItemNotFound)

	_, err = uc.ToggleTodoItemCompletion(ctx, 999999)
	require.ErrorIs(t, err, ErrTodoItemNotFound)

	err = uc.DeleteTodoItem(ctx, 999999)
	require.ErrorIs(t, err, ErrTodoItemNotFound)

	gateway.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeleteTodoItem(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("ExistsByID", ctx, int64(4)).Return(true, nil)
	gateway.On("DeleteByID", ctx, int64(4)).Return(nil).Once()
	events.On("Publish", ctx, mock.MatchedBy(func(event model.TodoEvent) bool {
		return event.Type == model.TodoDeleted && event.TodoID == 4 && event.Item == nil
	})).Return(nil).Once()

	require.NoError(t, uc.DeleteTodoItem(ctx, 4))

	gateway.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestToggleTodoItemCompletion(t *testing.T) {
	ctx := context.Background()
	uc, gateway, events := newUseCase()

	gateway.On("FindByID", ctx, int64(6)).Return(&entity.TodoItem{ID: 6, Description: "walk"}, nil).Once()
	gateway.On("Save", ctx, entity.TodoItem{ID: 6, Description: "walk", Completed: true}).
		Return(&entity.TodoItem{ID: 6, Description: "walk", Completed: true}, nil).Once()
	gateway.On("FindByID", ctx, int64(6)).Return(&entity.TodoItem{ID: 6, Description: "walk", Completed: true}, nil).Once()
	gateway.On("Save", ctx, entity.TodoItem{ID: 6, Description: "walk"}).
		Return(&entity.TodoItem{ID: 6, Description: "walk"}, nil).Once()
	events.On("Publish", ctx, eventOf(model.TodoToggled, 6)).Return(nil).Twice()

	toggled, err := uc.ToggleTodoItemCompletion(ctx, 6)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = uc.ToggleTodoItemCompletion(ctx, 6)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Equal(t, "walk", toggled.Description)

	gateway.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSummarizeTodoItems(t *testing.T) {
	ctx := context.Background()
	uc, gateway, _ := newUseCase()

	gateway.On("FindAll", ctx).Return([]entity.TodoItem{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: true},
	}, nil)

	summary, err := uc.SummarizeTodoItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TodoSummary{Total: 3, Completed: 2, Pending: 1}, *summary)
}

func TestNewTodoUseCase_NilEventsIsNoop(t *testing.T) {
	ctx := context.Background()
	gateway := new(mockTodoGateway)
	gateway.On("Save", ctx, mock.Anything).Return(&entity.TodoItem{ID: 1, Description: "x"}, nil)

	_, err := NewTodoUseCase(gateway, nil).CreateTodoItem(ctx, model.TodoItemRequest{Description: ptr("x")})
	require.NoError(t, err)
}
