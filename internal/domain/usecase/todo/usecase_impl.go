package todo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway db.TodoGateway
	events  queue.TodoEventGateway
}

func NewTodoUseCase(gateway db.TodoGateway, events queue.TodoEventGateway) UseCase {
	if events == nil {
		events = queue.NoopTodoEventGateway{}
	}
	return &todoUseCase{
		gateway: gateway,
		events:  events,
	}
}

func (uc *todoUseCase) CreateTodoItem(ctx context.Context, request model.TodoItemRequest) (*entity.TodoItem, error) {
	if request.Description == nil || strings.TrimSpace(*request.Description) == "" {
		return nil, &ValidationError{Field: "description", Message: msg.GetMessage("todo.error.empty-description")}
	}

	item := entity.TodoItem{Description: *request.Description}
	if request.Completed != nil {
		item.Completed = *request.Completed
	}

	created, err := uc.gateway.Save(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoCreated, created.ID, created))
	return created, nil
}

func (uc *todoUseCase) GetAllTodoItems(ctx context.Context) ([]entity.TodoItem, error) {
	return uc.gateway.FindAll(ctx)
}

func (uc *todoUseCase) GetTodoItemByID(ctx context.Context, id int64) (*entity.TodoItem, error) {
	return uc.gateway.FindByID(ctx, id)
}

// UpdateTodoItem replaces description and completed. Unlike create, an empty description is accepted;
// only a missing field is rejected, since both columns are NOT NULL.
func (uc *todoUseCase) UpdateTodoItem(ctx context.Context, id int64, request model.TodoItemRequest) (*entity.TodoItem, error) {
	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(id)
	}

	if request.Description == nil {
		return nil, &ValidationError{Field: "description", Message: msg.GetMessage("todo.error.missing-field", "description")}
	}
	if request.Completed == nil {
		return nil, &ValidationError{Field: "completed", Message: msg.GetMessage("todo.error.missing-field", "completed")}
	}

	existing.Description = *request.Description
	existing.Completed = *request.Completed

	updated, err := uc.gateway.Save(ctx, *existing)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoUpdated, updated.ID, updated))
	return updated, nil
}

func (uc *todoUseCase) DeleteTodoItem(ctx context.Context, id int64) error {
	exists, err := uc.gateway.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(id)
	}

	if err := uc.gateway.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoDeleted, id, nil))
	return nil
}

func (uc *todoUseCase) ToggleTodoItemCompletion(ctx context.Context, id int64) (*entity.TodoItem, error) {
	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(id)
	}

	existing.Completed = !existing.Completed

	toggled, err := uc.gateway.Save(ctx, *existing)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoToggled, toggled.ID, toggled))
	return toggled, nil
}

func (uc *todoUseCase) SummarizeTodoItems(ctx context.Context) (*model.TodoSummary, error) {
	items, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.TodoSummary{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			summary.Completed++
		}
	}
	summary.Pending = summary.Total - summary.Completed
	return summary, nil
}

// publish never fails the mutation that produced the event
func (uc *todoUseCase) publish(ctx context.Context, event model.TodoEvent) {
	if err := uc.events.Publish(ctx, event); err != nil {
		log.Error(msg.GetMessage("todo.event.publish-failed", string(event.Type), event.TodoID),
			zap.String("event_type", string(event.Type)),
			zap.Int64("todo_id", event.TodoID),
			zap.Error(err),
		)
	}
}
