package queue

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

// TodoEventGateway publishes todo mutations
type TodoEventGateway interface {
	Publish(ctx context.Context, event model.TodoEvent) error
}

type QueueTodoEventGateway struct {
	sender    Sender
	queueName string
}

var (
	_ TodoEventGateway = (*QueueTodoEventGateway)(nil)
	_ HealthGateway    = (*QueueTodoEventGateway)(nil)
)

func NewQueueTodoEventGateway(sender Sender, queueName string) *QueueTodoEventGateway {
	return &QueueTodoEventGateway{sender: sender, queueName: queueName}
}

func (gateway *QueueTodoEventGateway) Publish(ctx context.Context, event model.TodoEvent) error {
	return gateway.sender.SendMessage(ctx, gateway.queueName, event, map[string]string{
		"eventType": string(event.Type),
	})
}

func (gateway *QueueTodoEventGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.sender.Ping(ctx, gateway.queueName); err != nil {
		return model.ComponentDown(err)
	}

	health := model.ComponentUp()
	health.Details["queue"] = gateway.queueName
	return health
}

// NoopTodoEventGateway drops every event, used when publishing is disabled
type NoopTodoEventGateway struct{}

var _ TodoEventGateway = NoopTodoEventGateway{}

func (NoopTodoEventGateway) Publish(context.Context, model.TodoEvent) error {
	return nil
}
