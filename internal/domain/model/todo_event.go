package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

type TodoEventType string

const (
	TodoCreated TodoEventType = "CREATED"
	TodoUpdated TodoEventType = "UPDATED"
	TodoToggled TodoEventType = "TOGGLED"
	TodoDeleted TodoEventType = "DELETED"
)

// TodoEvent describes a mutation that has been persisted. Item is nil for deletions.
type TodoEvent struct {
	Type       TodoEventType    `json:"type"`
	TodoID     int64            `json:"todoId"`
	Item       *entity.TodoItem `json:"item"`
	OccurredAt time.Time        `json:"occurredAt"`
}

func NewTodoEvent(eventType TodoEventType, todoID int64, item *entity.TodoItem) TodoEvent {
	return TodoEvent{
		Type:       eventType,
		TodoID:     todoID,
		Item:       item,
		OccurredAt: time.Now().UTC(),
	}
}
