package todo

import (
	"errors"
	"fmt"
)

// ErrTodoItemNotFound is returned when the referenced id is not persisted
var ErrTodoItemNotFound = errors.New("todo item not found")

// ValidationError reports input that breaks a business rule
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func notFound(id int64) error {
	return fmt.Errorf("todo item %d: %w", id, ErrTodoItemNotFound)
}
