package model

// TodoItemRequest is the body accepted by create and update.
// Pointers tell an absent field apart from its zero value; an id in the body is never read.
type TodoItemRequest struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TodoSummary counts persisted items by completion state
type TodoSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
