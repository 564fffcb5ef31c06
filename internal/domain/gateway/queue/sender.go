package queue

import "context"

// Sender sends JSON messages to a named queue
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
	Ping(ctx context.Context, queueName string) error
}
