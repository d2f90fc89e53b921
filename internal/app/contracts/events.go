package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}
