package events

import (
	"context"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// noopPublisher is used when RabbitMQ is disabled. Events are only logged.
type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Debug("noopPublisher.Publish dropped event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
