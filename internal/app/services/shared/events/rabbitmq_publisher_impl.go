package events

import (
	"context"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel channel
	Queue   string
	Log     *zap.Logger
	now     func() time.Time
}

// NewRabbitMQPublisher opens a channel on the connection and declares the
// durable event queue.
func NewRabbitMQPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return newRabbitMQPublisher(ch, queue, logger), nil
}

func newRabbitMQPublisher(ch channel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: ch,
		Queue:   queue,
		Log:     logger,
		now:     time.Now,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := models.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Source:     constvars.EventSourceTherapyConnect,
		OccurredAt: p.now().UTC(),
		Data:       data,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		MessageId:     event.ID,
		Type:          eventType,
		Timestamp:     event.OccurredAt,
		CorrelationId: requestID,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}
