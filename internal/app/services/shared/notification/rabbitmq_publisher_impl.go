package notification

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/metrics"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type RabbitMQPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewRabbitMQPublisher opens a channel and declares the durable appointment queue.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (*RabbitMQPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &RabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *RabbitMQPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event":        event.Event,
		"request_id":   requestID,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         event.Event,
		Headers:      headers,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		metrics.RecordEventPublished(event.Event, metrics.StatusError)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	metrics.RecordEventPublished(event.Event, metrics.StatusOK)
	p.Log.Info("RabbitMQPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	return p.Channel.Close()
}

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher is used when no broker is configured. Events only reach the log.
func NewLogPublisher(logger *zap.Logger) contracts.AppointmentEventPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("logPublisher.PublishAppointmentEvent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingSlotIDKey, event.SlotID),
	)
	metrics.RecordEventPublished(event.Event, metrics.StatusOK)
	return nil
}
