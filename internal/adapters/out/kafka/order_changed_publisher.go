// Package kafka publishes order change events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"catering/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.OrderEventPublisher = (*OrderChangedPublisher)(nil)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedPublisher writes one message per event, keyed by order number
// so that all events of an order land on the same partition in order.
type OrderChangedPublisher struct {
	writer MessageWriter
	logger *slog.Logger
}

// NewOrderChangedPublisher creates an asynchronous writer for the topic.
// Delivery failures surface in the log only.
func NewOrderChangedPublisher(host, topic string, logger *slog.Logger) *OrderChangedPublisher {
	logger = logger.With("component", "kafka_order_publisher", "topic", topic)

	writer := &kafka.Writer{
		Addr:         kafka.TCP(host),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to deliver order events", "messages", len(messages), "error", err)
			}
		},
	}

	return NewOrderChangedPublisherWithWriter(writer, logger)
}

func NewOrderChangedPublisherWithWriter(writer MessageWriter, logger *slog.Logger) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: writer, logger: logger}
}

func (p *OrderChangedPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode order event", "order", event.OrderNumber, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order event", "order", event.OrderNumber, "error", err)
	}
}

// Close flushes pending messages.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
