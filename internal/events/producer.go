package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher is what the order service needs from an event sink.
type Publisher interface {
	PublishOrderCreated(event OrderCreatedEvent) error
}

type OrderProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewOrderProducer(brokers, topic string, logger *zap.Logger) *OrderProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &OrderProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *OrderProducer) PublishOrderCreated(event OrderCreatedEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal order event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish order event",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Order event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))

	return nil
}

func (p *OrderProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
