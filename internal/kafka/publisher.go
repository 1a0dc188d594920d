// Package kafka publishes own-ship position snapshots to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"waypoints-api/internal/models"

	"github.com/segmentio/kafka-go"
)

// MessageKey keys every snapshot so all positions land on one partition in order.
const MessageKey = "ownship"

// PositionPublisher writes position snapshots as JSON messages.
type PositionPublisher struct {
	w *kafka.Writer
}

// NewPositionPublisher returns a publisher for topic on brokers.
func NewPositionPublisher(brokers []string, topic string) *PositionPublisher {
	return &PositionPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishPosition implements poller.Sink.
func (p *PositionPublisher) PublishPosition(ctx context.Context, pos models.Position) error {
	msg, err := encodePosition(pos)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: failed to write position: %w", err)
	}
	return nil
}

// Close flushes pending messages.
func (p *PositionPublisher) Close() error {
	return p.w.Close()
}

func encodePosition(pos models.Position) (kafka.Message, error) {
	b, err := json.Marshal(pos)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: failed to encode position: %w", err)
	}
	return kafka.Message{Key: []byte(MessageKey), Value: b, Time: pos.Timestamp}, nil
}
