package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaEventPublisher struct {
	writer messageWriter
	topic  string
	logger *logger.Logger
}

// NewKafkaEventPublisher returns an [EventPublisher] writing to
// cfg.BookingEventsTopic on cfg.KafkaBrokers. Messages are keyed by booking
// id so that events of one booking stay ordered within a partition.
func NewKafkaEventPublisher(cfg config.Workers, logger *logger.Logger) EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.BookingEventsTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return newKafkaEventPublisher(writer, cfg.BookingEventsTopic, logger)
}

func newKafkaEventPublisher(writer messageWriter, topic string, logger *logger.Logger) *kafkaEventPublisher {
	return &kafkaEventPublisher{writer: writer, topic: topic, logger: logger}
}

func (k *kafkaEventPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrPublishingEvent, err)
	}

	message := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookingID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
	}

	if err = k.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	k.logger.Debug().
		Str("topic", k.topic).
		Str("event_id", event.EventID).
		Int64("booking_id", event.BookingID).
		Msg("booking event published")
	return nil
}

func (k *kafkaEventPublisher) Close() error {
	return k.writer.Close()
}
