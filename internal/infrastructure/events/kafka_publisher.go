package events

import (
	"context"
	"encoding/json"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes transaction events keyed by token so every event
// of one transaction lands on the same partition.
type KafkaEventPublisher struct {
	writer messageWriter
}

var _ interfaces.IEventPublisher = (*KafkaEventPublisher)(nil)

// NewKafkaEventPublisher returns nil when no brokers are configured.
func NewKafkaEventPublisher(cfg appconfig.KafkaConfig) *KafkaEventPublisher {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &KafkaEventPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}}
}

func newKafkaEventPublisherWithWriter(w messageWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: w}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event interfaces.TransactionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(event.Token),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "payment_method", Value: []byte(event.PaymentMethod)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Component(ctx, "events.kafka").Warn().Err(err).
			Str("event_type", event.EventType).
			Str("token", event.Token).
			Msg("failed to publish transaction event")
		return err
	}
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
