package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes change events. Messages are keyed by entity id so all
// events of one row land on the same partition.
type Producer struct {
	l            *slog.Logger
	w            messageWriter
	changesTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{
		l:            l,
		w:            w,
		changesTopic: topic,
	}
}

func (p *Producer) PublishChange(ctx context.Context, event entity.ChangeEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.changesTopic,
		Key:   []byte(event.ID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "entity", Value: []byte(event.Entity)},
			{Key: "action", Value: []byte(event.Action)},
		},
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops every event. It stands in when no broker is configured.
type NopProducer struct{}

func (NopProducer) PublishChange(ctx context.Context, event entity.ChangeEvent) error {
	slog.DebugContext(ctx, "change event dropped", "entity", event.Entity, "action", event.Action, "id", event.ID)
	return nil
}
