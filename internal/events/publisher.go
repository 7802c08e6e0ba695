package events

import (
	"context"
	"encoding/json"

	"meal-orders/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order lifecycle events to the orders topic, keyed by
// event type so consumers can filter per routing key.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	payload, _ := json.Marshal(evt)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Type),
		Value: payload,
	})
}
