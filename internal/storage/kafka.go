package storage

import (
	"context"
	"encoding/json"

	"food-delivery/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaOrderPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaOrderPublisher(writer *kafka.Writer) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{Writer: writer}
}

func (p *KafkaOrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	msg, err := OrderMessage(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

// OrderMessage keys events by user login so one customer's orders stay on a
// single partition.
func OrderMessage(event domain.OrderEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.User),
		Value: payload,
	}, nil
}
