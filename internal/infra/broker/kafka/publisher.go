package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"hostbook/internal/app/policies"
	"hostbook/internal/domain/shared/events"
)

// EventPublisher adapts the sarama producer to the application's publisher
// port. Topic per event name, optional prefix, aggregate id as partition key.
type EventPublisher struct {
	Producer    *Producer
	TopicPrefix string
}

type eventEnvelope struct {
	Name        string `json:"name"`
	AggregateID string `json:"aggregate_id"`
	OccurredAt  string `json:"occurred_at"`
	Payload     any    `json:"payload"`
}

func (p EventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	payload, err := json.Marshal(eventEnvelope{
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC().Format(time.RFC3339),
		Payload:     event,
	})
	if err != nil {
		return err
	}
	topic := p.TopicPrefix + strings.ReplaceAll(event.EventName(), ".", "-")
	return p.Producer.Publish(ctx, topic, event.AggregateID(), payload)
}

var _ policies.EventPublisher = EventPublisher{}
