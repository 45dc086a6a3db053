package policies

import (
	"context"

	"hostbook/internal/domain/shared/events"
)

// EventPublisher delivers drained domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event events.DomainEvent) error { return nil }
