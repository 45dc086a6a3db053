package availability

import (
	"context"
	"errors"
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
	"hostbook/internal/domain/shared/events"
)

var ErrBlockNotFound = errors.New("availability: blocked range not found")

type BlockedRangeID string

// BlockedRange is a host-blocked period, inclusive on both ends. A blocked
// day is unavailable all day, unlike a booking's checkout day.
type BlockedRange struct {
	ID         BlockedRangeID
	PropertyID booking.PropertyID
	Span       daterange.Span
	Reason     string
	CreatedAt  time.Time
	events.EventRecorder
}

func NewBlockedRange(id BlockedRangeID, propertyID booking.PropertyID, span daterange.Span, reason string, now time.Time) (*BlockedRange, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	br := &BlockedRange{
		ID:         id,
		PropertyID: propertyID,
		Span:       span,
		Reason:     reason,
		CreatedAt:  now.UTC(),
	}
	br.Record(DatesBlocked{BlockID: br.ID, PropertyID: br.PropertyID, Span: br.Span, Reason: br.Reason, At: br.CreatedAt})
	return br, nil
}

type BlockedRepository interface {
	ByID(ctx context.Context, id BlockedRangeID) (*BlockedRange, error)
	Save(ctx context.Context, br *BlockedRange) error
	Delete(ctx context.Context, id BlockedRangeID) error
	ListByProperty(ctx context.Context, propertyID *booking.PropertyID) ([]*BlockedRange, error)
}
