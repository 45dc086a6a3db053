package booking

import (
	"context"
	"time"

	"hostbook/internal/app/commands"
	"hostbook/internal/app/policies"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/events"
)

const removeBookingKey = "booking.remove"

type RemoveBookingCommand struct {
	BookingID string
	Now       time.Time
}

func (c RemoveBookingCommand) Key() string { return removeBookingKey }

type RemoveBookingResult struct {
	Removed bool `json:"removed"`
}

type RemoveBookingHandler struct {
	Bookings  domainbooking.Repository
	Publisher policies.EventPublisher
}

func (h *RemoveBookingHandler) Handle(ctx context.Context, cmd RemoveBookingCommand) (*RemoveBookingResult, error) {
	id := domainbooking.BookingID(cmd.BookingID)
	b, err := h.Bookings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		return nil, err
	}
	if h.Publisher != nil {
		_ = h.Publisher.Publish(ctx, domainbooking.BookingRemoved{
			BookingID:  b.ID,
			PropertyID: b.PropertyID,
			At:         cmd.Now.UTC(),
		})
	}
	return &RemoveBookingResult{Removed: true}, nil
}

// publishPending drains an aggregate's recorded events into the publisher.
// Publish failures do not fail the command.
func publishPending(ctx context.Context, pub policies.EventPublisher, rec *events.EventRecorder) {
	if pub == nil {
		return
	}
	for _, ev := range rec.PendingEvents() {
		_ = pub.Publish(ctx, ev)
	}
	rec.ClearEvents()
}

var _ commands.Handler[RemoveBookingCommand, *RemoveBookingResult] = (*RemoveBookingHandler)(nil)
