package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostbook/internal/app/commands"
	"hostbook/internal/app/dto"
	"hostbook/internal/app/policies"
	"hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/calendar"
	"hostbook/internal/domain/shared/daterange"
)

const createBookingKey = "booking.create"

// ErrRangeConflict wraps a guard rejection; the conflicting entity's label
// travels in the message for user display.
var ErrRangeConflict = errors.New("booking: dates unavailable")

type CreateBookingCommand struct {
	CommandID   string
	PropertyID  string
	GuestName   string
	CheckIn     time.Time
	CheckOut    time.Time
	Platform    string
	AmountMinor int64
	Now         time.Time
}

func (c CreateBookingCommand) Key() string { return createBookingKey }

type CreateBookingResult struct {
	Booking dto.Booking `json:"booking"`
}

type CreateBookingHandler struct {
	Bookings  domainbooking.Repository
	Blocked   availability.BlockedRepository
	Publisher policies.EventPublisher
}

func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	propertyID := domainbooking.PropertyID(cmd.PropertyID)
	candidate, err := daterange.New(calendar.StartOfDay(cmd.CheckIn), calendar.StartOfDay(cmd.CheckOut))
	if err != nil {
		return nil, err
	}

	existing, err := h.Bookings.ListByProperty(ctx, &propertyID)
	if err != nil {
		return nil, err
	}
	blocked, err := h.Blocked.ListByProperty(ctx, &propertyID)
	if err != nil {
		return nil, err
	}

	if res := availability.CheckRange(candidate, existing, blocked); !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrRangeConflict, res.ConflictingLabel())
	}

	b, err := domainbooking.NewBooking(domainbooking.CreateParams{
		ID:          domainbooking.BookingID(cmd.CommandID),
		PropertyID:  propertyID,
		GuestName:   cmd.GuestName,
		Range:       candidate,
		Platform:    domainbooking.ParsePlatform(cmd.Platform),
		AmountMinor: cmd.AmountMinor,
		CreatedAt:   cmd.Now,
	})
	if err != nil {
		return nil, err
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	publishPending(ctx, h.Publisher, &b.EventRecorder)
	return &CreateBookingResult{Booking: dto.MapBooking(b)}, nil
}

var _ commands.Handler[CreateBookingCommand, *CreateBookingResult] = (*CreateBookingHandler)(nil)
