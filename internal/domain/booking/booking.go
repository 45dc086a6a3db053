package booking

import (
	"context"
	"errors"
	"time"

	"hostbook/internal/domain/calendar"
	"hostbook/internal/domain/shared/daterange"
	"hostbook/internal/domain/shared/events"
)

var (
	ErrGuestNameRequired = errors.New("booking: guest name required")
	ErrUnknownPlatform   = errors.New("booking: unknown platform")
	ErrBookingNotFound   = errors.New("booking: not found")
)

type BookingID string

type PropertyID string

// Booking is a confirmed stay. Its range is half-open: the checkout day is
// not occupied and is free for a new arrival.
type Booking struct {
	ID          BookingID
	PropertyID  PropertyID
	GuestName   string
	Range       daterange.DateRange
	Platform    Platform
	AmountMinor int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	events.EventRecorder
}

type CreateParams struct {
	ID          BookingID
	PropertyID  PropertyID
	GuestName   string
	Range       daterange.DateRange
	Platform    Platform
	AmountMinor int64
	CreatedAt   time.Time
}

func NewBooking(params CreateParams) (*Booking, error) {
	if params.GuestName == "" {
		return nil, ErrGuestNameRequired
	}
	if !params.Platform.Known() {
		return nil, ErrUnknownPlatform
	}
	if err := params.Range.Validate(); err != nil {
		return nil, err
	}
	now := params.CreatedAt.UTC()
	b := &Booking{
		ID:          params.ID,
		PropertyID:  params.PropertyID,
		GuestName:   params.GuestName,
		Range:       params.Range,
		Platform:    params.Platform,
		AmountMinor: params.AmountMinor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.Record(BookingCreated{BookingID: b.ID, PropertyID: b.PropertyID, Range: b.Range, Platform: b.Platform, At: now})
	return b, nil
}

// CoversDay reports whether the stay occupies the night of the given day.
// The checkout day does not count. Malformed records cover nothing.
func (b *Booking) CoversDay(day time.Time) bool {
	if b.Range.Validate() != nil {
		return false
	}
	return b.Range.ContainsDate(calendar.StartOfDay(day))
}

// StayingOn reports whether the guest is considered present on the given
// day. Unlike CoversDay, the checkout day counts: a guest checking out today
// is still "current" today.
func (b *Booking) StayingOn(day time.Time) bool {
	if b.Range.Validate() != nil {
		return false
	}
	d := calendar.StartOfDay(day)
	return !b.Range.CheckIn.After(d) && !b.Range.CheckOut.Before(d)
}

type Repository interface {
	ByID(ctx context.Context, id BookingID) (*Booking, error)
	Save(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id BookingID) error
	// ListByProperty returns all bookings for the property, or for every
	// property when the filter is nil.
	ListByProperty(ctx context.Context, propertyID *PropertyID) ([]*Booking, error)
}
