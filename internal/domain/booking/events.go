package booking

import (
	"time"

	"hostbook/internal/domain/shared/daterange"
)

type BookingCreated struct {
	BookingID  BookingID
	PropertyID PropertyID
	Range      daterange.DateRange
	Platform   Platform
	At         time.Time
}

func (e BookingCreated) EventName() string     { return "booking.created" }
func (e BookingCreated) AggregateID() string   { return string(e.BookingID) }
func (e BookingCreated) OccurredAt() time.Time { return e.At }

type BookingRemoved struct {
	BookingID  BookingID
	PropertyID PropertyID
	At         time.Time
}

func (e BookingRemoved) EventName() string     { return "booking.removed" }
func (e BookingRemoved) AggregateID() string   { return string(e.BookingID) }
func (e BookingRemoved) OccurredAt() time.Time { return e.At }
