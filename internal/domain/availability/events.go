package availability

import (
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

type DatesBlocked struct {
	BlockID    BlockedRangeID
	PropertyID booking.PropertyID
	Span       daterange.Span
	Reason     string
	At         time.Time
}

func (e DatesBlocked) EventName() string     { return "availability.dates_blocked" }
func (e DatesBlocked) AggregateID() string   { return string(e.BlockID) }
func (e DatesBlocked) OccurredAt() time.Time { return e.At }

type BlockReleased struct {
	BlockID    BlockedRangeID
	PropertyID booking.PropertyID
	At         time.Time
}

func (e BlockReleased) EventName() string     { return "availability.block_released" }
func (e BlockReleased) AggregateID() string   { return string(e.BlockID) }
func (e BlockReleased) OccurredAt() time.Time { return e.At }
