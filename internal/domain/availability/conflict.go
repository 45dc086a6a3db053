package availability

import (
	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

// ConflictReason explains why a candidate range was rejected.
type ConflictReason string

const (
	ReasonInvalidRange   ConflictReason = "INVALID_RANGE"
	ReasonBookingOverlap ConflictReason = "BOOKING_OVERLAP"
	ReasonBlockedOverlap ConflictReason = "BLOCKED_OVERLAP"
)

// ConflictResult is a value, never an error: the guard performs no I/O and
// the caller is responsible for user-facing messaging.
type ConflictResult struct {
	OK     bool
	Reason ConflictReason
	// Exactly one of the two is set on an overlap conflict.
	Booking *booking.Booking
	Block   *BlockedRange
}

func ok() ConflictResult {
	return ConflictResult{OK: true}
}

// ConflictingLabel names the entity the candidate collided with, for display.
func (r ConflictResult) ConflictingLabel() string {
	switch {
	case r.Booking != nil:
		return r.Booking.GuestName
	case r.Block != nil:
		return r.Block.Reason
	}
	return ""
}

// CheckRange gates a candidate stay against existing bookings and blocked
// ranges before it may be committed. Bookings compare half-open against
// half-open; blocked ranges compare half-open against inclusive-both-ends.
func CheckRange(candidate daterange.DateRange, bookings []*booking.Booking, blocked []*BlockedRange) ConflictResult {
	if candidate.Validate() != nil {
		return ConflictResult{Reason: ReasonInvalidRange}
	}
	for _, b := range bookings {
		if b == nil || b.Range.Validate() != nil {
			continue
		}
		if candidate.Overlaps(b.Range) {
			return ConflictResult{Reason: ReasonBookingOverlap, Booking: b}
		}
	}
	for _, br := range blocked {
		if br == nil || br.Span.Validate() != nil {
			continue
		}
		if br.Span.OverlapsRange(candidate) {
			return ConflictResult{Reason: ReasonBlockedOverlap, Block: br}
		}
	}
	return ok()
}

// CheckSpan gates a candidate blocked period against existing bookings and
// blocked ranges. Both comparisons treat the span as inclusive on both ends.
func CheckSpan(candidate daterange.Span, bookings []*booking.Booking, blocked []*BlockedRange) ConflictResult {
	if candidate.Validate() != nil {
		return ConflictResult{Reason: ReasonInvalidRange}
	}
	for _, b := range bookings {
		if b == nil || b.Range.Validate() != nil {
			continue
		}
		if candidate.OverlapsRange(b.Range) {
			return ConflictResult{Reason: ReasonBookingOverlap, Booking: b}
		}
	}
	for _, br := range blocked {
		if br == nil || br.Span.Validate() != nil {
			continue
		}
		if spansOverlap(candidate, br.Span) {
			return ConflictResult{Reason: ReasonBlockedOverlap, Block: br}
		}
	}
	return ok()
}

func spansOverlap(a, b daterange.Span) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}
