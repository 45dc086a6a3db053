package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
	ErrInvalidSpan  = errors.New("daterange: span end must not precede start")
)

// DateRange represents a stay as a half-open interval [CheckIn, CheckOut).
// The guest does not occupy the night of CheckOut, so the checkout day is
// free for a new arrival.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: checkIn.UTC(), CheckOut: checkOut.UTC()}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckIn.IsZero() || dr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Nights() int {
	return int(dr.CheckOut.Sub(dr.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(dr.CheckOut)
}

// ContainsDate reports whether t falls on an occupied night: the checkin day
// counts, the checkout day does not.
func (dr DateRange) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return (t.Equal(dr.CheckIn) || t.After(dr.CheckIn)) && t.Before(dr.CheckOut)
}

// Span is a manually blocked period, inclusive on both ends: the End day is
// unavailable all day. Its boundary policy differs from DateRange and the
// two must stay separate types.
type Span struct {
	Start time.Time
	End   time.Time
}

func NewSpan(start, end time.Time) (Span, error) {
	s := Span{Start: start.UTC(), End: end.UTC()}
	if err := s.Validate(); err != nil {
		return Span{}, err
	}
	return s, nil
}

func (s Span) Validate() error {
	if s.Start.IsZero() || s.End.IsZero() {
		return ErrInvalidSpan
	}
	if s.End.Before(s.Start) {
		return ErrInvalidSpan
	}
	return nil
}

// ContainsDate is inclusive on both ends.
func (s Span) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return !t.Before(s.Start) && !t.After(s.End)
}

// OverlapsRange reports whether a half-open stay collides with the span.
func (s Span) OverlapsRange(dr DateRange) bool {
	return !dr.CheckIn.After(s.End) && s.Start.Before(dr.CheckOut)
}
