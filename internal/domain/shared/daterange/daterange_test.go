package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRejectsNonPositiveNights(t *testing.T) {
	_, err := New(day(2024, time.March, 10), day(2024, time.March, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(day(2024, time.March, 10), day(2024, time.March, 8))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNights(t *testing.T) {
	dr, err := New(day(2024, time.March, 10), day(2024, time.March, 13))
	require.NoError(t, err)
	assert.Equal(t, 3, dr.Nights())
}

func TestRangeContainsDateExcludesCheckout(t *testing.T) {
	dr, err := New(day(2024, time.March, 10), day(2024, time.March, 13))
	require.NoError(t, err)

	assert.True(t, dr.ContainsDate(day(2024, time.March, 10)))
	assert.True(t, dr.ContainsDate(day(2024, time.March, 12)))
	assert.False(t, dr.ContainsDate(day(2024, time.March, 13)))
	assert.False(t, dr.ContainsDate(day(2024, time.March, 9)))
}

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    DateRange
		overlap bool
	}{
		{
			name:    "partial overlap",
			a:       DateRange{day(2024, time.March, 10), day(2024, time.March, 13)},
			b:       DateRange{day(2024, time.March, 12), day(2024, time.March, 15)},
			overlap: true,
		},
		{
			name:    "back to back stays do not overlap",
			a:       DateRange{day(2024, time.March, 10), day(2024, time.March, 13)},
			b:       DateRange{day(2024, time.March, 13), day(2024, time.March, 16)},
			overlap: false,
		},
		{
			name:    "contained",
			a:       DateRange{day(2024, time.March, 1), day(2024, time.March, 31)},
			b:       DateRange{day(2024, time.March, 10), day(2024, time.March, 11)},
			overlap: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}

func TestSpanIsInclusiveBothEnds(t *testing.T) {
	s, err := NewSpan(day(2024, time.March, 5), day(2024, time.March, 7))
	require.NoError(t, err)

	assert.True(t, s.ContainsDate(day(2024, time.March, 5)))
	assert.True(t, s.ContainsDate(day(2024, time.March, 7)))
	assert.False(t, s.ContainsDate(day(2024, time.March, 8)))
}

func TestSpanAllowsSingleDay(t *testing.T) {
	s, err := NewSpan(day(2024, time.March, 5), day(2024, time.March, 5))
	require.NoError(t, err)
	assert.True(t, s.ContainsDate(day(2024, time.March, 5)))

	_, err = NewSpan(day(2024, time.March, 6), day(2024, time.March, 5))
	assert.ErrorIs(t, err, ErrInvalidSpan)
}

func TestSpanOverlapsRange(t *testing.T) {
	s := Span{Start: day(2024, time.March, 5), End: day(2024, time.March, 7)}

	// Checkin on the span's last day collides: that day is blocked all day.
	assert.True(t, s.OverlapsRange(DateRange{day(2024, time.March, 7), day(2024, time.March, 9)}))
	// Checkin the day after the span ends is fine.
	assert.False(t, s.OverlapsRange(DateRange{day(2024, time.March, 8), day(2024, time.March, 9)}))
	// Checkout on the span's first day is fine: the checkout night is not occupied.
	assert.False(t, s.OverlapsRange(DateRange{day(2024, time.March, 3), day(2024, time.March, 5)}))
	assert.True(t, s.OverlapsRange(DateRange{day(2024, time.March, 3), day(2024, time.March, 6)}))
}
