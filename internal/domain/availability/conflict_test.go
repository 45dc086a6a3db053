package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

func candidate(checkIn, checkOut time.Time) daterange.DateRange {
	return daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut}
}

func TestCheckRangeRejectsInvalidCandidate(t *testing.T) {
	res := CheckRange(candidate(day(2024, time.March, 13), day(2024, time.March, 10)), nil, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonInvalidRange, res.Reason)

	res = CheckRange(candidate(day(2024, time.March, 10), day(2024, time.March, 10)), nil, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonInvalidRange, res.Reason)
}

func TestCheckRangeBookingOverlap(t *testing.T) {
	existing := stayOn("p1", booking.PlatformAirbnb, day(2024, time.March, 12), day(2024, time.March, 15))
	existing.GuestName = "Marta"

	res := CheckRange(candidate(day(2024, time.March, 10), day(2024, time.March, 13)), []*booking.Booking{existing}, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonBookingOverlap, res.Reason)
	require.NotNil(t, res.Booking)
	assert.Equal(t, "Marta", res.ConflictingLabel())

	// Back-to-back turnover is allowed: new checkin on the old checkout day.
	res = CheckRange(candidate(day(2024, time.March, 15), day(2024, time.March, 18)), []*booking.Booking{existing}, nil)
	assert.True(t, res.OK)
}

func TestCheckRangeBlockedOverlapIsInclusive(t *testing.T) {
	blk := blockOn("p1", "deep clean", day(2024, time.March, 5), day(2024, time.March, 7))

	// Checkin on the block's final day still collides.
	res := CheckRange(candidate(day(2024, time.March, 7), day(2024, time.March, 9)), nil, []*BlockedRange{blk})
	assert.False(t, res.OK)
	assert.Equal(t, ReasonBlockedOverlap, res.Reason)
	assert.Equal(t, "deep clean", res.ConflictingLabel())

	// Checkout on the block's first day is fine.
	res = CheckRange(candidate(day(2024, time.March, 3), day(2024, time.March, 5)), nil, []*BlockedRange{blk})
	assert.True(t, res.OK)

	res = CheckRange(candidate(day(2024, time.March, 8), day(2024, time.March, 10)), nil, []*BlockedRange{blk})
	assert.True(t, res.OK)
}

func TestCheckRangeSkipsMalformedRecords(t *testing.T) {
	bad := stayOn("p1", booking.PlatformAirbnb, day(2024, time.March, 13), day(2024, time.March, 10))
	res := CheckRange(candidate(day(2024, time.March, 11), day(2024, time.March, 12)), []*booking.Booking{bad}, nil)
	assert.True(t, res.OK)
}

func TestCheckSpan(t *testing.T) {
	existing := stayOn("p1", booking.PlatformDirect, day(2024, time.March, 10), day(2024, time.March, 13))

	// Blocking the checkout day is fine, the night is not occupied.
	res := CheckSpan(daterange.Span{Start: day(2024, time.March, 13), End: day(2024, time.March, 14)}, []*booking.Booking{existing}, nil)
	assert.True(t, res.OK)

	// Blocking an occupied night collides.
	res = CheckSpan(daterange.Span{Start: day(2024, time.March, 12), End: day(2024, time.March, 14)}, []*booking.Booking{existing}, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonBookingOverlap, res.Reason)

	// Two inclusive spans touching on a single day collide.
	blk := blockOn("p1", "x", day(2024, time.March, 20), day(2024, time.March, 22))
	res = CheckSpan(daterange.Span{Start: day(2024, time.March, 22), End: day(2024, time.March, 25)}, nil, []*BlockedRange{blk})
	assert.False(t, res.OK)
	assert.Equal(t, ReasonBlockedOverlap, res.Reason)

	res = CheckSpan(daterange.Span{Start: day(2024, time.March, 23), End: day(2024, time.March, 25)}, nil, []*BlockedRange{blk})
	assert.True(t, res.OK)
}

func TestSequentialAcceptanceNeverOverlaps(t *testing.T) {
	// Accepting candidates one by one against the accumulating set can never
	// produce two overlapping stays.
	candidates := []daterange.DateRange{
		candidate(day(2024, time.March, 1), day(2024, time.March, 5)),
		candidate(day(2024, time.March, 4), day(2024, time.March, 8)),
		candidate(day(2024, time.March, 5), day(2024, time.March, 9)),
		candidate(day(2024, time.March, 8), day(2024, time.March, 9)),
		candidate(day(2024, time.March, 9), day(2024, time.March, 12)),
		candidate(day(2024, time.March, 2), day(2024, time.March, 11)),
	}

	var accepted []*booking.Booking
	for i, c := range candidates {
		res := CheckRange(c, accepted, nil)
		if !res.OK {
			continue
		}
		accepted = append(accepted, &booking.Booking{
			ID:       booking.BookingID(string(rune('a' + i))),
			Range:    c,
			Platform: booking.PlatformDirect,
		})
	}

	require.Len(t, accepted, 3)
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			assert.False(t, accepted[i].Range.Overlaps(accepted[j].Range),
				"accepted stays %d and %d overlap", i, j)
		}
	}
}
