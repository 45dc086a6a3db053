package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stayOn(propertyID string, platform booking.Platform, checkIn, checkOut time.Time) *booking.Booking {
	return &booking.Booking{
		ID:         booking.BookingID("b-" + checkIn.Format("0102")),
		PropertyID: booking.PropertyID(propertyID),
		GuestName:  "guest",
		Platform:   platform,
		Range:      daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut},
	}
}

func blockOn(propertyID, reason string, start, end time.Time) *BlockedRange {
	return &BlockedRange{
		ID:         BlockedRangeID("blk-" + start.Format("0102")),
		PropertyID: booking.PropertyID(propertyID),
		Reason:     reason,
		Span:       daterange.Span{Start: start, End: end},
	}
}

func TestEmptyMonthClassifiesFreeAndPast(t *testing.T) {
	// Scenario: March 2024, nothing on the calendar, today mid-month.
	today := day(2024, time.March, 15)
	index := BuildIndex(day(2024, time.March, 1), nil, nil, today)

	require.Len(t, index, 31)
	for d := 1; d <= 31; d++ {
		entry, found := index[d]
		require.True(t, found, "day %d missing", d)
		assert.Equal(t, d, entry.DayNumber)
		if d < 15 {
			assert.Equal(t, DayPast, entry.Class, "day %d", d)
		} else {
			assert.Equal(t, DayFree, entry.Class, "day %d", d)
		}
	}
}

func TestCheckoutDayIsFree(t *testing.T) {
	today := day(2024, time.March, 1)
	b := stayOn("p1", booking.PlatformAirbnb, day(2024, time.March, 10), day(2024, time.March, 13))
	index := BuildIndex(day(2024, time.March, 1), []*booking.Booking{b}, nil, today)

	for _, d := range []int{10, 11, 12} {
		assert.Equal(t, DayBooked, index[d].Class, "day %d", d)
	}
	assert.Equal(t, DayFree, index[13].Class)
}

func TestBlockedWinsOverBooked(t *testing.T) {
	today := day(2024, time.March, 1)
	b := stayOn("p1", booking.PlatformAirbnb, day(2024, time.March, 10), day(2024, time.March, 13))
	blk := blockOn("p1", "maintenance", day(2024, time.March, 11), day(2024, time.March, 11))
	index := BuildIndex(day(2024, time.March, 1), []*booking.Booking{b}, []*BlockedRange{blk}, today)

	assert.Equal(t, DayBooked, index[10].Class)
	assert.Equal(t, DayBlocked, index[11].Class)
	require.NotNil(t, index[11].Block)
	assert.Equal(t, "maintenance", index[11].Block.Reason)
	assert.Equal(t, DayBooked, index[12].Class)
}

func TestBlockedRangeIsInclusiveBothEnds(t *testing.T) {
	today := day(2024, time.March, 1)
	blk := blockOn("p1", "painting", day(2024, time.March, 5), day(2024, time.March, 7))
	index := BuildIndex(day(2024, time.March, 1), nil, []*BlockedRange{blk}, today)

	assert.Equal(t, DayBlocked, index[5].Class)
	assert.Equal(t, DayBlocked, index[7].Class)
	assert.Equal(t, DayFree, index[8].Class)
}

func TestEarliestStartingBlockCited(t *testing.T) {
	today := day(2024, time.March, 1)
	late := blockOn("p1", "late", day(2024, time.March, 6), day(2024, time.March, 10))
	early := blockOn("p1", "early", day(2024, time.March, 4), day(2024, time.March, 8))
	index := BuildIndex(day(2024, time.March, 1), nil, []*BlockedRange{late, early}, today)

	require.NotNil(t, index[6].Block)
	assert.Equal(t, "early", index[6].Block.Reason)
}

func TestPlatformDotsDistinctOrderedCapped(t *testing.T) {
	// Overlapping historical data: four platforms touch day 10, only three
	// dots render, first occurrence order.
	today := day(2024, time.March, 1)
	bookings := []*booking.Booking{
		stayOn("p1", booking.PlatformVrbo, day(2024, time.March, 9), day(2024, time.March, 11)),
		stayOn("p2", booking.PlatformAirbnb, day(2024, time.March, 10), day(2024, time.March, 12)),
		stayOn("p3", booking.PlatformVrbo, day(2024, time.March, 10), day(2024, time.March, 13)),
		stayOn("p4", booking.PlatformDirect, day(2024, time.March, 8), day(2024, time.March, 14)),
		stayOn("p5", booking.PlatformBooking, day(2024, time.March, 10), day(2024, time.March, 11)),
	}
	index := BuildIndex(day(2024, time.March, 1), bookings, nil, today)

	assert.Equal(t, DayBooked, index[10].Class)
	assert.Equal(t, []booking.Platform{booking.PlatformVrbo, booking.PlatformAirbnb, booking.PlatformDirect}, index[10].Platforms)
}

func TestMalformedBookingContributesNothing(t *testing.T) {
	today := day(2024, time.March, 1)
	bad := stayOn("p1", booking.PlatformAirbnb, day(2024, time.March, 13), day(2024, time.March, 10))
	index := BuildIndex(day(2024, time.March, 1), []*booking.Booking{bad}, nil, today)

	for d := 1; d <= 31; d++ {
		assert.NotEqual(t, DayBooked, index[d].Class, "day %d", d)
	}
}

func TestClassificationCompleteness(t *testing.T) {
	// Every day of the month gets exactly one entry, for several month sizes.
	anchors := []time.Time{
		day(2024, time.February, 1),
		day(2023, time.February, 1),
		day(2024, time.April, 1),
		day(2024, time.March, 1),
	}
	b := stayOn("p1", booking.PlatformAirbnb, day(2024, time.February, 27), day(2024, time.March, 3))
	blk := blockOn("p1", "x", day(2024, time.February, 1), day(2024, time.February, 2))

	for _, anchor := range anchors {
		index := BuildIndex(anchor, []*booking.Booking{b}, []*BlockedRange{blk}, day(2024, time.March, 15))
		wantDays := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
		require.Len(t, index, wantDays, "month %s", anchor.Format("2006-01"))
		for d := 1; d <= wantDays; d++ {
			_, found := index[d]
			assert.True(t, found, "month %s day %d", anchor.Format("2006-01"), d)
		}
	}
}

func TestSelectable(t *testing.T) {
	assert.True(t, CalendarDay{Class: DayFree}.Selectable())
	assert.False(t, CalendarDay{Class: DayBooked}.Selectable())
	assert.False(t, CalendarDay{Class: DayBlocked}.Selectable())
	assert.False(t, CalendarDay{Class: DayPast}.Selectable())
}
