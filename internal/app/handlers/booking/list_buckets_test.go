package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/bucketing"
	"hostbook/internal/domain/shared/daterange"
	"hostbook/internal/infra/storage/memory"
)

func seedBooking(t *testing.T, repo *memory.BookingRepository, id, propertyID string, checkIn, checkOut time.Time) {
	t.Helper()
	err := repo.Save(context.Background(), &domainbooking.Booking{
		ID:         domainbooking.BookingID(id),
		PropertyID: domainbooking.PropertyID(propertyID),
		GuestName:  "guest",
		Platform:   domainbooking.PlatformDirect,
		Range:      daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut},
	})
	require.NoError(t, err)
}

func TestListBucketsUpcomingGroups(t *testing.T) {
	repo := memory.NewBookingRepository()
	// Wednesday March 6 2024.
	now := day(2024, time.March, 6)
	seedBooking(t, repo, "this-week", "p1", day(2024, time.March, 8), day(2024, time.March, 10))
	seedBooking(t, repo, "next-week", "p1", day(2024, time.March, 14), day(2024, time.March, 16))
	seedBooking(t, repo, "future", "p1", day(2024, time.April, 5), day(2024, time.April, 8))
	seedBooking(t, repo, "past", "p1", day(2024, time.February, 1), day(2024, time.February, 5))

	h := &ListBucketsHandler{Bookings: repo}
	out, err := h.Handle(context.Background(), ListBucketsQuery{PropertyID: "p1", Filter: bucketing.FilterUpcoming, Now: now})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	require.Len(t, out.Groups, 3)
	assert.Equal(t, bucketing.GroupThisWeek, out.Groups[0].Name)
	assert.Equal(t, bucketing.GroupNextWeek, out.Groups[1].Name)
	assert.Equal(t, bucketing.GroupUpcoming, out.Groups[2].Name)
}

func TestListBucketsCurrentAndPast(t *testing.T) {
	repo := memory.NewBookingRepository()
	now := day(2024, time.March, 6)
	seedBooking(t, repo, "current", "p1", day(2024, time.March, 4), day(2024, time.March, 6))
	seedBooking(t, repo, "past", "p1", day(2024, time.February, 1), day(2024, time.February, 5))

	h := &ListBucketsHandler{Bookings: repo}

	out, err := h.Handle(context.Background(), ListBucketsQuery{PropertyID: "p1", Filter: bucketing.FilterCurrent, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "current", out.Groups[0].Bookings[0].ID)

	out, err = h.Handle(context.Background(), ListBucketsQuery{PropertyID: "p1", Filter: bucketing.FilterPast, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "past", out.Groups[0].Bookings[0].ID)
}

func TestListBucketsAllPropertiesWhenFilterEmpty(t *testing.T) {
	repo := memory.NewBookingRepository()
	now := day(2024, time.March, 6)
	seedBooking(t, repo, "a", "p1", day(2024, time.March, 8), day(2024, time.March, 10))
	seedBooking(t, repo, "b", "p2", day(2024, time.March, 8), day(2024, time.March, 10))

	h := &ListBucketsHandler{Bookings: repo}
	out, err := h.Handle(context.Background(), ListBucketsQuery{Filter: bucketing.FilterUpcoming, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}
