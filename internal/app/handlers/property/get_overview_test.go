package property

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
	"hostbook/internal/infra/storage/memory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetOverview(t *testing.T) {
	repo := memory.NewBookingRepository()
	save := func(id string, checkIn, checkOut time.Time, amount int64) {
		err := repo.Save(context.Background(), &domainbooking.Booking{
			ID:          domainbooking.BookingID(id),
			PropertyID:  "p1",
			GuestName:   "guest",
			Platform:    domainbooking.PlatformAirbnb,
			Range:       daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut},
			AmountMinor: amount,
		})
		require.NoError(t, err)
	}
	// Three nights in March, three nights upcoming in April.
	save("past", day(2024, time.March, 2), day(2024, time.March, 5), 30000)
	save("upcoming", day(2024, time.April, 10), day(2024, time.April, 13), 45000)

	h := &GetOverviewHandler{Bookings: repo}
	out, err := h.Handle(context.Background(), GetOverviewQuery{
		PropertyID: "p1",
		Month:      day(2024, time.March, 1),
		Now:        day(2024, time.March, 20),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", out.Month)
	assert.Equal(t, 31, out.DaysInMonth)
	assert.Equal(t, 3, out.NightsBooked)
	assert.InDelta(t, float64(3)/31*100, out.OccupancyPercent, 0.0001)
	assert.Equal(t, 1, out.UpcomingCount)
	assert.Equal(t, 0, out.CurrentCount)
	// Only the March stay contributes to March revenue.
	assert.Equal(t, int64(30000), out.RevenueMinor)
}

func TestGetOverviewEmptyProperty(t *testing.T) {
	h := &GetOverviewHandler{Bookings: memory.NewBookingRepository()}
	out, err := h.Handle(context.Background(), GetOverviewQuery{
		PropertyID: "p9",
		Month:      day(2024, time.March, 1),
		Now:        day(2024, time.March, 20),
	})
	require.NoError(t, err)
	assert.Zero(t, out.OccupancyPercent)
	assert.Zero(t, out.NightsBooked)
	assert.Zero(t, out.RevenueMinor)
}
