package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbook/internal/infra/storage/memory"
)

func TestGetMonthSingleProperty(t *testing.T) {
	bookings := memory.NewBookingRepository()
	blocked := memory.NewBlockedRepository()
	seedStay(t, bookings, "b1", "p1", day(2024, time.March, 10), day(2024, time.March, 13))
	seedStay(t, bookings, "b2", "p2", day(2024, time.March, 20), day(2024, time.March, 22))

	h := &GetMonthHandler{Bookings: bookings, Blocked: blocked}
	out, err := h.Handle(context.Background(), GetMonthQuery{
		PropertyID: "p1",
		Month:      day(2024, time.March, 1),
		Today:      day(2024, time.March, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", out.Month)
	assert.Equal(t, "2024-02", out.PrevMonth)
	assert.Equal(t, "2024-04", out.NextMonth)
	// March 1 2024 is a Friday.
	assert.Equal(t, 5, out.WeekdayOffset)
	require.Len(t, out.Days, 31)

	assert.Equal(t, "BOOKED", out.Days[9].Class)
	require.Len(t, out.Days[9].Platforms, 1)
	assert.Equal(t, "Vrbo", out.Days[9].Platforms[0].Name)
	// The other property's booking is out of scope for p1.
	assert.Equal(t, "FREE", out.Days[19].Class)
}

func TestGetMonthUnionAcrossProperties(t *testing.T) {
	bookings := memory.NewBookingRepository()
	blocked := memory.NewBlockedRepository()
	seedStay(t, bookings, "b1", "p1", day(2024, time.March, 10), day(2024, time.March, 13))
	seedStay(t, bookings, "b2", "p2", day(2024, time.March, 20), day(2024, time.March, 22))

	h := &GetMonthHandler{Bookings: bookings, Blocked: blocked}
	out, err := h.Handle(context.Background(), GetMonthQuery{
		Month: day(2024, time.March, 1),
		Today: day(2024, time.March, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "BOOKED", out.Days[9].Class)
	assert.Equal(t, "BOOKED", out.Days[19].Class)
}
