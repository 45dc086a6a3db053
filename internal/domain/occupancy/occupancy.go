package occupancy

import (
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/calendar"
)

// Percent returns the share of the month's days covered by at least one
// booking night, in [0,100]. Days are de-duplicated: overlapping stays count
// a day once. Malformed records cover nothing. A month with no covered days
// yields exactly 0.
func Percent(monthAnchor time.Time, bookings []*booking.Booking) float64 {
	days := calendar.DaysInMonth(monthAnchor)
	if days == 0 {
		return 0
	}
	covered := 0
	for d := 1; d <= days; d++ {
		date := calendar.DateForDay(monthAnchor, d)
		for _, b := range bookings {
			if b != nil && b.CoversDay(date) {
				covered++
				break
			}
		}
	}
	if covered == 0 {
		return 0
	}
	return float64(covered) / float64(days) * 100
}

// NightsInMonth counts the distinct covered days Percent is built from,
// for displays that show "18 / 31 nights".
func NightsInMonth(monthAnchor time.Time, bookings []*booking.Booking) int {
	days := calendar.DaysInMonth(monthAnchor)
	covered := 0
	for d := 1; d <= days; d++ {
		date := calendar.DateForDay(monthAnchor, d)
		for _, b := range bookings {
			if b != nil && b.CoversDay(date) {
				covered++
				break
			}
		}
	}
	return covered
}
