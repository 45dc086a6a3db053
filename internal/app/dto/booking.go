package dto

import (
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/bucketing"
)

type Booking struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	GuestName   string    `json:"guest_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Nights      int       `json:"nights"`
	Platform    string    `json:"platform"`
	AmountMinor int64     `json:"amount_minor"`
}

func MapBooking(b *booking.Booking) Booking {
	if b == nil {
		return Booking{}
	}
	return Booking{
		ID:          string(b.ID),
		PropertyID:  string(b.PropertyID),
		GuestName:   b.GuestName,
		CheckIn:     b.Range.CheckIn,
		CheckOut:    b.Range.CheckOut,
		Nights:      b.Range.Nights(),
		Platform:    string(b.Platform),
		AmountMinor: b.AmountMinor,
	}
}

func MapBookings(list []*booking.Booking) []Booking {
	out := make([]Booking, 0, len(list))
	for _, b := range list {
		out = append(out, MapBooking(b))
	}
	return out
}

type BookingGroup struct {
	Name     string    `json:"name"`
	Bookings []Booking `json:"bookings"`
}

type BookingBuckets struct {
	Filter string         `json:"filter"`
	Total  int            `json:"total"`
	Groups []BookingGroup `json:"groups"`
}

func MapGroups(groups []bucketing.Group) []BookingGroup {
	out := make([]BookingGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, BookingGroup{Name: g.Name, Bookings: MapBookings(g.Bookings)})
	}
	return out
}

type BlockedRange struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

type PropertyOverview struct {
	PropertyID       string  `json:"property_id"`
	Month            string  `json:"month"`
	OccupancyPercent float64 `json:"occupancy_percent"`
	NightsBooked     int     `json:"nights_booked"`
	DaysInMonth      int     `json:"days_in_month"`
	UpcomingCount    int     `json:"upcoming_count"`
	CurrentCount     int     `json:"current_count"`
	RevenueMinor     int64   `json:"revenue_minor"`
}
