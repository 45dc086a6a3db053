package bucketing

import (
	"sort"
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/calendar"
)

// Filter is the primary list classification.
type Filter string

const (
	FilterUpcoming Filter = "UPCOMING"
	FilterCurrent  Filter = "CURRENT"
	FilterPast     Filter = "PAST"
)

// Classify places a booking in exactly one filter relative to now. The
// "current" test treats the checkout day as inclusive: a guest checking out
// today is still current today, even though the same day is free for a new
// arrival on the calendar.
func Classify(b *booking.Booking, now time.Time) Filter {
	today := calendar.StartOfDay(now)
	if b.Range.CheckIn.After(today) {
		return FilterUpcoming
	}
	if !b.Range.CheckOut.Before(today) {
		return FilterCurrent
	}
	return FilterPast
}

// Partitioned holds one booking list per filter, each in display order:
// upcoming and current soonest first, past most recent first.
type Partitioned struct {
	Upcoming []*booking.Booking
	Current  []*booking.Booking
	Past     []*booking.Booking
}

// Partition splits and sorts bookings for list display. Output slices are
// built fresh on every call and never cached.
func Partition(bookings []*booking.Booking, now time.Time) Partitioned {
	var out Partitioned
	for _, b := range bookings {
		if b == nil {
			continue
		}
		switch Classify(b, now) {
		case FilterUpcoming:
			out.Upcoming = append(out.Upcoming, b)
		case FilterCurrent:
			out.Current = append(out.Current, b)
		default:
			out.Past = append(out.Past, b)
		}
	}
	byCheckInAsc := func(list []*booking.Booking) func(i, j int) bool {
		return func(i, j int) bool { return list[i].Range.CheckIn.Before(list[j].Range.CheckIn) }
	}
	sort.Slice(out.Upcoming, byCheckInAsc(out.Upcoming))
	sort.Slice(out.Current, byCheckInAsc(out.Current))
	sort.Slice(out.Past, func(i, j int) bool {
		return out.Past[i].Range.CheckIn.After(out.Past[j].Range.CheckIn)
	})
	return out
}

// Horizon group names, in display order.
const (
	GroupThisWeek       = "This Week"
	GroupNextWeek       = "Next Week"
	GroupLaterThisMonth = "Later This Month"
	// GroupUpcoming is the terminal catch-all for everything further out.
	GroupUpcoming = "Upcoming"
)

// Group is a named, ordered slice of bookings for one time horizon.
type Group struct {
	Name     string
	Bookings []*booking.Booking
}

// BucketUpcoming splits upcoming bookings into week-horizon groups by
// checkin date. Weeks close on Saturday; "this week" runs through the
// Saturday after now, "next week" seven days further, "later this month"
// through the month end. First match wins. Empty groups are omitted.
func BucketUpcoming(upcoming []*booking.Booking, now time.Time) []Group {
	endOfThisWeek := calendar.EndOfWeek(now)
	endOfNextWeek := endOfThisWeek.AddDate(0, 0, 7)
	monthEnd := calendar.MonthEnd(now)

	named := map[string][]*booking.Booking{}
	for _, b := range upcoming {
		if b == nil {
			continue
		}
		checkIn := calendar.StartOfDay(b.Range.CheckIn)
		name := GroupUpcoming
		switch {
		case !checkIn.After(endOfThisWeek):
			name = GroupThisWeek
		case !checkIn.After(endOfNextWeek):
			name = GroupNextWeek
		case !checkIn.After(monthEnd):
			name = GroupLaterThisMonth
		}
		named[name] = append(named[name], b)
	}

	var groups []Group
	for _, name := range []string{GroupThisWeek, GroupNextWeek, GroupLaterThisMonth, GroupUpcoming} {
		if list := named[name]; len(list) > 0 {
			groups = append(groups, Group{Name: name, Bookings: list})
		}
	}
	return groups
}
