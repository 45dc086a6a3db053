package availability

import (
	"time"

	"hostbook/internal/domain/booking"
	"hostbook/internal/domain/calendar"
)

// DayClass classifies a calendar day for rendering and tap-gating.
type DayClass string

const (
	DayFree    DayClass = "FREE"
	DayBooked  DayClass = "BOOKED"
	DayBlocked DayClass = "BLOCKED"
	DayPast    DayClass = "PAST"
)

// maxPlatformDots caps how many distinct platform dots a day renders.
const maxPlatformDots = 3

// CalendarDay is the per-day classification for one rendered month. It is
// recomputed on every build and never persisted.
type CalendarDay struct {
	DayNumber int
	Date      time.Time
	Class     DayClass
	// Platforms holds the distinct platforms touching a booked day, in
	// first-occurrence order, at most maxPlatformDots entries.
	Platforms []booking.Platform
	// Block cites the blocked range that claimed the day, earliest start
	// wins, insertion order breaks ties.
	Block *BlockedRange
}

// Selectable reports whether a tap on this day may feed the range selector.
func (d CalendarDay) Selectable() bool {
	return d.Class == DayFree
}

// BuildIndex classifies every day of the month containing monthAnchor.
// Blocked wins over booked when records disagree; a booked-and-blocked day
// is a data inconsistency that still must render deterministically. The
// caller decides the property scope by what it passes in: handing records
// from several properties yields the union view.
func BuildIndex(monthAnchor time.Time, bookings []*booking.Booking, blocked []*BlockedRange, today time.Time) map[int]CalendarDay {
	days := calendar.DaysInMonth(monthAnchor)
	todayStart := calendar.StartOfDay(today)
	index := make(map[int]CalendarDay, days)

	for d := 1; d <= days; d++ {
		date := calendar.DateForDay(monthAnchor, d)
		entry := CalendarDay{DayNumber: d, Date: date}

		if block := claimingBlock(blocked, date); block != nil {
			entry.Class = DayBlocked
			entry.Block = block
		} else if platforms := platformsOn(bookings, date); len(platforms) > 0 {
			entry.Class = DayBooked
			entry.Platforms = platforms
		} else if date.Before(todayStart) {
			entry.Class = DayPast
		} else {
			entry.Class = DayFree
		}
		index[d] = entry
	}
	return index
}

func claimingBlock(blocked []*BlockedRange, date time.Time) *BlockedRange {
	var winner *BlockedRange
	for _, br := range blocked {
		if br == nil || br.Span.Validate() != nil {
			continue
		}
		if !br.Span.ContainsDate(date) {
			continue
		}
		if winner == nil || br.Span.Start.Before(winner.Span.Start) {
			winner = br
		}
	}
	return winner
}

func platformsOn(bookings []*booking.Booking, date time.Time) []booking.Platform {
	var platforms []booking.Platform
	for _, b := range bookings {
		if b == nil || !b.CoversDay(date) {
			continue
		}
		if containsPlatform(platforms, b.Platform) {
			continue
		}
		platforms = append(platforms, b.Platform)
		if len(platforms) == maxPlatformDots {
			break
		}
	}
	return platforms
}

func containsPlatform(platforms []booking.Platform, p booking.Platform) bool {
	for _, existing := range platforms {
		if existing == p {
			return true
		}
	}
	return false
}
