package calendar

import "time"

// Pure month-grid math. Every function takes its anchor explicitly; nothing
// in this package reads the wall clock.

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns midnight on the first day of the month containing anchor.
func MonthStart(anchor time.Time) time.Time {
	anchor = anchor.UTC()
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight on the last day of the month containing anchor.
func MonthEnd(anchor time.Time) time.Time {
	return MonthStart(anchor).AddDate(0, 1, -1)
}

// DaysInMonth returns the day count (28..31) of the month containing anchor.
func DaysInMonth(anchor time.Time) int {
	return MonthEnd(anchor).Day()
}

// FirstWeekdayOffset returns the number of leading empty cells before day 1
// in a 7-column, Sunday-first grid, in [0,6].
func FirstWeekdayOffset(anchor time.Time) int {
	return int(MonthStart(anchor).Weekday())
}

// DateForDay returns midnight on the given day number within anchor's month.
// Day numbers outside [1, DaysInMonth] are clamped to the nearest valid day.
func DateForDay(anchor time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if max := DaysInMonth(anchor); day > max {
		day = max
	}
	return MonthStart(anchor).AddDate(0, 0, day-1)
}

// ShiftMonth moves anchor by delta months, preserving the day-of-month where
// the target month has one, else falling back to the target month's start.
func ShiftMonth(anchor time.Time, delta int) time.Time {
	anchor = anchor.UTC()
	target := MonthStart(anchor).AddDate(0, delta, 0)
	if d := anchor.Day(); d <= DaysInMonth(target) {
		return target.AddDate(0, 0, d-1)
	}
	return target
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// WeekdayNumber returns the 1=Sunday..7=Saturday number for t.
func WeekdayNumber(t time.Time) int {
	return int(t.UTC().Weekday()) + 1
}

// EndOfWeek returns midnight on the Saturday that closes the week containing
// t, with weeks running Sunday through Saturday.
func EndOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, 7-WeekdayNumber(d))
}
