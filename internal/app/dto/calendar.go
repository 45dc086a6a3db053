package dto

import (
	"time"

	"hostbook/internal/domain/availability"
	"hostbook/internal/domain/calendar"
)

type PlatformDot struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Color    string `json:"color"`
}

type CalendarDay struct {
	Day       int           `json:"day"`
	Date      time.Time     `json:"date"`
	Class     string        `json:"class"`
	Platforms []PlatformDot `json:"platforms,omitempty"`
	BlockID   string        `json:"block_id,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

type MonthCalendar struct {
	Month         string        `json:"month"`
	Days          []CalendarDay `json:"days"`
	WeekdayOffset int           `json:"weekday_offset"`
	PrevMonth     string        `json:"prev_month"`
	NextMonth     string        `json:"next_month"`
}

const monthFormat = "2006-01"

func MapMonthCalendar(monthAnchor time.Time, index map[int]availability.CalendarDay) MonthCalendar {
	days := make([]CalendarDay, 0, len(index))
	for d := 1; d <= len(index); d++ {
		entry, ok := index[d]
		if !ok {
			continue
		}
		out := CalendarDay{
			Day:   entry.DayNumber,
			Date:  entry.Date,
			Class: string(entry.Class),
		}
		for _, p := range entry.Platforms {
			out.Platforms = append(out.Platforms, PlatformDot{
				Platform: string(p),
				Name:     p.DisplayName(),
				Color:    p.DotColor(),
			})
		}
		if entry.Block != nil {
			out.BlockID = string(entry.Block.ID)
			out.Reason = entry.Block.Reason
		}
		days = append(days, out)
	}
	start := calendar.MonthStart(monthAnchor)
	return MonthCalendar{
		Month:         start.Format(monthFormat),
		Days:          days,
		WeekdayOffset: calendar.FirstWeekdayOffset(monthAnchor),
		PrevMonth:     calendar.ShiftMonth(start, -1).Format(monthFormat),
		NextMonth:     calendar.ShiftMonth(start, 1).Format(monthFormat),
	}
}
