package property

import (
	"context"
	"time"

	"hostbook/internal/app/dto"
	"hostbook/internal/app/queries"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/bucketing"
	"hostbook/internal/domain/calendar"
	"hostbook/internal/domain/occupancy"
)

const getOverviewKey = "property.overview"

type GetOverviewQuery struct {
	PropertyID string
	Month      time.Time
	Now        time.Time
}

func (q GetOverviewQuery) Key() string { return getOverviewKey }

type GetOverviewHandler struct {
	Bookings domainbooking.Repository
}

func (h *GetOverviewHandler) Handle(ctx context.Context, q GetOverviewQuery) (dto.PropertyOverview, error) {
	id := domainbooking.PropertyID(q.PropertyID)
	bookings, err := h.Bookings.ListByProperty(ctx, &id)
	if err != nil {
		return dto.PropertyOverview{}, err
	}

	parts := bucketing.Partition(bookings, q.Now)

	// Month revenue sums bookings whose stay touches the month at all.
	monthStart := calendar.MonthStart(q.Month)
	nextMonth := calendar.ShiftMonth(monthStart, 1)
	var revenue int64
	for _, b := range bookings {
		if b.Range.Validate() != nil {
			continue
		}
		if b.Range.CheckIn.Before(nextMonth) && b.Range.CheckOut.After(monthStart) {
			revenue += b.AmountMinor
		}
	}

	return dto.PropertyOverview{
		PropertyID:       q.PropertyID,
		Month:            monthStart.Format("2006-01"),
		OccupancyPercent: occupancy.Percent(q.Month, bookings),
		NightsBooked:     occupancy.NightsInMonth(q.Month, bookings),
		DaysInMonth:      calendar.DaysInMonth(q.Month),
		UpcomingCount:    len(parts.Upcoming),
		CurrentCount:     len(parts.Current),
		RevenueMinor:     revenue,
	}, nil
}

var _ queries.Handler[GetOverviewQuery, dto.PropertyOverview] = (*GetOverviewHandler)(nil)
