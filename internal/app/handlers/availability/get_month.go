package availability

import (
	"context"
	"time"

	"hostbook/internal/app/dto"
	"hostbook/internal/app/queries"
	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
)

const getMonthKey = "availability.month"

type GetMonthQuery struct {
	// PropertyID empty means the union across all properties.
	PropertyID string
	Month      time.Time
	Today      time.Time
}

func (q GetMonthQuery) Key() string { return getMonthKey }

type GetMonthHandler struct {
	Bookings domainbooking.Repository
	Blocked  domainavailability.BlockedRepository
}

func (h *GetMonthHandler) Handle(ctx context.Context, q GetMonthQuery) (dto.MonthCalendar, error) {
	var filter *domainbooking.PropertyID
	if q.PropertyID != "" {
		id := domainbooking.PropertyID(q.PropertyID)
		filter = &id
	}

	bookings, err := h.Bookings.ListByProperty(ctx, filter)
	if err != nil {
		return dto.MonthCalendar{}, err
	}
	blocked, err := h.Blocked.ListByProperty(ctx, filter)
	if err != nil {
		return dto.MonthCalendar{}, err
	}

	index := domainavailability.BuildIndex(q.Month, bookings, blocked, q.Today)
	return dto.MapMonthCalendar(q.Month, index), nil
}

var _ queries.Handler[GetMonthQuery, dto.MonthCalendar] = (*GetMonthHandler)(nil)
