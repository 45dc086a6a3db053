package booking

import (
	"context"
	"time"

	"hostbook/internal/app/dto"
	"hostbook/internal/app/queries"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/bucketing"
)

const listBucketsKey = "booking.buckets"

type ListBucketsQuery struct {
	// PropertyID empty means all properties.
	PropertyID string
	Filter     bucketing.Filter
	Now        time.Time
}

func (q ListBucketsQuery) Key() string { return listBucketsKey }

type ListBucketsHandler struct {
	Bookings domainbooking.Repository
}

func (h *ListBucketsHandler) Handle(ctx context.Context, q ListBucketsQuery) (dto.BookingBuckets, error) {
	var filter *domainbooking.PropertyID
	if q.PropertyID != "" {
		id := domainbooking.PropertyID(q.PropertyID)
		filter = &id
	}
	all, err := h.Bookings.ListByProperty(ctx, filter)
	if err != nil {
		return dto.BookingBuckets{}, err
	}

	parts := bucketing.Partition(all, q.Now)
	out := dto.BookingBuckets{Filter: string(q.Filter)}
	switch q.Filter {
	case bucketing.FilterCurrent:
		out.Total = len(parts.Current)
		if len(parts.Current) > 0 {
			out.Groups = []dto.BookingGroup{{Name: "Current", Bookings: dto.MapBookings(parts.Current)}}
		}
	case bucketing.FilterPast:
		out.Total = len(parts.Past)
		if len(parts.Past) > 0 {
			out.Groups = []dto.BookingGroup{{Name: "Past", Bookings: dto.MapBookings(parts.Past)}}
		}
	default:
		out.Filter = string(bucketing.FilterUpcoming)
		out.Total = len(parts.Upcoming)
		out.Groups = dto.MapGroups(bucketing.BucketUpcoming(parts.Upcoming, q.Now))
	}
	return out, nil
}

var _ queries.Handler[ListBucketsQuery, dto.BookingBuckets] = (*ListBucketsHandler)(nil)
