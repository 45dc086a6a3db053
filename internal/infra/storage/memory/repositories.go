package memory

import (
	"context"
	"sync"

	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
)

// BookingRepository is an in-memory implementation backed by a mutex map.
type BookingRepository struct {
	mu    sync.RWMutex
	items map[domainbooking.BookingID]*domainbooking.Booking
	order []domainbooking.BookingID
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[domainbooking.BookingID]*domainbooking.Booking)}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, domainbooking.ErrBookingNotFound
	}
	return b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[b.ID]; !exists {
		r.order = append(r.order, b.ID)
	}
	r.items[b.ID] = b
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id domainbooking.BookingID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainbooking.ErrBookingNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListByProperty returns bookings for one property, or every booking when
// the filter is nil, in insertion order.
func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID *domainbooking.PropertyID) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainbooking.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.items[id]
		if propertyID != nil && b.PropertyID != *propertyID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// BlockedRepository stores blocked ranges in memory.
type BlockedRepository struct {
	mu    sync.RWMutex
	items map[domainavailability.BlockedRangeID]*domainavailability.BlockedRange
	order []domainavailability.BlockedRangeID
}

func NewBlockedRepository() *BlockedRepository {
	return &BlockedRepository{items: make(map[domainavailability.BlockedRangeID]*domainavailability.BlockedRange)}
}

func (r *BlockedRepository) ByID(ctx context.Context, id domainavailability.BlockedRangeID) (*domainavailability.BlockedRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	br, ok := r.items[id]
	if !ok {
		return nil, domainavailability.ErrBlockNotFound
	}
	return br, nil
}

func (r *BlockedRepository) Save(ctx context.Context, br *domainavailability.BlockedRange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[br.ID]; !exists {
		r.order = append(r.order, br.ID)
	}
	r.items[br.ID] = br
	return nil
}

func (r *BlockedRepository) Delete(ctx context.Context, id domainavailability.BlockedRangeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainavailability.ErrBlockNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *BlockedRepository) ListByProperty(ctx context.Context, propertyID *domainbooking.PropertyID) ([]*domainavailability.BlockedRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainavailability.BlockedRange, 0, len(r.order))
	for _, id := range r.order {
		br := r.items[id]
		if propertyID != nil && br.PropertyID != *propertyID {
			continue
		}
		out = append(out, br)
	}
	return out, nil
}

var (
	_ domainbooking.Repository             = (*BookingRepository)(nil)
	_ domainavailability.BlockedRepository = (*BlockedRepository)(nil)
)
