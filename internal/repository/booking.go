package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

type partitionKey struct {
	roomID int64
	date   string
}

// BookingRepository is the in-memory reservation ledger. Bookings are
// append-only; the conflict scan and the insert for a (room, date)
// partition happen under one write lock, so two concurrent admissions
// for the same slot can never both pass the scan.
type BookingRepository struct {
	mu         sync.RWMutex
	all        []*domain.Booking
	byRoom     map[int64][]*domain.Booking
	partitions map[partitionKey][]*domain.Booking
	nextID     int64
}

func NewBookingRepo() *BookingRepository {
	return &BookingRepository{
		byRoom:     make(map[int64][]*domain.Booking),
		partitions: make(map[partitionKey][]*domain.Booking),
	}
}

// Create admits the booking or returns ErrBookingConflict, leaving the
// ledger untouched. The booking id is assigned on success.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := partitionKey{roomID: b.RoomID, date: b.Date}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.partitions[key] {
		if existing.Overlaps(b.Date, b.Start, b.End) {
			return fmt.Errorf("%w: %s-%s clashes with booking %d (%s-%s)",
				domain.ErrBookingConflict,
				b.Start, b.End, existing.ID, existing.Start, existing.End,
			)
		}
	}

	r.nextID++
	b.ID = r.nextID

	r.all = append(r.all, b)
	r.byRoom[b.RoomID] = append(r.byRoom[b.RoomID], b)
	r.partitions[key] = append(r.partitions[key], b)

	return nil
}

// ListByRoom returns every booking for the room, any date, in id order.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := r.byRoom[roomID]
	out := make([]*domain.Booking, len(bookings))
	copy(out, bookings)
	return out, nil
}

// ListAll returns every booking in creation order.
func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, len(r.all))
	copy(out, r.all)
	return out, nil
}

// ListByCustomer returns bookings whose customer name matches exactly,
// in creation order.
func (r *BookingRepository) ListByCustomer(ctx context.Context, name string) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Booking
	for _, b := range r.all {
		if b.CustomerName == name {
			out = append(out, b)
		}
	}
	return out, nil
}
