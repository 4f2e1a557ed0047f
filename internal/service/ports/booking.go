package ports

import (
	"context"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByCustomer(ctx context.Context, name string) ([]*domain.Booking, error)
}
