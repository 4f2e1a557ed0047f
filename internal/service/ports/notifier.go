package ports

import (
	"context"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, room *domain.Room)
}
