package ports

import (
	"context"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}
