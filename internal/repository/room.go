package repository

import (
	"context"
	"sync"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

// RoomRepository is the in-memory room directory. It owns the room id
// counter; ids are monotonic and decoupled from storage position.
type RoomRepository struct {
	mu     sync.RWMutex
	rooms  []*domain.Room
	byID   map[int64]*domain.Room
	nextID int64
}

func NewRoomRepo() *RoomRepository {
	return &RoomRepository{
		byID: make(map[int64]*domain.Room),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	room.ID = r.nextID
	r.rooms = append(r.rooms, room)
	r.byID[room.ID] = room

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

// List returns rooms in insertion order. Rooms are immutable after
// registration, so sharing the pointers is safe.
func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}
