package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RajuPerumal/hall-booking/internal/domain"
	"github.com/RajuPerumal/hall-booking/internal/service/ports"
)

type RoomService struct {
	repo        ports.RoomRepo
	bookingRepo ports.BookingRepo
}

func NewRoomService(repo ports.RoomRepo, bookingRepo ports.BookingRepo) *RoomService {
	return &RoomService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *RoomService) Register(ctx context.Context, input domain.RegisterRoomInput) (*domain.Room, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: room name is required", domain.ErrValidation)
	}
	if input.SeatsAvailable <= 0 {
		return nil, fmt.Errorf("%w: seats_available must be positive", domain.ErrValidation)
	}
	if len(input.Amenities) == 0 {
		return nil, fmt.Errorf("%w: at least one amenity is required", domain.ErrValidation)
	}
	for _, a := range input.Amenities {
		if a == "" {
			return nil, fmt.Errorf("%w: amenities must be non-empty strings", domain.ErrValidation)
		}
	}
	if input.PricePerHour < 0 {
		return nil, fmt.Errorf("%w: price_per_hour must not be negative", domain.ErrValidation)
	}

	room := &domain.Room{
		Name:           input.Name,
		SeatsAvailable: input.SeatsAvailable,
		Amenities:      input.Amenities,
		PricePerHour:   input.PricePerHour,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

// ListWithBookings returns every room in directory order, each with all
// bookings referencing it in booking-id order.
func (s *RoomService) ListWithBookings(ctx context.Context) ([]domain.RoomBookings, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	out := make([]domain.RoomBookings, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.bookingRepo.ListByRoom(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("list bookings for room %d: %w", room.ID, err)
		}

		rb := domain.RoomBookings{
			Room:     *room,
			Bookings: make([]domain.Booking, 0, len(bookings)),
		}
		for _, b := range bookings {
			rb.Bookings = append(rb.Bookings, *b)
		}
		out = append(out, rb)
	}

	return out, nil
}
