package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RajuPerumal/hall-booking/internal/domain"
	"github.com/RajuPerumal/hall-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book runs the admission sequence: validate, resolve the room, then
// hand the conflict scan and insert to the ledger as one atomic unit.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if input.RoomID <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", domain.ErrValidation)
	}
	if _, err := domain.ParseDate(input.Date); err != nil {
		return nil, err
	}
	if input.End <= input.Start {
		return nil, fmt.Errorf("%w: start time %s must be before end time %s",
			domain.ErrValidation, input.Start, input.End)
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	booking := &domain.Booking{
		CustomerName: input.CustomerName,
		RoomID:       input.RoomID,
		Date:         input.Date,
		Start:        input.Start,
		End:          input.End,
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("room_id", booking.RoomID),
		logger.String("customer", booking.CustomerName),
		logger.String("date", booking.Date),
		logger.String("start", booking.Start.String()),
		logger.String("end", booking.End.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, room)

	return booking, nil
}

// ListCustomers returns one record per booking in creation order,
// joined against the room directory.
func (s *BookingService) ListCustomers(ctx context.Context) ([]domain.CustomerBooking, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]domain.CustomerBooking, 0, len(bookings))
	for _, b := range bookings {
		room, err := s.roomRepo.GetByID(ctx, b.RoomID)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d -> room %d", domain.ErrIntegrity, b.ID, b.RoomID)
		}
		out = append(out, domain.CustomerBooking{
			BookingID:    b.ID,
			CustomerName: b.CustomerName,
			RoomName:     room.Name,
			Date:         b.Date,
			Start:        b.Start,
			End:          b.End,
		})
	}

	return out, nil
}

// CustomerSummary returns the bookings of one customer by exact name
// match. An unknown name yields an empty summary, not an error.
func (s *BookingService) CustomerSummary(ctx context.Context, name string) (*domain.CustomerSummary, error) {
	bookings, err := s.bookingRepo.ListByCustomer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list bookings for customer: %w", err)
	}

	summary := &domain.CustomerSummary{
		TotalBookings: len(bookings),
		Records:       make([]domain.CustomerBooking, 0, len(bookings)),
	}
	for _, b := range bookings {
		room, err := s.roomRepo.GetByID(ctx, b.RoomID)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d -> room %d", domain.ErrIntegrity, b.ID, b.RoomID)
		}
		summary.Records = append(summary.Records, domain.CustomerBooking{
			BookingID:    b.ID,
			CustomerName: b.CustomerName,
			RoomName:     room.Name,
			Date:         b.Date,
			Start:        b.Start,
			End:          b.End,
		})
	}

	return summary, nil
}
