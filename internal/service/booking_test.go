package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/RajuPerumal/hall-booking/internal/domain"
	"github.com/RajuPerumal/hall-booking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// stubNotifier records notified booking ids.
type stubNotifier struct {
	mu      sync.Mutex
	created []int64
}

func (n *stubNotifier) NotifyBookingCreated(_ context.Context, b *domain.Booking, _ *domain.Room) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b.ID)
}

func (n *stubNotifier) createdIDs() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]int64, len(n.created))
	copy(out, n.created)
	return out
}

type bookingFixture struct {
	roomRepo    *repository.RoomRepository
	bookingRepo *repository.BookingRepository
	notifier    *stubNotifier
	rooms       *RoomService
	bookings    *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	roomRepo := repository.NewRoomRepo()
	bookingRepo := repository.NewBookingRepo()
	notifier := &stubNotifier{}

	return &bookingFixture{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		rooms:       NewRoomService(roomRepo, bookingRepo),
		bookings:    NewBookingService(bookingRepo, roomRepo, notifier, newTestLogger(t)),
	}
}

func (f *bookingFixture) registerRoom(t *testing.T, name string) *domain.Room {
	t.Helper()
	room, err := f.rooms.Register(context.Background(), domain.RegisterRoomInput{
		Name:           name,
		SeatsAvailable: 8,
		Amenities:      []string{"whiteboard"},
		PricePerHour:   15,
	})
	require.NoError(t, err)
	return room
}

func bookingInput(t *testing.T, customer string, roomID int64, date, start, end string) domain.CreateBookingInput {
	t.Helper()
	s, err := domain.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := domain.ParseTimeOfDay(end)
	require.NoError(t, err)
	return domain.CreateBookingInput{
		CustomerName: customer,
		RoomID:       roomID,
		Date:         date,
		Start:        s,
		End:          e,
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	booking, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-01", "09:00", "10:00"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, room.ID, booking.RoomID)
	assert.Equal(t, "Alice", booking.CustomerName)

	assert.Eventually(t, func() bool {
		ids := f.notifier.createdIDs()
		return len(ids) == 1 && ids[0] == booking.ID
	}, time.Second, 10*time.Millisecond, "notifier goroutine")
}

func TestBookingService_Book_MissingCustomer(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "", room.ID, "2024-01-01", "09:00", "10:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_InvalidDate(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		domain.CreateBookingInput{
			CustomerName: "Alice",
			RoomID:       room.ID,
			Date:         "01/01/2024",
			Start:        9 * 60,
			End:          10 * 60,
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_InvertedInterval(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-01", "10:00", "09:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_ZeroLengthInterval(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-01", "09:00", "09:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_RoomNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", 42, "2024-01-01", "09:00", "10:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	all, err := f.bookingRepo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "ledger must stay unchanged")
}

func TestBookingService_Book_Conflict(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-01", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.bookings.Book(context.Background(),
		bookingInput(t, "Bob", room.ID, "2024-01-01", "09:30", "10:30"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)

	// the conflict must not have reached the notifier
	assert.Eventually(t, func() bool {
		return len(f.notifier.createdIDs()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestBookingService_ListCustomers(t *testing.T) {
	f := newBookingFixture(t)
	board := f.registerRoom(t, "Boardroom")
	huddle := f.registerRoom(t, "Huddle")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", board.ID, "2024-01-01", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.bookings.Book(context.Background(),
		bookingInput(t, "Bob", huddle.ID, "2024-01-01", "09:00", "10:00"))
	require.NoError(t, err)

	records, err := f.bookings.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Alice", records[0].CustomerName)
	assert.Equal(t, "Boardroom", records[0].RoomName)
	assert.Equal(t, "Bob", records[1].CustomerName)
	assert.Equal(t, "Huddle", records[1].RoomName)
}

func TestBookingService_CustomerSummary(t *testing.T) {
	f := newBookingFixture(t)
	room := f.registerRoom(t, "Boardroom")

	_, err := f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-01", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.bookings.Book(context.Background(),
		bookingInput(t, "Bob", room.ID, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	_, err = f.bookings.Book(context.Background(),
		bookingInput(t, "Alice", room.ID, "2024-01-02", "09:00", "10:00"))
	require.NoError(t, err)

	summary, err := f.bookings.CustomerSummary(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalBookings)
	require.Len(t, summary.Records, 2)
	assert.Equal(t, int64(1), summary.Records[0].BookingID)
	assert.Equal(t, int64(3), summary.Records[1].BookingID)
	assert.Equal(t, "Boardroom", summary.Records[0].RoomName)
}

func TestBookingService_CustomerSummary_UnknownName(t *testing.T) {
	f := newBookingFixture(t)

	summary, err := f.bookings.CustomerSummary(context.Background(), "Carol")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalBookings)
	assert.NotNil(t, summary.Records)
	assert.Empty(t, summary.Records)
}
