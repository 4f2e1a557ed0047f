package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TimeOfDay is a minute-of-day value in [0, 1440).
// Comparing minutes instead of raw "HH:MM" strings avoids the
// lexicographic pitfalls of unpadded input.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// time.Parse would accept unpadded "9:30"; require the canonical form.
	t, err := time.Parse(timeLayout, s)
	if err != nil || len(s) != len(timeLayout) {
		return 0, fmt.Errorf("%w: time %q must be in HH:MM format", ErrValidation, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDate validates a calendar date. Dates are compared for exact
// equality, so the canonical string form is kept as-is.
func ParseDate(s string) (string, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrValidation, s)
	}
	return s, nil
}

type Booking struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	RoomID       int64     `json:"room_id"`
	Date         string    `json:"date"`
	Start        TimeOfDay `json:"start"`
	End          TimeOfDay `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

// Overlaps reports whether the booking intersects the half-open
// candidate interval [start, end) on the given date. A booking ending
// at 10:00 does not conflict with one starting at 10:00.
func (b *Booking) Overlaps(date string, start, end TimeOfDay) bool {
	return b.Date == date && start < b.End && end > b.Start
}

type CreateBookingInput struct {
	CustomerName string
	RoomID       int64
	Date         string
	Start        TimeOfDay
	End          TimeOfDay
}

// CustomerBooking is a booking joined with the name of its room.
type CustomerBooking struct {
	BookingID    int64
	CustomerName string
	RoomName     string
	Date         string
	Start        TimeOfDay
	End          TimeOfDay
}

type CustomerSummary struct {
	TotalBookings int
	Records       []CustomerBooking
}
