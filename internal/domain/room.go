package domain

import "time"

type Room struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	SeatsAvailable int       `json:"seats_available"`
	Amenities      []string  `json:"amenities"`
	PricePerHour   float64   `json:"price_per_hour"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterRoomInput struct {
	Name           string
	SeatsAvailable int
	Amenities      []string
	PricePerHour   float64
}

// RoomBookings is a room joined with every booking that references it.
type RoomBookings struct {
	Room     Room      `json:"room"`
	Bookings []Booking `json:"bookings"`
}
