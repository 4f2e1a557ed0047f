package dto

import (
	"time"

	"github.com/RajuPerumal/hall-booking/internal/domain"
)

type RoomResponse struct {
	ID             int64    `json:"id"`
	RoomName       string   `json:"roomName"`
	SeatsAvailable int      `json:"seatsAvailable"`
	Amenities      []string `json:"amenities"`
	PricePerHour   float64  `json:"pricePerHour"`
	CreatedAt      string   `json:"createdAt"`
}

type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	RoomID       int64  `json:"roomId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	CreatedAt    string `json:"createdAt"`
}

type RoomWithBookingsResponse struct {
	RoomResponse
	Bookings []BookingResponse `json:"bookings"`
}

// CustomerBookingResponse is one entry of the all-customers listing.
type CustomerBookingResponse struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// CustomerRecordResponse additionally carries the booking id, matching
// the per-customer endpoint.
type CustomerRecordResponse struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingID    int64  `json:"bookingId"`
}

type CustomerSummaryResponse struct {
	TotalBookings int                      `json:"totalBookings"`
	Records       []CustomerRecordResponse `json:"records"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:             r.ID,
		RoomName:       r.Name,
		SeatsAvailable: r.SeatsAvailable,
		Amenities:      r.Amenities,
		PricePerHour:   r.PricePerHour,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		RoomID:       b.RoomID,
		Date:         b.Date,
		StartTime:    b.Start.String(),
		EndTime:      b.End.String(),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomWithBookingsResponse(rb *domain.RoomBookings) RoomWithBookingsResponse {
	bookings := make([]BookingResponse, 0, len(rb.Bookings))
	for _, b := range rb.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return RoomWithBookingsResponse{
		RoomResponse: ToRoomResponse(&rb.Room),
		Bookings:     bookings,
	}
}

func ToCustomerBookingResponse(cb *domain.CustomerBooking) CustomerBookingResponse {
	return CustomerBookingResponse{
		CustomerName: cb.CustomerName,
		RoomName:     cb.RoomName,
		Date:         cb.Date,
		StartTime:    cb.Start.String(),
		EndTime:      cb.End.String(),
	}
}

func ToCustomerSummaryResponse(s *domain.CustomerSummary) CustomerSummaryResponse {
	records := make([]CustomerRecordResponse, 0, len(s.Records))
	for _, r := range s.Records {
		records = append(records, CustomerRecordResponse{
			CustomerName: r.CustomerName,
			RoomName:     r.RoomName,
			Date:         r.Date,
			StartTime:    r.Start.String(),
			EndTime:      r.End.String(),
			BookingID:    r.BookingID,
		})
	}

	return CustomerSummaryResponse{
		TotalBookings: s.TotalBookings,
		Records:       records,
	}
}
