package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/RajuPerumal/hall-booking/internal/domain"
	"github.com/RajuPerumal/hall-booking/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RoomSvc interface {
	Register(ctx context.Context, input domain.RegisterRoomInput) (*domain.Room, error)
	ListWithBookings(ctx context.Context) ([]domain.RoomBookings, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ListCustomers(ctx context.Context) ([]domain.CustomerBooking, error)
	CustomerSummary(ctx context.Context, name string) (*domain.CustomerSummary, error)
}

type Handler struct {
	roomService    RoomSvc
	bookingService BookingSvc
}

func NewHandler(roomService RoomSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		roomService:    roomService,
		bookingService: bookingService,
	}
}

// Rooms

func (h *Handler) RegisterRoom(c *ginext.Context) {
	var req dto.RegisterRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterRoomInput{
		Name:           req.RoomName,
		SeatsAvailable: req.SeatsAvailable,
		Amenities:      req.Amenities,
		PricePerHour:   *req.PricePerHour,
	}

	room, err := h.roomService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.ListWithBookings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomWithBookingsResponse, 0, len(rooms))
	for _, rb := range rooms {
		resp = append(resp, dto.ToRoomWithBookingsResponse(&rb))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateBookingInput{
		CustomerName: req.CustomerName,
		RoomID:       req.RoomID,
		Date:         req.Date,
		Start:        start,
		End:          end,
	}

	booking, err := h.bookingService.Book(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Customers

func (h *Handler) ListCustomers(c *ginext.Context) {
	records, err := h.bookingService.ListCustomers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerBookingResponse, 0, len(records))
	for _, cb := range records {
		resp = append(resp, dto.ToCustomerBookingResponse(&cb))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCustomerBookings(c *ginext.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "customer name is required"})
		return
	}

	summary, err := h.bookingService.CustomerSummary(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerSummaryResponse(summary))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBookingConflict):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
