package dto

type RegisterRoomRequest struct {
	RoomName       string   `json:"roomName" binding:"required"`
	SeatsAvailable int      `json:"seatsAvailable" binding:"required,gt=0"`
	Amenities      []string `json:"amenities" binding:"required,min=1,dive,required"`
	PricePerHour   *float64 `json:"pricePerHour" binding:"required,gte=0"`
}

type CreateBookingRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	RoomID       int64  `json:"roomId" binding:"required,gt=0"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
}
