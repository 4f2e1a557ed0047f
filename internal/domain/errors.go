package domain

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
)

var (
	ErrBookingConflict = errors.New("room is already booked for this time")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrIntegrity marks a booking referencing a room the directory can no
// longer resolve. The admission protocol makes this unreachable; it is
// kept so the join queries fail loudly instead of inventing data.
var (
	ErrIntegrity = errors.New("booking references unknown room")
)
