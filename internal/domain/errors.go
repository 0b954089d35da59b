package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateMovie      = errors.New("movie already exists")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrInvalidCoordinates  = errors.New("invalid seat coordinates")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrSeatAlreadyReserved = errors.New("seat is already reserved")
	ErrReservationNotFound = errors.New("reservation not found")
)
