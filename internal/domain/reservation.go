package domain

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID         uuid.UUID
	MovieID    int
	MovieTitle string
	Row        int
	Number     int
	UserName   string
	CreatedAt  time.Time
}

// ReservationService owns movies, their seat grids and the reservations made
// against them. Implementations must keep seat and reservation state in sync
// after every call.
type ReservationService interface {
	AddMovie(id int, title string, durationMinutes int) (*Movie, error)
	ListMovies() []Movie
	GetMovie(movieID int) (*Movie, error)
	GetSeats(movieID int) ([]Seat, error)
	GetSeat(movieID, row, number int) (*Seat, error)
	Reserve(movieID, row, number int, userName string) (*Reservation, error)
	ListReservations() []Reservation
	GetReservation(id uuid.UUID) (*Reservation, error)
	Cancel(id uuid.UUID) (*Reservation, error)
	Layout() SeatLayout
}
