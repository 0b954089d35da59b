package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	DefaultRows        = 5
	DefaultSeatsPerRow = 10
)

// SeatLayout describes the seat grid shared by every movie of a cinema.
// Rows and seat numbers are 1-based.
type SeatLayout struct {
	Rows        int
	SeatsPerRow int
}

func DefaultSeatLayout() SeatLayout {
	return SeatLayout{
		Rows:        DefaultRows,
		SeatsPerRow: DefaultSeatsPerRow,
	}
}

func (l SeatLayout) Capacity() int {
	return l.Rows * l.SeatsPerRow
}

func (l SeatLayout) Contains(row, number int) bool {
	return row >= 1 && row <= l.Rows && number >= 1 && number <= l.SeatsPerRow
}

// Index returns the position of a seat in a flat, row-major grid.
// The caller must check Contains first.
func (l SeatLayout) Index(row, number int) int {
	return (row-1)*l.SeatsPerRow + (number - 1)
}

func (l SeatLayout) Validate() error {
	if l.Rows < 1 || l.SeatsPerRow < 1 {
		return fmt.Errorf("%w: seat layout must have at least one row and one seat per row, got %dx%d",
			ErrInvalidInput, l.Rows, l.SeatsPerRow)
	}

	return nil
}

type Seat struct {
	Row           int
	Number        int
	Reserved      bool
	ReservedBy    string
	ReservationID uuid.UUID
}

func (s Seat) Label() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Number)
}
