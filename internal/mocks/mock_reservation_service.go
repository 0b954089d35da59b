package mocks

import (
	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationService struct {
	mock.Mock
	domain.ReservationService
}

func (m *MockReservationService) AddMovie(id int, title string, durationMinutes int) (*domain.Movie, error) {
	args := m.Called(id, title, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockReservationService) ListMovies() []domain.Movie {
	args := m.Called()
	return args.Get(0).([]domain.Movie)
}

func (m *MockReservationService) GetMovie(movieID int) (*domain.Movie, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockReservationService) GetSeats(movieID int) ([]domain.Seat, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockReservationService) GetSeat(movieID, row, number int) (*domain.Seat, error) {
	args := m.Called(movieID, row, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockReservationService) Reserve(movieID, row, number int, userName string) (*domain.Reservation, error) {
	args := m.Called(movieID, row, number, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ListReservations() []domain.Reservation {
	args := m.Called()
	return args.Get(0).([]domain.Reservation)
}

func (m *MockReservationService) GetReservation(id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Layout() domain.SeatLayout {
	args := m.Called()
	return args.Get(0).(domain.SeatLayout)
}
