package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
)

// maxIDAttempts bounds how many times Reserve asks the generator for a fresh
// id before giving up. Only a broken generator ever gets close.
const maxIDAttempts = 8

type movieEntry struct {
	movie domain.Movie
	seats []domain.Seat
}

type reservationEntry struct {
	reservation domain.Reservation
	seq         uint64
}

// ReservationService is the in-memory implementation of domain.ReservationService.
// A single lock guards movies, seat grids and reservations so that the
// check-then-act sequences in Reserve and Cancel never interleave.
type ReservationService struct {
	mu sync.RWMutex

	layout       domain.SeatLayout
	newID        func() uuid.UUID
	now          func() time.Time
	movies       map[int]*movieEntry
	movieOrder   []int
	reservations map[uuid.UUID]*reservationEntry
	retired      map[uuid.UUID]struct{}
	seq          uint64
}

type Option func(*ReservationService)

func WithLayout(layout domain.SeatLayout) Option {
	return func(s *ReservationService) {
		s.layout = layout
	}
}

func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *ReservationService) {
		s.newID = fn
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *ReservationService) {
		s.now = fn
	}
}

func NewReservationService(opts ...Option) (*ReservationService, error) {
	s := &ReservationService{
		layout:       domain.DefaultSeatLayout(),
		newID:        uuid.New,
		now:          time.Now,
		movies:       make(map[int]*movieEntry),
		reservations: make(map[uuid.UUID]*reservationEntry),
		retired:      make(map[uuid.UUID]struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	err := s.layout.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ReservationService) Layout() domain.SeatLayout {
	return s.layout
}

func (s *ReservationService) AddMovie(id int, title string, durationMinutes int) (*domain.Movie, error) {
	switch {
	case id < 1:
		return nil, fmt.Errorf("%w: movie id must be a positive integer", domain.ErrInvalidInput)
	case strings.TrimSpace(title) == "":
		return nil, fmt.Errorf("%w: movie title must not be empty", domain.ErrInvalidInput)
	case durationMinutes < 1:
		return nil, fmt.Errorf("%w: movie duration must be a positive number of minutes", domain.ErrInvalidInput)
	}

	// The grid is built before taking the lock and published together with
	// the movie, so no reader ever sees a movie without all of its seats.
	seats := s.newSeatGrid()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.movies[id]; exists {
		return nil, fmt.Errorf("movie %d: %w", id, domain.ErrDuplicateMovie)
	}

	entry := &movieEntry{
		movie: domain.Movie{
			ID:              id,
			Title:           title,
			DurationMinutes: durationMinutes,
		},
		seats: seats,
	}

	s.movies[id] = entry
	s.movieOrder = append(s.movieOrder, id)

	movie := entry.movie
	return &movie, nil
}

func (s *ReservationService) newSeatGrid() []domain.Seat {
	seats := make([]domain.Seat, 0, s.layout.Capacity())

	for row := 1; row <= s.layout.Rows; row++ {
		for number := 1; number <= s.layout.SeatsPerRow; number++ {
			seats = append(seats, domain.Seat{Row: row, Number: number})
		}
	}

	return seats
}

func (s *ReservationService) ListMovies() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]domain.Movie, 0, len(s.movieOrder))
	for _, id := range s.movieOrder {
		movies = append(movies, s.movies[id].movie)
	}

	return movies
}

func (s *ReservationService) GetMovie(movieID int) (*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", movieID, domain.ErrMovieNotFound)
	}

	movie := entry.movie
	return &movie, nil
}

func (s *ReservationService) GetSeats(movieID int) ([]domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", movieID, domain.ErrMovieNotFound)
	}

	return slices.Clone(entry.seats), nil
}

func (s *ReservationService) GetSeat(movieID, row, number int) (*domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seat, err := s.lookupSeat(movieID, row, number)
	if err != nil {
		return nil, err
	}

	copied := *seat
	return &copied, nil
}

// lookupSeat resolves a seat in the order movie, coordinates, seat. Callers
// must hold the lock.
func (s *ReservationService) lookupSeat(movieID, row, number int) (*domain.Seat, error) {
	entry, ok := s.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", movieID, domain.ErrMovieNotFound)
	}

	if !s.layout.Contains(row, number) {
		return nil, fmt.Errorf("seat %d-%d: %w", row, number, domain.ErrInvalidCoordinates)
	}

	idx := s.layout.Index(row, number)
	if idx >= len(entry.seats) {
		return nil, fmt.Errorf("movie %d seat %d-%d: %w", movieID, row, number, domain.ErrSeatNotFound)
	}

	seat := &entry.seats[idx]
	if seat.Row != row || seat.Number != number {
		return nil, fmt.Errorf("movie %d seat %d-%d: %w", movieID, row, number, domain.ErrSeatNotFound)
	}

	return seat, nil
}

func (s *ReservationService) Reserve(movieID, row, number int, userName string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, err := s.lookupSeat(movieID, row, number)
	if err != nil {
		return nil, err
	}

	if seat.Reserved {
		return nil, fmt.Errorf("movie %d seat %s: %w", movieID, seat.Label(), domain.ErrSeatAlreadyReserved)
	}

	if strings.TrimSpace(userName) == "" {
		return nil, fmt.Errorf("%w: user name must not be empty", domain.ErrInvalidInput)
	}

	id, err := s.nextReservationID()
	if err != nil {
		return nil, err
	}

	// Nothing below can fail, so the seat and the record change together.
	s.seq++
	entry := &reservationEntry{
		reservation: domain.Reservation{
			ID:         id,
			MovieID:    movieID,
			MovieTitle: s.movies[movieID].movie.Title,
			Row:        row,
			Number:     number,
			UserName:   userName,
			CreatedAt:  s.now(),
		},
		seq: s.seq,
	}

	seat.Reserved = true
	seat.ReservedBy = userName
	seat.ReservationID = id
	s.reservations[id] = entry

	reservation := entry.reservation
	return &reservation, nil
}

func (s *ReservationService) nextReservationID() (uuid.UUID, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id == uuid.Nil {
			continue
		}

		if _, live := s.reservations[id]; live {
			continue
		}

		if _, used := s.retired[id]; used {
			continue
		}

		return id, nil
	}

	return uuid.Nil, fmt.Errorf("could not generate a unique reservation id after %d attempts", maxIDAttempts)
}

func (s *ReservationService) ListReservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*reservationEntry, 0, len(s.reservations))
	for _, entry := range s.reservations {
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b *reservationEntry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	reservations := make([]domain.Reservation, len(entries))
	for i, entry := range entries {
		reservations[i] = entry.reservation
	}

	return reservations
}

func (s *ReservationService) GetReservation(id uuid.UUID) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", id, domain.ErrReservationNotFound)
	}

	reservation := entry.reservation
	return &reservation, nil
}

func (s *ReservationService) Cancel(id uuid.UUID) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", id, domain.ErrReservationNotFound)
	}

	reservation := entry.reservation

	delete(s.reservations, id)
	s.retired[id] = struct{}{}

	// The seat always exists for a live reservation; a missing one is skipped
	// rather than failing a cancellation that already removed the record.
	seat, err := s.lookupSeat(reservation.MovieID, reservation.Row, reservation.Number)
	if err == nil && seat.ReservationID == id {
		seat.Reserved = false
		seat.ReservedBy = ""
		seat.ReservationID = uuid.Nil
	}

	return &reservation, nil
}
