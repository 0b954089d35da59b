// Package events publishes reservation lifecycle events to an external broker.
// Publishing is best effort: callers log failures and never fail the
// originating request because of them.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
)

type Type string

const (
	TypeMovieCreated         Type = "movie.created"
	TypeReservationCreated   Type = "reservation.created"
	TypeReservationCancelled Type = "reservation.cancelled"
)

type Event struct {
	Type          Type      `json:"type"`
	MovieID       int       `json:"movieId"`
	MovieTitle    string    `json:"movieTitle"`
	ReservationID uuid.UUID `json:"reservationId,omitzero"`
	Row           int       `json:"row,omitempty"`
	Number        int       `json:"number,omitempty"`
	UserName      string    `json:"userName,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

const (
	BackendNone  = "none"
	BackendRedis = "redis"
	BackendAMQP  = "amqp"
)

func MovieCreated(movie *domain.Movie, at time.Time) Event {
	return Event{
		Type:       TypeMovieCreated,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		OccurredAt: at,
	}
}

func ReservationCreated(reservation *domain.Reservation) Event {
	return fromReservation(TypeReservationCreated, reservation, reservation.CreatedAt)
}

func ReservationCancelled(reservation *domain.Reservation, at time.Time) Event {
	return fromReservation(TypeReservationCancelled, reservation, at)
}

func fromReservation(t Type, reservation *domain.Reservation, at time.Time) Event {
	return Event{
		Type:          t,
		MovieID:       reservation.MovieID,
		MovieTitle:    reservation.MovieTitle,
		ReservationID: reservation.ID,
		Row:           reservation.Row,
		Number:        reservation.Number,
		UserName:      reservation.UserName,
		OccurredAt:    at,
	}
}

func ValidateBackend(backend string) error {
	switch backend {
	case BackendNone, BackendRedis, BackendAMQP:
		return nil
	default:
		return fmt.Errorf("unknown events backend %q (want %s|%s|%s)", backend, BackendNone, BackendRedis, BackendAMQP)
	}
}
