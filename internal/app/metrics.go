package app

import (
	"context"
	"errors"

	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/metinatakli/cinema-seat-reservation"

type metrics struct {
	moviesCreated         metric.Int64Counter
	reservationsCreated   metric.Int64Counter
	reservationsCancelled metric.Int64Counter
	reservationsRejected  metric.Int64Counter
}

func newMetrics(meter metric.Meter, service domain.ReservationService) (*metrics, error) {
	var (
		m   metrics
		err error
	)

	m.moviesCreated, err = meter.Int64Counter("cinema.movies.created",
		metric.WithDescription("Number of movies added"))
	if err != nil {
		return nil, err
	}

	m.reservationsCreated, err = meter.Int64Counter("cinema.reservations.created",
		metric.WithDescription("Number of seats reserved"))
	if err != nil {
		return nil, err
	}

	m.reservationsCancelled, err = meter.Int64Counter("cinema.reservations.cancelled",
		metric.WithDescription("Number of reservations cancelled"))
	if err != nil {
		return nil, err
	}

	m.reservationsRejected, err = meter.Int64Counter("cinema.reservations.rejected",
		metric.WithDescription("Number of reservation attempts refused by the service"))
	if err != nil {
		return nil, err
	}

	_, err = meter.Int64ObservableGauge("cinema.reservations.active",
		metric.WithDescription("Number of reservations currently held"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(len(service.ListReservations())))
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *metrics) reservationRejected(ctx context.Context, err error) {
	m.reservationsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectionReason(err))))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		return "movie_not_found"
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return "invalid_coordinates"
	case errors.Is(err, domain.ErrSeatNotFound):
		return "seat_not_found"
	case errors.Is(err, domain.ErrSeatAlreadyReserved):
		return "seat_already_reserved"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
