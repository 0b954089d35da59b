package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/ticket"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) ReserveSeat(w http.ResponseWriter, r *http.Request, movieId int) {
	var input api.ReserveSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	logger := app.contextGetLogger(r)

	reservation, err := app.service.Reserve(movieId, input.Row, input.Number, input.UserName)
	if err != nil {
		app.metrics.reservationRejected(r.Context(), err)
		logger.Info("reservation rejected",
			"movie_id", movieId,
			"row", input.Row,
			"number", input.Number,
			"reason", err.Error(),
		)

		app.serviceErrorResponse(w, r, err)
		return
	}

	app.metrics.reservationsCreated.Add(r.Context(), 1)
	logger.Info("seat reserved",
		"reservation_id", reservation.ID,
		"movie_id", reservation.MovieID,
		"row", reservation.Row,
		"number", reservation.Number,
	)
	app.publishEvent(events.ReservationCreated(reservation))

	resp := api.ReserveSeatResponse{
		Message: fmt.Sprintf("Seat %d-%d reserved by %s for '%s'",
			reservation.Row, reservation.Number, reservation.UserName, reservation.MovieTitle),
		ReservationId: reservation.ID,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations := app.service.ListReservations()

	resp := api.ReservationListResponse{
		Reservations: make([]api.Reservation, len(reservations)),
	}

	for i, reservation := range reservations {
		resp.Reservations[i] = toApiReservation(&reservation)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request, reservationId openapi_types.UUID) {
	reservation, err := app.service.GetReservation(reservationId)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelReservation(w http.ResponseWriter, r *http.Request, reservationId openapi_types.UUID) {
	reservation, err := app.service.Cancel(reservationId)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.metrics.reservationsCancelled.Add(r.Context(), 1)
	app.contextGetLogger(r).Info("reservation cancelled",
		"reservation_id", reservation.ID,
		"movie_id", reservation.MovieID,
	)
	app.publishEvent(events.ReservationCancelled(reservation, app.now()))

	resp := api.MessageResponse{
		Message: fmt.Sprintf("Reservation %s cancelled successfully.", reservation.ID),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservationQRCode(w http.ResponseWriter, r *http.Request, reservationId openapi_types.UUID) {
	reservation, err := app.service.GetReservation(reservationId)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	img, err := ticket.QRCode(reservation, ticket.DefaultSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="ticket-%s.png"`, reservation.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}

func toApiReservation(reservation *domain.Reservation) api.Reservation {
	return api.Reservation{
		Id:         reservation.ID,
		MovieId:    reservation.MovieID,
		MovieTitle: reservation.MovieTitle,
		Row:        reservation.Row,
		Number:     reservation.Number,
		UserName:   reservation.UserName,
		CreatedAt:  reservation.CreatedAt,
	}
}
