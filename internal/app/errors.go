package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	appmiddleware "github.com/metinatakli/cinema-seat-reservation/internal/middleware"
	appvalidator "github.com/metinatakli/cinema-seat-reservation/internal/validator"
)

const (
	ErrInternalServer      = appmiddleware.ErrInternalServer
	ErrNotFound            = appmiddleware.ErrNotFound
	ErrFailedValidation    = "One or more fields have invalid values"
	ErrMovieNotFound       = "Movie not found"
	ErrSeatNotFound        = "Seat not found"
	ErrReservationNotFound = "Reservation not found"
	ErrDuplicateMovie      = "Movie ID already exists"
	ErrInvalidCoordinates  = "Invalid seat coordinates"
	ErrSeatAlreadyReserved = "Seat already reserved"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// invalidParamResponse handles path parameters that fail to bind.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s", paramErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	issues := make([]api.ValidationError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		issues = append(issues, api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		})
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: issues,
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// serviceErrorResponse maps an error returned by the reservation service to
// its HTTP response.
func (app *Application) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
	case errors.Is(err, domain.ErrSeatNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrSeatNotFound)
	case errors.Is(err, domain.ErrReservationNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrReservationNotFound)
	case errors.Is(err, domain.ErrDuplicateMovie):
		app.errorResponse(w, r, http.StatusBadRequest, ErrDuplicateMovie)
	case errors.Is(err, domain.ErrInvalidCoordinates):
		app.errorResponse(w, r, http.StatusBadRequest, ErrInvalidCoordinates)
	case errors.Is(err, domain.ErrSeatAlreadyReserved):
		app.errorResponse(w, r, http.StatusBadRequest, ErrSeatAlreadyReserved)
	case errors.Is(err, domain.ErrInvalidInput):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
