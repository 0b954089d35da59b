package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie, err := app.service.AddMovie(input.Id, input.Title, input.DurationMinutes)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.metrics.moviesCreated.Add(r.Context(), 1)
	app.contextGetLogger(r).Info("movie added", "movie_id", movie.ID, "title", movie.Title)
	app.publishEvent(events.MovieCreated(movie, app.now()))

	resp := api.CreateMovieResponse{
		Message: fmt.Sprintf("Movie '%s' added successfully", movie.Title),
		MovieId: movie.ID,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	resp := api.MovieListResponse{
		Movies: toApiMovies(app.service.ListMovies()),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	result := make([]api.Movie, len(movies))

	for i, movie := range movies {
		result[i] = api.Movie{
			Id:              movie.ID,
			Title:           movie.Title,
			DurationMinutes: movie.DurationMinutes,
		}
	}

	return result
}
