package app

import (
	"net/http"

	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/vcs"
)

const welcomeMessage = "Welcome to the Cinema Seat Reservation System"

func (app *Application) GetWelcome(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: welcomeMessage}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := api.SystemInfo{
		Version:     vcs.Version(),
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetOpenAPI serves the API description the router is built from.
func (app *Application) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(app.openapi)
}
