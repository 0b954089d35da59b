package app

import (
	"net/http"

	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
)

func (app *Application) GetSeats(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.service.GetMovie(movieId)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	seats, err := app.service.GetSeats(movieId)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := toSeatMapResponse(movie, seats)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeat(w http.ResponseWriter, r *http.Request, movieId int, row int, number int) {
	seat, err := app.service.GetSeat(movieId, row, number)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(movie *domain.Movie, seats []domain.Seat) api.SeatMapResponse {
	available := 0
	for _, seat := range seats {
		if !seat.Reserved {
			available++
		}
	}

	return api.SeatMapResponse{
		MovieId:        movie.ID,
		MovieTitle:     movie.Title,
		AvailableSeats: available,
		SeatRows:       toSeatRows(seats),
	}
}

func toSeatRows(seats []domain.Seat) []api.SeatRow {
	// Seats come ordered by row, then number, so rows can be cut in a single pass.
	seatRows := []api.SeatRow{}
	if len(seats) == 0 {
		return seatRows
	}

	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, toApiSeat(v))
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}

func toApiSeat(seat domain.Seat) api.Seat {
	resp := api.Seat{
		Row:        seat.Row,
		Number:     seat.Number,
		IsReserved: seat.Reserved,
	}

	if seat.Reserved {
		resp.ReservedBy = &seat.ReservedBy
		resp.ReservationId = &seat.ReservationID
	}

	return resp
}
