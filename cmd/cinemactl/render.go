package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/spf13/cobra"
)

const (
	tokenAvailable = "[]"
	tokenOccupied  = "XX"
	reservedAt     = "2006-01-02 15:04:05"
)

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleOccupied  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	screenStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
)

func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	return t
}

// renderSeatMap draws the grid with row labels on both sides and the screen
// below it, followed by a legend and the availability count.
func renderSeatMap(w io.Writer, seats api.SeatMapResponse) {
	rowWidth := len(fmt.Sprint(len(seats.SeatRows)))
	maxSeats := 0
	for _, row := range seats.SeatRows {
		maxSeats = max(maxSeats, len(row.Seats))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (movie %d)\n\n", seats.MovieTitle, seats.MovieId)

	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for n := 1; n <= maxSeats; n++ {
		fmt.Fprintf(&b, "%-2d", n)
		if n < maxSeats {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	total := 0
	for _, row := range seats.SeatRows {
		fmt.Fprintf(&b, "%*d ", rowWidth, row.Row)
		for i, seat := range row.Seats {
			if seat.IsReserved {
				b.WriteString(seatStyleOccupied.Render(tokenOccupied))
			} else {
				b.WriteString(seatStyleAvailable.Render(tokenAvailable))
			}
			if i < len(row.Seats)-1 {
				b.WriteString(" ")
			}
		}
		fmt.Fprintf(&b, " %*d\n", rowWidth, row.Row)
		total += len(row.Seats)
	}

	gridWidth := max(maxSeats*3-1, len("SCREEN"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenStyle.Render(center("SCREEN", gridWidth)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Legend: %s available • %s occupied\n", tokenAvailable, tokenOccupied)
	fmt.Fprintf(&b, "Available: %d • Occupied: %d • Total: %d\n", seats.AvailableSeats, total-seats.AvailableSeats, total)

	_, _ = io.WriteString(w, b.String())
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func renderOccupants(cmd *cobra.Command, seats api.SeatMapResponse) {
	t := newTable(cmd)
	t.AppendHeader(table.Row{"Row", "Seat", "Reserved By", "Reservation"})
	for _, row := range seats.SeatRows {
		for _, seat := range row.Seats {
			if !seat.IsReserved {
				continue
			}
			t.AppendRow(table.Row{seat.Row, seat.Number, deref(seat.ReservedBy), deref(seat.ReservationId)})
		}
	}
	t.Render()
}

func renderReservations(cmd *cobra.Command, reservations []api.Reservation) {
	t := newTable(cmd)
	t.AppendHeader(table.Row{"ID", "Movie", "Seat", "User", "Created"})
	for _, r := range reservations {
		t.AppendRow(table.Row{
			r.Id,
			fmt.Sprintf("%d %s", r.MovieId, r.MovieTitle),
			fmt.Sprintf("%d-%d", r.Row, r.Number),
			r.UserName,
			r.CreatedAt.Local().Format(reservedAt),
		})
	}
	t.Render()
}

func deref[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}
