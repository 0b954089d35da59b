package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/metinatakli/cinema-seat-reservation/internal/app"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservationIDPattern = regexp.MustCompile(`Reservation ID: ([0-9a-f-]{36})`)

func newTestServer(t *testing.T) string {
	t.Helper()

	svc, err := service.NewReservationService()
	require.NoError(t, err)

	application, err := app.NewApplication(app.Config{Env: "test"}, slog.New(slog.NewTextHandler(io.Discard, nil)), svc, events.NopPublisher{})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Routes())
	t.Cleanup(srv.Close)

	return srv.URL
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", server}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReservationWorkflow(t *testing.T) {
	server := newTestServer(t)

	out, err := run(t, server, "movies", "add", "--id", "1", "--title", "Dune", "--duration", "155")
	require.NoError(t, err)
	assert.Equal(t, "Movie 'Dune' added successfully\n", out)

	out, err = run(t, server, "movies", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "155 min")

	out, err = run(t, server, "reserve", "1", "2", "3", "--user", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Seat 2-3 reserved by Alice for 'Dune'")

	match := reservationIDPattern.FindStringSubmatch(out)
	require.Len(t, match, 2)
	id := match[1]

	_, err = run(t, server, "reserve", "1", "2", "3", "--user", "Bob")
	require.Error(t, err)
	assert.Equal(t, app.ErrSeatAlreadyReserved, err.Error())

	out, err = run(t, server, "seats", "1", "--occupants")
	require.NoError(t, err)
	assert.Contains(t, out, tokenOccupied)
	assert.Contains(t, out, "Available: 49 • Occupied: 1 • Total: 50")
	assert.Contains(t, out, "Alice")

	out, err = run(t, server, "seat", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "reserved")
	assert.Contains(t, out, id)

	out, err = run(t, server, "reservations", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "2-3")

	ticket := filepath.Join(t.TempDir(), "ticket.png")
	out, err = run(t, server, "reservations", "ticket", id, "-o", ticket)
	require.NoError(t, err)
	assert.Contains(t, out, ticket)

	png, err := os.ReadFile(ticket)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	out, err = run(t, server, "reservations", "cancel", id)
	require.NoError(t, err)
	assert.Equal(t, "Reservation "+id+" cancelled successfully.\n", out)

	_, err = run(t, server, "reservations", "get", id)
	require.Error(t, err)
	assert.Equal(t, app.ErrReservationNotFound, err.Error())

	out, err = run(t, server, "reservations", "list")
	require.NoError(t, err)
	assert.Equal(t, "No reservations yet.\n", out)
}

func TestServerErrorsArePrintedVerbatim(t *testing.T) {
	server := newTestServer(t)

	_, err := run(t, server, "movies", "add", "--id", "1", "--title", "Dune", "--duration", "155")
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown movie", args: []string{"seats", "42"}, wantErr: app.ErrMovieNotFound},
		{name: "seat outside grid", args: []string{"seat", "1", "9", "1"}, wantErr: app.ErrInvalidCoordinates},
		{name: "duplicate movie", args: []string{"movies", "add", "--id", "1", "--title", "Arrival", "--duration", "116"}, wantErr: app.ErrDuplicateMovie},
		{name: "validation failure", args: []string{"movies", "add", "--id", "1", "--title", " ", "--duration", "90"}, wantErr: app.ErrFailedValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, server, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "non numeric movie id", args: []string{"seats", "dune"}, wantErr: `invalid movie id "dune": must be an integer`},
		{name: "non numeric row", args: []string{"reserve", "1", "x", "1", "--user", "Alice"}, wantErr: `invalid row "x": must be an integer`},
		{name: "malformed reservation id", args: []string{"reservations", "cancel", "abc"}, wantErr: `invalid reservation id "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "http://127.0.0.1:0", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestMoviesListEmpty(t *testing.T) {
	out, err := run(t, newTestServer(t), "movies", "list")
	require.NoError(t, err)
	assert.Equal(t, "No movies yet.\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Regexp(t, `^cinemactl \S+\n$`, out)
}
