package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateMovieRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		input      api.CreateMovieRequest
		wantIssues map[string]string
	}{
		{
			name:  "valid request",
			input: api.CreateMovieRequest{Id: 1, Title: "Dune", DurationMinutes: 155},
		},
		{
			name:  "missing fields",
			input: api.CreateMovieRequest{},
			wantIssues: map[string]string{
				"id":              ErrRequired,
				"title":           ErrRequired,
				"durationMinutes": ErrRequired,
			},
		},
		{
			name:  "negative id and duration",
			input: api.CreateMovieRequest{Id: -3, Title: "Dune", DurationMinutes: -1},
			wantIssues: map[string]string{
				"id":              fmt.Sprintf(ErrGreaterThan, "0"),
				"durationMinutes": fmt.Sprintf(ErrGreaterThan, "0"),
			},
		},
		{
			name:       "blank title",
			input:      api.CreateMovieRequest{Id: 1, Title: "   ", DurationMinutes: 155},
			wantIssues: map[string]string{"title": ErrNotBlank},
		},
		{
			name: "title too long",
			input: api.CreateMovieRequest{
				Id:              1,
				Title:           string(make([]byte, 201)),
				DurationMinutes: 155,
			},
			wantIssues: map[string]string{"title": fmt.Sprintf(ErrMaxLength, "200")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIssues, issues(t, v.Struct(tt.input)))
		})
	}
}

func TestValidateReserveSeatRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		input      api.ReserveSeatRequest
		wantIssues map[string]string
	}{
		{
			name:  "valid request",
			input: api.ReserveSeatRequest{Row: 3, Number: 7, UserName: "Alice"},
		},
		{
			name:  "out of range coordinates are left to the service",
			input: api.ReserveSeatRequest{Row: 0, Number: 11, UserName: "Alice"},
		},
		{
			name:       "missing user name",
			input:      api.ReserveSeatRequest{Row: 3, Number: 7},
			wantIssues: map[string]string{"userName": ErrRequired},
		},
		{
			name:       "blank user name",
			input:      api.ReserveSeatRequest{Row: 3, Number: 7, UserName: "\t "},
			wantIssues: map[string]string{"userName": ErrNotBlank},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIssues, issues(t, v.Struct(tt.input)))
		})
	}
}

func issues(t *testing.T, err error) map[string]string {
	t.Helper()

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors), "unexpected error type %T", err)

	got := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		got[fe.Field()] = ValidationMessage(fe)
	}

	return got
}
