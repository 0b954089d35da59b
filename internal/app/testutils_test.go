package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/mocks"
)

var testNow = time.Date(2025, time.March, 14, 19, 30, 0, 0, time.UTC)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	svc := &mocks.MockReservationService{}

	app, err := NewApplication(Config{Env: "test"}, slog.New(slog.NewTextHandler(io.Discard, nil)), svc, events.NewMockPublisher())
	if err != nil {
		t.Fatal(err)
	}

	app.now = func() time.Time { return testNow }

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// checkPublishedEvents waits for background publishing to finish before
// comparing the recorded events.
func checkPublishedEvents(t *testing.T, app *Application, want []events.Event) {
	t.Helper()

	app.wg.Wait()
	got := app.publisher.(*events.MockPublisher).Events()

	if len(want) == 0 {
		if len(got) != 0 {
			t.Errorf("expected no published events, got %v", got)
		}
		return
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("published events mismatch (-want +got):\n%s", diff)
	}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if validationResp.Message != ErrFailedValidation {
			t.Errorf("Error message = %v, want %v", validationResp.Message, ErrFailedValidation)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func mockService(app *Application) *mocks.MockReservationService {
	return app.service.(*mocks.MockReservationService)
}

func dune() *domain.Movie {
	return &domain.Movie{ID: 1, Title: "Dune", DurationMinutes: 155}
}

func ptr[T any](v T) *T {
	return &v
}
