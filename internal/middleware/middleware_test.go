package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RecoverPanic(logger))

	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	return r
}

func decodeError(t *testing.T, body io.Reader) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))

	return resp
}

func TestRecoverPanic(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	newTestRouter(logger).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))

	resp := decodeError(t, w.Body)
	assert.Equal(t, ErrInternalServer, resp.Message)
	assert.NotEmpty(t, resp.RequestId)
	assert.False(t, resp.Timestamp.IsZero())

	assert.Contains(t, logs.String(), "boom")
	assert.Contains(t, logs.String(), "status=500")
}

func TestNotFoundHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(slog.New(slog.NewTextHandler(io.Discard, nil))).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, ErrNotFound, decodeError(t, w.Body).Message)
}

func TestMethodNotAllowedHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(slog.New(slog.NewTextHandler(io.Discard, nil))).
		ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/ok", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, fmt.Sprintf(ErrMethodNotAllowed, http.MethodPut), decodeError(t, w.Body).Message)
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	newTestRouter(logger).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	out := logs.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "uri=/ok")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "bytes=2")
}
