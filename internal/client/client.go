package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/api"
)

const (
	DefaultBaseURL     = "http://localhost:3000"
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
	maxErrorBody       = 8 << 10
)

// Client calls the cinema reservation API over HTTP.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRetry sets how many times idempotent requests are attempted and the
// bounds of the exponential backoff between attempts.
func WithRetry(maxAttempts int, base, limit time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
		c.retryBase = base
		c.retryCap = limit
	}
}

// APIError is returned when the server responds with a non-2xx status.
// Message holds the server's error message when the body could be decoded.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	Endpoint   string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "cinema api error"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Endpoint, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Status)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: defaultMaxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Health(ctx context.Context) (api.HealthcheckResponse, error) {
	var resp api.HealthcheckResponse
	err := c.getJSON(ctx, "/health", &resp)
	return resp, err
}

func (c *Client) ListMovies(ctx context.Context) ([]api.Movie, error) {
	var resp api.MovieListResponse
	if err := c.getJSON(ctx, "/movies", &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

func (c *Client) AddMovie(ctx context.Context, req api.CreateMovieRequest) (api.CreateMovieResponse, error) {
	var resp api.CreateMovieResponse
	err := c.sendJSON(ctx, http.MethodPost, "/movies", req, &resp)
	return resp, err
}

func (c *Client) GetSeats(ctx context.Context, movieID int) (api.SeatMapResponse, error) {
	var resp api.SeatMapResponse
	err := c.getJSON(ctx, fmt.Sprintf("/movies/%d/seats", movieID), &resp)
	return resp, err
}

func (c *Client) GetSeat(ctx context.Context, movieID, row, number int) (api.Seat, error) {
	var resp api.Seat
	err := c.getJSON(ctx, fmt.Sprintf("/movies/%d/seats/%d/%d", movieID, row, number), &resp)
	return resp, err
}

// Reserve is attempted once; only GET requests are retried.
func (c *Client) Reserve(ctx context.Context, movieID int, req api.ReserveSeatRequest) (api.ReserveSeatResponse, error) {
	var resp api.ReserveSeatResponse
	err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/movies/%d/reservations", movieID), req, &resp)
	return resp, err
}

func (c *Client) ListReservations(ctx context.Context) ([]api.Reservation, error) {
	var resp api.ReservationListResponse
	if err := c.getJSON(ctx, "/reservations", &resp); err != nil {
		return nil, err
	}
	return resp.Reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id uuid.UUID) (api.Reservation, error) {
	var resp api.Reservation
	err := c.getJSON(ctx, "/reservations/"+id.String(), &resp)
	return resp, err
}

func (c *Client) Cancel(ctx context.Context, id uuid.UUID) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.sendJSON(ctx, http.MethodDelete, "/reservations/"+id.String(), nil, &resp)
	return resp, err
}

// ReservationQRCode returns the PNG ticket of a reservation.
func (c *Client) ReservationQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var png []byte
	err := c.do(ctx, http.MethodGet, "/reservations/"+id.String()+"/qrcode", nil, true, func(body io.Reader) error {
		var err error
		png, err = io.ReadAll(body)
		return err
	})
	return png, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, true, decodeInto(out))
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	return c.do(ctx, method, path, payload, false, decodeInto(out))
}

func decodeInto(out any) func(io.Reader) error {
	return func(body io.Reader) error {
		err := json.NewDecoder(body).Decode(out)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, retry bool, read func(io.Reader) error) error {
	endpoint := c.baseURL + path

	maxAttempts := 1
	if retry && c.maxAttempts > 1 {
		maxAttempts = c.maxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			if shouldRetryNetworkError(err) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return fmt.Errorf("request failed: %w", err)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			apiErr := newAPIError(method, endpoint, res)
			if shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return apiErr
		}

		err = read(res.Body)
		_ = res.Body.Close()
		if err != nil {
			return fmt.Errorf("decode response from %s: %w", endpoint, err)
		}
		return nil
	}

	return errors.New("request failed after retries")
}

func newAPIError(method, endpoint string, res *http.Response) *APIError {
	snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	_ = res.Body.Close()

	apiErr := &APIError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Method:     method,
		Endpoint:   endpoint,
		Body:       strings.TrimSpace(string(snippet)),
	}

	var envelope api.ErrorResponse
	if json.Unmarshal(snippet, &envelope) == nil {
		apiErr.Message = envelope.Message
	}

	return apiErr
}

func shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func shouldRetryNetworkError(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	limit := c.retryCap
	if limit <= 0 {
		limit = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	return min(delay, limit)
}
