package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-seat-reservation/internal/app"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	redisImageName = "redis:7"
	eventsChannel  = "cinema.events.test"

	TestMovieID       = 1
	TestMovieTitle    = "Dune"
	TestMovieDuration = 155
	TestUserName      = "Alice"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	redisContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	redisContainer, err := getRedisContainer(ctx)
	if err != nil {
		s.T().Skipf("failed to start container: %s", err)
	}

	s.redisContainer = redisContainer

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
	}
	layout := domain.DefaultSeatLayout()
	cfg.Grid.Rows = layout.Rows
	cfg.Grid.SeatsPerRow = layout.SeatsPerRow
	cfg.Events.Backend = events.BackendRedis
	cfg.Events.RedisURL = redisContainer.ConnectionString
	cfg.Events.RedisChannel = eventsChannel

	testApp, err := newTestApp(cfg)
	if err != nil {
		s.T().Skipf("cannot initialize app: %s", err)
	}

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}
	if s.redisContainer != nil {
		if err := testcontainers.TerminateContainer(s.redisContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	IgnoreFields     []string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		resetApp(t, testApp)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse, s.IgnoreFields...)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
