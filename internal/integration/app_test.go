package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/metinatakli/cinema-seat-reservation/internal/app"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const eventTimeout = 5 * time.Second

// TestApp is an application publishing to a real Redis server, with a
// subscription on the events channel that tests read from.
type TestApp struct {
	App       *app.Application
	Service   *service.ReservationService
	Redis     *redis.Client
	config    app.Config
	logger    *slog.Logger
	publisher *events.RedisPublisher
	pubsub    *redis.PubSub
	messages  <-chan *redis.Message
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb, err := events.NewRedisClient(cfg.Events.RedisURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	pubsub := rdb.Subscribe(ctx, cfg.Events.RedisChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", cfg.Events.RedisChannel, err)
	}

	testApp := &TestApp{
		Redis:     rdb,
		config:    cfg,
		logger:    logger,
		publisher: events.NewRedisPublisher(rdb, cfg.Events.RedisChannel),
		pubsub:    pubsub,
		messages:  pubsub.Channel(),
	}

	if err := testApp.reset(); err != nil {
		testApp.Close()
		return nil, err
	}

	return testApp, nil
}

// reset swaps in an empty reservation service. Events still in flight from
// the previous application are drained first.
func (ta *TestApp) reset() error {
	if ta.App != nil {
		ta.App.Wait()
	}

	svc, err := service.NewReservationService(service.WithLayout(ta.config.Layout()))
	if err != nil {
		return err
	}

	application, err := app.NewApplication(ta.config, ta.logger, svc, ta.publisher)
	if err != nil {
		return err
	}

	ta.App = application
	ta.Service = svc
	ta.drainEvents()

	return nil
}

func (ta *TestApp) Close() {
	if ta.App != nil {
		ta.App.Wait()
	}
	_ = ta.pubsub.Close()
	_ = ta.Redis.Close()
}

func (ta *TestApp) drainEvents() {
	for {
		select {
		case <-ta.messages:
		case <-time.After(50 * time.Millisecond):
			return
		}
	}
}

func (ta *TestApp) nextEvent(t testing.TB) events.Event {
	t.Helper()

	select {
	case msg := <-ta.messages:
		var event events.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		return event
	case <-time.After(eventTimeout):
		t.Fatalf("no event received on %s within %s", ta.config.Events.RedisChannel, eventTimeout)
		return events.Event{}
	}
}

func resetApp(t testing.TB, testApp *TestApp) {
	t.Helper()
	require.NoError(t, testApp.reset())
}

func insertTestMovie(t testing.TB, testApp *TestApp, id int, title string) *domain.Movie {
	t.Helper()

	movie, err := testApp.Service.AddMovie(id, title, TestMovieDuration)
	require.NoError(t, err)

	return movie
}

func insertTestReservation(t testing.TB, testApp *TestApp, movieID, row, number int, userName string) *domain.Reservation {
	t.Helper()

	reservation, err := testApp.Service.Reserve(movieID, row, number, userName)
	require.NoError(t, err)

	return reservation
}
