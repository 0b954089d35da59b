package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/middleware"
	"github.com/metinatakli/cinema-seat-reservation/internal/service"
	appvalidator "github.com/metinatakli/cinema-seat-reservation/internal/validator"
	"github.com/metinatakli/cinema-seat-reservation/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/otel"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	service   domain.ReservationService
	publisher events.Publisher
	metrics   *metrics
	openapi   []byte
	now       func() time.Time
	wg        sync.WaitGroup
}

func NewApplication(cfg Config, logger *slog.Logger, svc domain.ReservationService, publisher events.Publisher) (*Application, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	openapi, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	m, err := newMetrics(otel.Meter(meterName), svc)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric instruments: %w", err)
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		service:   svc,
		publisher: publisher,
		metrics:   m,
		openapi:   openapi,
		now:       time.Now,
	}, nil
}

func Run() error {
	err := loadEnvFile(".env")
	if err != nil {
		return err
	}

	cfg, err := ParseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	svc, err := service.NewReservationService(service.WithLayout(cfg.Layout()))
	if err != nil {
		return err
	}

	publisher, err := newEventPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	app, err := NewApplication(cfg, logger, svc, publisher)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := app.InitTelemetry(context.Background())
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func newEventPublisher(cfg Config, logger *slog.Logger) (events.Publisher, error) {
	switch cfg.Events.Backend {
	case events.BackendRedis:
		client, err := events.NewRedisClient(cfg.Events.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		logger.Info("publishing events to redis", "channel", cfg.Events.RedisChannel)
		return events.NewRedisPublisher(client, cfg.Events.RedisChannel), nil

	case events.BackendAMQP:
		publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.AMQPQueue)
		if err != nil {
			return nil, err
		}

		logger.Info("publishing events to rabbitmq", "queue", cfg.Events.AMQPQueue)
		return publisher, nil

	default:
		return events.NopPublisher{}, nil
	}
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"rows", app.config.Grid.Rows,
		"seats_per_row", app.config.Grid.SeatsPerRow,
		"events_backend", app.config.Events.Backend,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(middleware.NotFoundHandler)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(app.logger))
	r.Use(middleware.RecoverPanic(app.logger))

	r.Get("/openapi.json", app.GetOpenAPI)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
