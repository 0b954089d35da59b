package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/metinatakli/cinema-seat-reservation/internal/jsonutil"
	"go.opentelemetry.io/otel/trace"
)

const publishTimeout = 5 * time.Second

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// contextGetLogger returns the application logger annotated with the request
// id and, when the request is traced, the trace id.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

	spanCtx := trace.SpanContextFromContext(r.Context())
	if spanCtx.HasTraceID() {
		logger = logger.With("trace_id", spanCtx.TraceID().String())
	}

	return logger
}

// background runs fn in a goroutine tracked by the application wait group.
// Panics are recovered and logged.
func (app *Application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				app.logger.Error(fmt.Sprintf("%v", err))
			}
		}()

		fn()
	}()
}

// Wait blocks until every background task has finished.
func (app *Application) Wait() {
	app.wg.Wait()
}

func (app *Application) publishEvent(event events.Event) {
	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := app.publisher.Publish(ctx, event)
		if err != nil {
			app.logger.Error("failed to publish event", "type", event.Type, "error", err)
		}
	})
}
