package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	var info, debug bytes.Buffer

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)).With("request_id", "abc").WithGroup("seat")

	logger.Debug("seat lookup", "row", 3)
	logger.Info("reserved", "row", 3)

	assert.NotContains(t, info.String(), "seat lookup")
	assert.Contains(t, info.String(), "request_id=abc")
	assert.Contains(t, info.String(), "seat.row=3")

	assert.Equal(t, 2, strings.Count(debug.String(), "request_id=abc"))
}

func TestMultiHandlerEnabled(t *testing.T) {
	h := NewMultiHandler(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestInitTelemetryWithoutCollector(t *testing.T) {
	var logs bytes.Buffer
	app := &Application{logger: slog.New(slog.NewTextHandler(&logs, nil))}

	shutdown, err := app.InitTelemetry(context.Background())
	require.NoError(t, err)

	shutdown(context.Background())
	assert.Contains(t, logs.String(), "skipping initialization")
}
