package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/cinema-seat-reservation/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("server exited", "error", err)
		os.Exit(1)
	}
}
