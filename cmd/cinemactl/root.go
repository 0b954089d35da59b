package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/internal/client"
	"github.com/metinatakli/cinema-seat-reservation/internal/vcs"
	"github.com/spf13/cobra"
)

const serverEnv = "CINEMA_SERVER"

type cli struct {
	server  string
	timeout time.Duration
	client  *client.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "cinemactl",
		Short:         "Cinema seat reservation CLI",
		Long:          `Browse movies and seat maps, and book or cancel seats on a cinema reservation server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.client = client.New(c.server, client.WithHTTPClient(&http.Client{Timeout: c.timeout}))
		},
	}

	server := os.Getenv(serverEnv)
	if server == "" {
		server = client.DefaultBaseURL
	}

	rootCmd.PersistentFlags().StringVarP(&c.server, "server", "s", server, "reservation server base URL (env "+serverEnv+")")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "per-request timeout")

	rootCmd.AddCommand(
		c.moviesCmd(),
		c.seatsCmd(),
		c.seatCmd(),
		c.reserveCmd(),
		c.reservationsCmd(),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cinemactl",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cinemactl %s\n", vcs.Version())
		},
	}
}

func parseID(name, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, value)
	}
	return id, nil
}

func parseReservationID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid reservation id %q", value)
	}
	return id, nil
}
