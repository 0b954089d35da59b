package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/spf13/cobra"
)

func (c *cli) moviesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List and add movies",
	}

	cmd.AddCommand(c.moviesListCmd(), c.moviesAddCmd())

	return cmd
}

func (c *cli) moviesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all movies in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := c.client.ListMovies(cmd.Context())
			if err != nil {
				return err
			}

			if len(movies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No movies yet.")
				return nil
			}

			t := newTable(cmd)
			t.AppendHeader(table.Row{"ID", "Title", "Duration"})
			for _, m := range movies {
				t.AppendRow(table.Row{m.Id, m.Title, fmt.Sprintf("%d min", m.DurationMinutes)})
			}
			t.Render()

			return nil
		},
	}
}

func (c *cli) moviesAddCmd() *cobra.Command {
	var req api.CreateMovieRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie with its full seat grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.AddMovie(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Id, "id", 0, "movie id (positive integer)")
	cmd.Flags().StringVar(&req.Title, "title", "", "movie title")
	cmd.Flags().IntVar(&req.DurationMinutes, "duration", 0, "duration in minutes")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
