package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/spf13/cobra"
)

func (c *cli) seatsCmd() *cobra.Command {
	var occupants bool

	cmd := &cobra.Command{
		Use:   "seats <movie-id>",
		Short: "Show the seat map of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := parseID("movie id", args[0])
			if err != nil {
				return err
			}

			seats, err := c.client.GetSeats(cmd.Context(), movieID)
			if err != nil {
				return err
			}

			renderSeatMap(cmd.OutOrStdout(), seats)
			if occupants {
				renderOccupants(cmd, seats)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&occupants, "occupants", false, "also list who reserved each occupied seat")

	return cmd
}

func (c *cli) seatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seat <movie-id> <row> <number>",
		Short: "Show a single seat",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, row, number, err := parseSeatArgs(args)
			if err != nil {
				return err
			}

			seat, err := c.client.GetSeat(cmd.Context(), movieID, row, number)
			if err != nil {
				return err
			}

			t := newTable(cmd)
			t.AppendHeader(table.Row{"Row", "Seat", "Status", "Reserved By", "Reservation"})
			t.AppendRow(table.Row{seat.Row, seat.Number, seatStatus(seat), deref(seat.ReservedBy), deref(seat.ReservationId)})
			t.Render()

			return nil
		},
	}
}

func seatStatus(seat api.Seat) string {
	if seat.IsReserved {
		return "reserved"
	}
	return "available"
}

func parseSeatArgs(args []string) (movieID, row, number int, err error) {
	if movieID, err = parseID("movie id", args[0]); err != nil {
		return
	}
	if row, err = parseID("row", args[1]); err != nil {
		return
	}
	number, err = parseID("seat number", args[2])
	return
}

func (c *cli) reserveCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "reserve <movie-id> <row> <number>",
		Short: "Reserve a seat",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, row, number, err := parseSeatArgs(args)
			if err != nil {
				return err
			}

			resp, err := c.client.Reserve(cmd.Context(), movieID, api.ReserveSeatRequest{
				Row:      row,
				Number:   number,
				UserName: user,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation ID: %s\n", resp.ReservationId)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "name of the person reserving the seat")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
