package main

import (
	"fmt"
	"os"

	"github.com/metinatakli/cinema-seat-reservation/api"
	"github.com/spf13/cobra"
)

func (c *cli) reservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"res"},
		Short:   "List, inspect and cancel reservations",
	}

	cmd.AddCommand(
		c.reservationsListCmd(),
		c.reservationsGetCmd(),
		c.reservationsCancelCmd(),
		c.reservationsTicketCmd(),
	)

	return cmd
}

func (c *cli) reservationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reservations, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reservations, err := c.client.ListReservations(cmd.Context())
			if err != nil {
				return err
			}

			if len(reservations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reservations yet.")
				return nil
			}

			renderReservations(cmd, reservations)
			return nil
		},
	}
}

func (c *cli) reservationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <reservation-id>",
		Short: "Show a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}

			reservation, err := c.client.GetReservation(cmd.Context(), id)
			if err != nil {
				return err
			}

			renderReservations(cmd, []api.Reservation{reservation})
			return nil
		},
	}
}

func (c *cli) reservationsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Cancel a reservation and free its seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.Cancel(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func (c *cli) reservationsTicketCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ticket <reservation-id>",
		Short: "Save the QR-code ticket of a reservation as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}

			png, err := c.client.ReservationQRCode(cmd.Context(), id)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("reservation-%s.png", id)
			}

			if err := os.WriteFile(path, png, 0o644); err != nil {
				return fmt.Errorf("write ticket: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ticket saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default reservation-<id>.png)")

	return cmd
}
