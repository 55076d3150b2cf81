package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewVehiclesCmd creates the vehicles command and its show subcommand
func NewVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"ls"},
		Short:   "Browse the vehicle catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicles()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <vehicle-id>",
		Short: "Show one vehicle in detail, with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleShow(args[0])
		},
	})

	return cmd
}

func runVehicles(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	return d.renderVehicles()
}

func runVehicleShow(id string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	vehicle, err := d.api.GetVehicle(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "%s %s — %.2f/day\n", vehicle.Make, vehicle.Model, vehicle.PricePerDay)
	if vehicle.Description != "" {
		fmt.Fprintln(d.out, vehicle.Description)
	}
	fmt.Fprintf(d.out, "Location: %s | Seats: %d | Fuel: %s | Transmission: %s\n",
		vehicle.Location, vehicle.Seats, vehicle.FuelType, vehicle.Transmission)
	fmt.Fprintf(d.out, "Rating: %.1f/5\n", vehicle.AverageRating)

	reviews, err := d.api.VehicleReviews(id)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Fprintln(d.out, "\nNo reviews yet.")
		return nil
	}

	fmt.Fprintf(d.out, "\nReviews (%d):\n", len(reviews))
	for _, r := range reviews {
		fmt.Fprintf(d.out, "  %s %s — %s\n", stars(r.Rating), r.User.Name, r.Comment)
	}
	return nil
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
