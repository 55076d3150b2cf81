package commands

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/client"
)

// NewBookCmd creates the book command and its confirm subcommand
func NewBookCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "book [vehicle-id]",
		Short: "Book a vehicle for a date range and start checkout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicleID := ""
			if len(args) > 0 {
				vehicleID = args[0]
			}
			return runBook(vehicleID, from, to)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Pick-up date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Drop-off date (YYYY-MM-DD)")

	var vehicleID, cFrom, cTo string
	confirm := &cobra.Command{
		Use:   "confirm <session-id>",
		Short: "Confirm a booking after completing payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookConfirm(args[0], vehicleID, cFrom, cTo)
		},
	}
	confirm.Flags().StringVar(&vehicleID, "vehicle", "", "Vehicle id of the booking")
	confirm.Flags().StringVar(&cFrom, "from", "", "Pick-up date (YYYY-MM-DD)")
	confirm.Flags().StringVar(&cTo, "to", "", "Drop-off date (YYYY-MM-DD)")

	cmd.AddCommand(confirm)
	return cmd
}

func runBook(vehicleID, from, to string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	if vehicleID == "" {
		vehicleID, err = pickVehicle(d)
		if err != nil {
			return err
		}
	}

	vehicle, err := d.api.GetVehicle(vehicleID)
	if err != nil {
		return err
	}

	if from == "" || to == "" {
		return fmt.Errorf("both --from and --to dates are required")
	}

	total, days, err := bookingTotal(vehicle.PricePerDay, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Booking %s %s: %s to %s (%d day(s))\n",
		vehicle.Make, vehicle.Model, from, to, days)
	fmt.Fprintf(d.out, "Total: %.2f\n\n", total)

	sess, err := d.api.CreateCheckoutSession(client.CheckoutRequest{
		VehicleID:   vehicleID,
		FromDate:    from,
		ToDate:      to,
		TotalAmount: total,
	})
	if err != nil {
		return fmt.Errorf("failed to start checkout: %w", err)
	}

	fmt.Fprintf(d.out, "Complete payment at: %s\n", sess.URL)
	if err := openBrowser(sess.URL); err != nil {
		fmt.Fprintf(d.out, "⚠ Could not open browser automatically: %v\n", err)
	}

	fmt.Fprintln(d.out, "\nAfter paying, finish with:")
	fmt.Fprintf(d.out, "  rentwheels book confirm %s --vehicle %s --from %s --to %s\n",
		sess.ID, vehicleID, from, to)
	return nil
}

func runBookConfirm(sessionID, vehicleID, from, to string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	booking, err := d.api.ConfirmBooking(client.ConfirmBookingRequest{
		SessionID: sessionID,
		VehicleID: vehicleID,
		FromDate:  from,
		ToDate:    to,
	})
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	fmt.Fprintln(d.out, "✓ Booking confirmed!")
	fmt.Fprintf(d.out, "  %s %s, %s to %s — %.2f (%s)\n",
		booking.Vehicle.Make, booking.Vehicle.Model,
		booking.StartDate, booking.EndDate, booking.TotalPrice, booking.Status)
	return nil
}

// bookingTotal computes the rental price for a date range: days are counted
// inclusively, so picking up and dropping off on the same day is one day.
func bookingTotal(pricePerDay float64, from, to string) (float64, int, error) {
	start, err := parseDate(from)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseDate(to)
	if err != nil {
		return 0, 0, err
	}

	if end.Before(start) {
		return 0, 0, fmt.Errorf("drop-off date must be on or after the pick-up date")
	}

	days := rentalDays(start, end)
	total := float64(days) * pricePerDay
	if total <= 0 {
		return 0, 0, fmt.Errorf("booking total must be positive")
	}
	return total, days, nil
}

// pickVehicle lets the user choose from the catalog interactively.
func pickVehicle(d *deps) (string, error) {
	vehicles, err := d.api.ListVehicles()
	if err != nil {
		return "", err
	}
	if len(vehicles) == 0 {
		return "", fmt.Errorf("no vehicles available")
	}

	type option struct {
		Label string
		ID    string
	}
	options := make([]option, len(vehicles))
	for i, v := range vehicles {
		options[i] = option{
			Label: fmt.Sprintf("%s %s — %.2f/day (%s)", v.Make, v.Model, v.PricePerDay, v.Location),
			ID:    v.ID,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a vehicle",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("vehicle selection cancelled: %w", err)
	}
	return options[index].ID, nil
}
