package commands

import (
	"github.com/spf13/cobra"
)

// NewBookingsCmd creates the bookings command
func NewBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookings()
		},
	}
}

func runBookings(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	return d.renderBookings()
}

// NewPaymentsCmd creates the payments command
func NewPaymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "Show your payment history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayments()
		},
	}
}

func runPayments(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	return d.renderPayments()
}

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open your dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
}

func runDashboard(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	// Through the router: an admin lands on the admin console instead, an
	// anonymous user on the login screen.
	return d.newRouter().Navigate("/user/dashboard")
}
