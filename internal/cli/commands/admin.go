package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// NewAdminCmd creates the admin command tree. Every subcommand sits behind
// the admin route guard; a non-admin gets the guard's notice and its
// redirect target rendered, the same dance the web client performed.
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative screens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin")
		},
	}

	cmd.AddCommand(
		newAdminUsersCmd(),
		newAdminVehiclesCmd(),
		newAdminBookingsCmd(),
		newAdminPaymentsCmd(),
		newAdminReviewsCmd(),
		newAdminSupportCmd(),
	)
	return cmd
}

// runAdminScreen navigates to an admin path through the router so the guard
// decides what actually renders.
func runAdminScreen(path string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	return d.newRouter().Navigate(path)
}

// runAdminAction performs a mutation behind the admin guard.
func runAdminAction(fn func(*deps) error, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	return d.guardedAction(session.RoleAdmin, func() error { return fn(d) })
}

func newAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/users")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "block <user-id>",
		Short: "Block an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminBlockUser(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ User blocked.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unblock <user-id>",
		Short: "Unblock an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminUnblockUser(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ User unblocked.")
				return nil
			})
		},
	})

	return cmd
}

func newAdminVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Approve or reject vehicle listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/vehicles")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <vehicle-id>",
		Short: "Approve a listing for the public catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminApproveVehicle(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Vehicle approved.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reject <vehicle-id>",
		Short: "Reject a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminRejectVehicle(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Vehicle rejected.")
				return nil
			})
		},
	})

	return cmd
}

func newAdminBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Oversee bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/bookings")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminCancelBooking(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Booking cancelled.")
				return nil
			})
		},
	})

	return cmd
}

func newAdminPaymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "Monitor payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/payments")
		},
	}
}

func newAdminReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Moderate reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/reviews")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <review-id>",
		Short: "Publish a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminApproveReview(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Review approved.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <review-id>",
		Short: "Remove a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if err := d.api.AdminDeleteReview(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Review removed.")
				return nil
			})
		},
	})

	return cmd
}

func newAdminSupportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Answer support tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminScreen("/admin/support")
		},
	}

	var response string
	respond := &cobra.Command{
		Use:   "respond <ticket-id>",
		Short: "Respond to a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAction(func(d *deps) error {
				if response == "" {
					return fmt.Errorf("--response is required")
				}
				if err := d.api.AdminRespondSupportTicket(args[0], response); err != nil {
					return err
				}
				fmt.Fprintln(d.out, "✓ Response sent.")
				return nil
			})
		},
	}
	respond.Flags().StringVar(&response, "response", "", "Response text")

	cmd.AddCommand(respond)
	return cmd
}
