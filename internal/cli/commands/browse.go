package commands

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/auth"
	"github.com/rentwheels-dev/rentwheels/internal/cli/router"
)

// NewBrowseCmd creates the browse command, an interactive menu over the
// screen table.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse RentWheels interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse()
		},
	}
}

// screen pairs a menu label with a router path. The guard on each path
// decides what actually renders, same as a direct command would.
type screen struct {
	Label string
	Path  string
}

func runBrowse(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	r := d.newRouter()

	// While the shell is live a session teardown is a navigation, not just a
	// message: the next thing the user sees is the login screen.
	sessionEnded := false
	d.authCtx.OnSessionEnd(func(reason auth.Reason) {
		sessionEnded = true
		if reason == auth.ReasonExpired {
			fmt.Fprintln(d.out, "Your session has expired.")
		}
		_ = r.Navigate(router.PathLogin)
	})

	for {
		screens := visibleScreens(d)

		items := make([]string, 0, len(screens)+1)
		for _, s := range screens {
			items = append(items, s.Label)
		}
		items = append(items, "Quit")

		prompt := promptui.Select{
			Label: "Where to?",
			Items: items,
			Size:  len(items),
		}

		index, _, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return fmt.Errorf("selection failed: %w", err)
		}
		if index == len(screens) {
			return nil
		}

		fmt.Fprintln(d.out)
		if err := r.Navigate(screens[index].Path); err != nil {
			fmt.Fprintf(d.out, "⚠ %v\n", err)
		}
		fmt.Fprintln(d.out)

		if sessionEnded {
			fmt.Fprintln(d.out, "Run 'rentwheels login' to sign in again.")
			return nil
		}
	}
}

// visibleScreens builds the menu for the current session. Guards still run on
// navigation; the menu just avoids offering screens that would only bounce.
func visibleScreens(d *deps) []screen {
	sess := d.authCtx.Session()

	screens := []screen{
		{Label: "Home", Path: "/"},
		{Label: "Vehicles", Path: "/vehicles"},
	}

	if !sess.Authenticated() {
		return append(screens,
			screen{Label: "Log in", Path: router.PathLogin},
			screen{Label: "Sign up", Path: "/signup"},
		)
	}

	screens = append(screens,
		screen{Label: "Dashboard", Path: router.PathUserDashboard},
		screen{Label: "My bookings", Path: "/bookings"},
		screen{Label: "Payments", Path: "/payments"},
		screen{Label: "My reviews", Path: "/reviews"},
	)

	return append(screens,
		screen{Label: "Admin console", Path: router.PathAdminHome},
		screen{Label: "Admin: users", Path: "/admin/users"},
		screen{Label: "Admin: vehicles", Path: "/admin/vehicles"},
		screen{Label: "Admin: bookings", Path: "/admin/bookings"},
		screen{Label: "Admin: payments", Path: "/admin/payments"},
		screen{Label: "Admin: reviews", Path: "/admin/reviews"},
		screen{Label: "Admin: support", Path: "/admin/support"},
	)
}
