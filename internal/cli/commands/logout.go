package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	if !d.authCtx.Session().Authenticated() {
		fmt.Fprintln(d.out, "You are not signed in.")
		return nil
	}

	return d.authCtx.Logout()
}
