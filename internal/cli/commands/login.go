package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/router"
	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// loginForm mirrors the web client's login form validation.
type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to RentWheels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set RENTWHEELS_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set RENTWHEELS_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	email = envOr(email, "RENTWHEELS_EMAIL")
	password = envOr(password, "RENTWHEELS_PASSWORD")

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or RENTWHEELS_EMAIL env var)")
	}
	if password == "" {
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}

	form := loginForm{Email: email, Password: password}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("invalid login details: %w", err)
	}

	resp, err := d.api.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// A session only gets established for a role we recognize; anything else
	// from the API forces a re-login, same as the web client.
	role, known := session.ParseRole(resp.User.Role)
	if !known {
		fmt.Fprintln(d.out, "Invalid user role.")
		return fmt.Errorf("login failed: unknown role %q", resp.User.Role)
	}

	if err := d.authCtx.Login(resp.User, resp.Token); err != nil {
		return fmt.Errorf("failed to establish session: %w", err)
	}

	fmt.Fprintln(d.out, "✓ Login successful!")
	fmt.Fprintf(d.out, "  User: %s (%s)\n", resp.User.Name, resp.User.Email)
	fmt.Fprintf(d.out, "  Role: %s\n", role)

	// Land on the role's home screen, through the guards.
	landing := router.PathUserDashboard
	if role == session.RoleAdmin {
		landing = router.PathAdminHome
	}
	fmt.Fprintln(d.out)
	return d.newRouter().Navigate(landing)
}
