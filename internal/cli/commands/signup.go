package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// signupForm mirrors the web client's registration form validation.
type signupForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// NewSignupCmd creates the signup command
func NewSignupCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a RentWheels account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(name, email, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")

	return cmd
}

func runSignup(name, email, password string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	if password == "" {
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}

	form := signupForm{Name: name, Email: email, Password: password}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("invalid signup details: %w", err)
	}

	if err := d.api.Register(name, email, password); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Fprintln(d.out, "✓ Account created!")
	fmt.Fprintln(d.out, "Sign in with: rentwheels login --email", email)
	return nil
}
