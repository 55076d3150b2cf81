package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewForgotPasswordCmd creates the forgot-password command
func NewForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password-reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForgotPassword(email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address of the account")

	return cmd
}

func runForgotPassword(email string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	form := struct {
		Email string `validate:"required,email"`
	}{Email: email}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("a valid --email is required: %w", err)
	}

	if err := d.api.ForgotPassword(email); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "If an account exists for %s, a reset link is on its way.\n", email)
	fmt.Fprintln(d.out, "Finish with: rentwheels reset-password <token>")
	return nil
}

// NewResetPasswordCmd creates the reset-password command
func NewResetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password using a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetPassword(args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (will prompt if not provided)")

	return cmd
}

func runResetPassword(token, password string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	// Check the token first so the user doesn't type a new password for
	// nothing if the link already expired.
	if err := d.api.VerifyResetToken(token); err != nil {
		return fmt.Errorf("reset token rejected: %w", err)
	}

	if password == "" {
		password, err = promptPassword("New password")
		if err != nil {
			return err
		}
	}

	form := struct {
		Password string `validate:"required,min=6"`
	}{Password: password}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	if err := d.api.ResetPassword(token, password); err != nil {
		return err
	}

	fmt.Fprintln(d.out, "✓ Password updated. Sign in with: rentwheels login")
	return nil
}
