package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/client"
)

// NewProfileCmd creates the profile command and its update subcommand
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile()
		},
	}

	var name, email, password string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileUpdate(name, email, password)
		},
	}
	update.Flags().StringVar(&name, "name", "", "New display name")
	update.Flags().StringVar(&email, "email", "", "New email address")
	update.Flags().StringVar(&password, "password", "", "New password")

	cmd.AddCommand(update)
	return cmd
}

func runProfile(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	user, err := d.api.Profile()
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Name:  %s\n", user.Name)
	fmt.Fprintf(d.out, "Email: %s\n", user.Email)
	fmt.Fprintf(d.out, "Role:  %s\n", user.Role)
	fmt.Fprintf(d.out, "Email verified: %t\n", user.IsEmailVerified)
	return nil
}

func runProfileUpdate(name, email, password string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	if name == "" && email == "" && password == "" {
		return fmt.Errorf("nothing to update (set --name, --email or --password)")
	}

	if email != "" {
		form := struct {
			Email string `validate:"email"`
		}{Email: email}
		if err := validate.Struct(form); err != nil {
			return fmt.Errorf("invalid email: %w", err)
		}
	}
	if password != "" && len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	user, err := d.api.UpdateProfile(client.UpdateProfileRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, "✓ Profile updated.")
	fmt.Fprintf(d.out, "  %s (%s)\n", user.Name, user.Email)
	return nil
}
