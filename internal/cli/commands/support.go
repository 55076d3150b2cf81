package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSupportCmd creates the support command
func NewSupportCmd() *cobra.Command {
	var subject, message string

	cmd := &cobra.Command{
		Use:   "support",
		Short: "Open a support ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSupport(subject, message)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "One-line summary of the problem")
	cmd.Flags().StringVar(&message, "message", "", "Describe the problem")

	return cmd
}

func runSupport(subject, message string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	form := struct {
		Subject string `validate:"required"`
		Message string `validate:"required"`
	}{Subject: subject, Message: message}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("both --subject and --message are required: %w", err)
	}

	if err := d.api.OpenSupportTicket(subject, message); err != nil {
		return err
	}

	fmt.Fprintln(d.out, "✓ Ticket opened. We'll get back to you by email.")
	return nil
}
