package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/commands"
	"github.com/rentwheels-dev/rentwheels/internal/cli/update"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "rentwheels",
	Short: "RentWheels - vehicle rentals from your terminal",
	Long: `RentWheels CLI - Browse vehicles, book rentals, and manage your account.

Sign in once and your session is kept in the system keyring. Every screen is
guarded the same way the web app guards its routes: admin screens need an
admin account, and an expired session drops you back at the login screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip update check for the update and version commands
		if cmd.Name() == "update" || cmd.Name() == "version" {
			return
		}

		update.PrintUpdateNotification(version)
	},
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rentwheels version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewSignupCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewForgotPasswordCmd())
	rootCmd.AddCommand(commands.NewResetPasswordCmd())
	rootCmd.AddCommand(commands.NewProfileCmd())
	rootCmd.AddCommand(commands.NewVehiclesCmd())
	rootCmd.AddCommand(commands.NewBookCmd())
	rootCmd.AddCommand(commands.NewBookingsCmd())
	rootCmd.AddCommand(commands.NewPaymentsCmd())
	rootCmd.AddCommand(commands.NewDashboardCmd())
	rootCmd.AddCommand(commands.NewReviewsCmd())
	rootCmd.AddCommand(commands.NewSupportCmd())
	rootCmd.AddCommand(commands.NewBrowseCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
	rootCmd.AddCommand(commands.NewUpdateCmd(version))
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
