package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <api-url>",
		Short: "Point the CLI at a RentWheels API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0])
		},
	}
}

func runInit(apiURL string) error {
	if err := config.SetAPIURL(apiURL); err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	fmt.Printf("✓ API URL saved to %s\n", path)
	fmt.Println("\nNext: sign in with 'rentwheels login'")
	return nil
}
