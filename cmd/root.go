package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Stock image storefront API",
		Long: `Storefront serves a stock image catalog with user accounts,
seller uploads and per-user shopping carts over a JSON HTTP API.

Configuration comes from the environment; a .env file in the working
directory is loaded first when present.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd(version))

	return cmd
}
