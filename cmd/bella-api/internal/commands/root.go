package commands

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/bella-api.yaml"

// NewRootCommand builds the CLI. Running it without a subcommand serves the API.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bella-api",
		Short: "Bella car wash subscription API",
		Long: `bella-api serves the Bella car wash subscription platform.

Configuration is read from an optional YAML file and the environment
(PORT, DATABASE_URL, FRONTEND_URL, JWT_SECRET, STRIPE_WEBHOOK_SECRET,
RATE_LIMIT_WINDOW_MS, RATE_LIMIT_MAX_REQUESTS, REDIS_URL, ...).
A .env file in the working directory is loaded first when present.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = defaultConfigPath
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "path to the YAML config file (optional)")

	rootCmd.AddCommand(
		newServeCommand(&configPath),
		newMigrateCommand(&configPath),
		newAdminCommand(&configPath),
	)
	return rootCmd
}
