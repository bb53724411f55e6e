package commands

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			rt.close()
			return nil
		},
	}
}
