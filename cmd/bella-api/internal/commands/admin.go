package commands

import (
	"fmt"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"

	"github.com/spf13/cobra"
)

func newAdminCommand(configPath *string) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office accounts",
	}

	var input accounts.RegisterInput
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer rt.close()

			services, _, err := rt.services(nil)
			if err != nil {
				return err
			}

			user, err := services.Auth.CreateAdmin(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	createCmd.Flags().StringVar(&input.Email, "email", "", "admin email address")
	createCmd.Flags().StringVar(&input.Password, "password", "", "admin password (8 to 72 characters)")
	createCmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	createCmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(createCmd)
	return adminCmd
}
