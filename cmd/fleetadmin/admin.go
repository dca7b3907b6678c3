package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freightdesk/fleetadmin/internal/app"
	"github.com/freightdesk/fleetadmin/internal/services"
)

var adminInput services.SignUpInput

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account or promote an existing one",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmdContext(cmd)
		application, err := app.NewCore(ctx)
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer application.Close()
		if err := application.Migrate(); err != nil {
			return err
		}

		user, err := application.Services.Auth.EnsureAdmin(ctx, adminInput)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin ready: %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminInput.Email, "email", "", "admin email (required)")
	f.StringVar(&adminInput.Name, "name", "Administrator", "display name")
	f.StringVar(&adminInput.Phone, "phone", "", "phone number, required for new accounts")
	f.StringVar(&adminInput.Password, "password", "", "password, required for new accounts")
	f.StringVar(&adminInput.Branch, "branch", "", "branch")
	_ = createAdminCmd.MarkFlagRequired("email")
}
