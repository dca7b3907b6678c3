package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freightdesk/fleetadmin/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		application, err := app.NewCore(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer application.Close()
		if err := application.Migrate(); err != nil {
			return err
		}
		application.Log.Info("migrations applied")
		return nil
	},
}
