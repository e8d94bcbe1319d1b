package cli

import (
	"student-dashboard/app/config"
	"student-dashboard/app/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the dashboard tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := config.InitDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		return database.RunMigrations(cmd.Context(), db, log)
	},
}
