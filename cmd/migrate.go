package cmd

import (
	"github.com/spf13/cobra"

	"jobtrack/src/log"
	"jobtrack/src/storage/postgres/jobctrl"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run:   RunMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func RunMigrate(cmd *cobra.Command, args []string) {
	db, err := openDatabase()
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	if err := jobctrl.NewRepository(db).AutoMigrate(); err != nil {
		log.Error(err, "Migration failed")
		return
	}

	log.Info("Migration complete")
}
