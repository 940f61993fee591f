package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Personal job-application tracker API",
	Long:  `jobtrack serves the HTTP API of a personal job-application tracker: create and search tracked applications, and view per-status and per-month aggregates.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	settingDefaultConfig()
}
