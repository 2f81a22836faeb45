package cmd

import (
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "exercise-tracker",
	Short: "Exercise tracking REST API",
	Long: `Exercise tracker stores users and the exercises they log, and answers
date-filtered exercise log queries over a small JSON API.

The store backend is picked from DB_CONNECTION_URL: mongodb:// and
mongodb+srv:// URLs use MongoDB, anything else is treated as a Postgres DSN.

Running without a subcommand is the same as 'serve'.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Start()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
