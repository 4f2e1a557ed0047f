package commands

import (
	"github.com/spf13/cobra"
)

var serverAddr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hallctl",
	Short: "hallctl - command line client for the hall booking API",
	Long: `hallctl talks to a running hall-booking server over HTTP.

It can register meeting rooms, book time slots and inspect room
occupancy and customer booking history.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8080",
		"Base URL of the hall-booking server")
}
