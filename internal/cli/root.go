// Package cli provides the Cobra commands for easwatch: the continuous
// watch loop (default), a single dry-run check, and the notification test
// modes.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "easwatch",
	Short: "EAS Milan TOEIC exam availability monitor",
	Long: `easwatch polls the EAS Milan TOEIC exam page for sessions that are not
sold out ("Esaurito") and alerts you via desktop toast, sound, and email.

Running easwatch with no arguments starts continuous monitoring.`,
	Example: `  # Start continuous monitoring (same as "easwatch watch")
  easwatch

  # Single check, print every session, send nothing
  easwatch check

  # Send a test email using a synthetic available session
  easwatch test email

  # Run the parser against embedded sample markup
  easwatch test mock`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "easwatch.json", "Path to local config file")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(testCmd)
}
