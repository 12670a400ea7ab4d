// Package cli wires the cobra command surface to the orchestrator.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/logging"
)

var (
	pollIntervalSeconds int
	waitTimeoutSeconds  int
	logLevel            string
	noColor             bool
	autoApprove         bool
)

var rootCmd = &cobra.Command{
	Use:   "stackup",
	Short: "Deploy pkl-defined CloudFormation stacks",
	Long: `Stackup drives CloudFormation through change sets to create, update,
preview, and destroy a stack defined by a pkl template.

Every mutating operation is previewed as a change set diff and gated behind
an explicit confirmation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&pollIntervalSeconds, "poll-interval", "p", 5, "Seconds between status polls")
	rootCmd.PersistentFlags().IntVar(&waitTimeoutSeconds, "wait-timeout", 0, "Abort a wait after this many seconds (0 = wait forever)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&autoApprove, "yes", "y", false, "Answer yes to every confirmation prompt")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(destroyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(describeCmd)
}
