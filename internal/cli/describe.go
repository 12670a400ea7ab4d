package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/orchestrator"
)

var describeStack string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show a stack and its resources",
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().StringVarP(&describeStack, "stack", "s", "", "Stack name")
	describeCmd.MarkFlagRequired("stack")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	orch, err := newOrchestrator(ctx, orchestrator.Options{})
	if err != nil {
		return err
	}
	return orch.Describe(ctx, describeStack)
}
