package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/orchestrator"
)

var destroyStack string

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete a stack and all its resources",
	RunE:  runDestroy,
}

func init() {
	destroyCmd.Flags().StringVarP(&destroyStack, "stack", "s", "", "Stack name")
	destroyCmd.MarkFlagRequired("stack")
}

func runDestroy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	orch, err := newOrchestrator(ctx, orchestrator.Options{})
	if err != nil {
		return err
	}
	return orch.Destroy(ctx, destroyStack)
}
