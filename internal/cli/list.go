package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/orchestrator"
)

var listStatusFilter []string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stacks",
	Long: `Lists stacks, filtered by status. Without a filter only existing and
in-creation stacks are shown.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listStatusFilter, "status-filter", nil, "Stack statuses to include (e.g. UPDATE_COMPLETE)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	orch, err := newOrchestrator(ctx, orchestrator.Options{})
	if err != nil {
		return err
	}
	return orch.List(ctx, parseStatusFilter(listStatusFilter))
}
