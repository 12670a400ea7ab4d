package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/orchestrator"
)

var (
	previewStack    string
	previewTemplate string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the change set a deploy would apply",
	Long: `Renders the template and submits a change set, but never executes or
deletes it: the command always terminates at the diff.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewStack, "stack", "s", "", "Stack name")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Path to the pkl template")
	previewCmd.MarkFlagRequired("stack")
	previewCmd.MarkFlagRequired("template")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	orch, err := newOrchestrator(ctx, orchestrator.Options{})
	if err != nil {
		return err
	}
	return orch.Preview(ctx, previewStack, previewTemplate)
}
