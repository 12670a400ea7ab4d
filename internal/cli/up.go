package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackup-io/stackup/internal/orchestrator"
)

var (
	upStack    string
	upTemplate string
	upResubmit bool
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update a stack from a pkl template",
	Long: `Renders the template, submits a change set of the appropriate type for
the stack's current status, shows the diff, and executes the change set after
confirmation. A stack left in review resumes its pending change set.`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().StringVarP(&upStack, "stack", "s", "", "Stack name")
	upCmd.Flags().StringVarP(&upTemplate, "template", "t", "", "Path to the pkl template")
	upCmd.Flags().BoolVar(&upResubmit, "resubmit", true, "Submit a fresh change set after deleting a declined pending one")
	upCmd.MarkFlagRequired("stack")
	upCmd.MarkFlagRequired("template")
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	orch, err := newOrchestrator(ctx, orchestrator.Options{ResubmitAfterDelete: upResubmit})
	if err != nil {
		return err
	}
	return orch.Up(ctx, upStack, upTemplate)
}
