package orchestrator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/logging"
)

// defaultListFilter narrows the list output to stacks that exist or are
// coming into existence.
var defaultListFilter = []types.StackStatus{
	types.StackStatusCreateComplete,
	types.StackStatusCreateInProgress,
	types.StackStatusImportComplete,
	types.StackStatusImportInProgress,
	types.StackStatusUpdateComplete,
}

// List prints the stacks matching the status filter in server order.
func (o *Orchestrator) List(ctx context.Context, filter []types.StackStatus) error {
	if len(filter) == 0 {
		filter = defaultListFilter
	}
	stacks, err := o.client.ListStacks(ctx, filter)
	if err != nil {
		return err
	}
	o.presenter.PrintSummaries(display.NewSummaryRows(stacks))
	return nil
}

// Describe prints the stack and its resources.
func (o *Orchestrator) Describe(ctx context.Context, stack string) error {
	if _, _, err := o.poller.WaitForStack(ctx, o.client, stack); err != nil {
		logging.Warn("could not wait for stack to settle", "stack", stack, "error", err)
	}

	st, err := o.client.DescribeStack(ctx, stack)
	if err != nil {
		return err
	}
	o.presenter.PrintStack(display.NewStackModel(st))

	if st.StackId == nil || *st.StackId == "" {
		return nil
	}
	resources, err := o.client.ListStackResources(ctx, *st.StackId)
	if err != nil {
		return err
	}
	o.presenter.PrintResources(display.NewResourceRows(resources))
	return nil
}
