package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/logging"
)

// Destroy deletes the stack after showing the operator what it is about to
// remove. The stack is polled by id after deletion starts, since the name
// stops resolving once the stack is gone.
func (o *Orchestrator) Destroy(ctx context.Context, stack string) error {
	// Let any in-flight operation settle first; failing to observe it is not
	// a reason to refuse the destroy.
	if _, _, err := o.poller.WaitForStack(ctx, o.client, stack); err != nil {
		logging.Warn("could not wait for stack to settle", "stack", stack, "error", err)
	}

	st, err := o.client.DescribeStack(ctx, stack)
	if err != nil {
		return err
	}
	o.presenter.PrintStack(display.NewStackModel(st))
	if st.ChangeSetId != nil && *st.ChangeSetId != "" {
		desc, err := o.client.DescribeChangeSet(ctx, *st.ChangeSetId)
		if err != nil {
			return err
		}
		o.presenter.PrintChangeSet(display.NewChangeSetModel(desc))
	}

	if !o.confirm(fmt.Sprintf("Destroy stack %s?", stack)) {
		logging.Info("destroy declined", "stack", stack)
		return nil
	}

	boundary := time.Now()
	stackID := stack
	if st.StackId != nil && *st.StackId != "" {
		stackID = *st.StackId
	}
	if err := o.client.DeleteStack(ctx, stack); err != nil {
		return err
	}

	return o.report(ctx, stackID, boundary, types.StackStatusDeleteComplete)
}
