package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/cfn"
	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/logging"
)

// Up brings the stack to the state described by the template: create it if it
// does not exist, update it if it does, recreate it after a failed creation,
// or resume a change set left in review.
func (o *Orchestrator) Up(ctx context.Context, stack, template string) error {
	return o.run(ctx, stack, func(ctx context.Context, d cfn.Decision) error {
		// The boundary has to predate the first mutating call so that
		// failures from earlier attempts are not attributed to this one.
		boundary := time.Now()

		var err error
		switch d.Op {
		case cfn.OpCreate:
			err = o.submit(ctx, stack, template, types.ChangeSetTypeCreate, true)
		case cfn.OpUpdate:
			err = o.submit(ctx, stack, template, types.ChangeSetTypeUpdate, true)
		case cfn.OpRecreate:
			var done bool
			done, err = o.recreate(ctx, stack, template, d)
			if err == nil && !done {
				return nil
			}
		case cfn.OpResume:
			err = o.resume(ctx, stack, template)
		default:
			return nil
		}
		if err != nil {
			return err
		}

		return o.report(ctx, stack, boundary,
			types.StackStatusCreateComplete, types.StackStatusUpdateComplete)
	})
}

// recreate deletes a stack whose creation failed and re-enters the create
// path. Deletion is allowed to proceed unobserved: a poll error there is
// tolerated, not fatal. Returns false when the operator declined the gate.
func (o *Orchestrator) recreate(ctx context.Context, stack, template string, d cfn.Decision) (bool, error) {
	logging.Info("previous stack creation failed", "stack", stack, "status", string(d.Status), "reason", d.Reason)
	if !o.confirm(fmt.Sprintf("Delete and recreate stack %s?", stack)) {
		logging.Info("recreate declined", "stack", stack)
		return false, nil
	}

	if err := o.client.DeleteStack(ctx, stack); err != nil {
		return false, err
	}
	if _, _, err := o.poller.WaitForStack(ctx, o.client, stack); err != nil {
		logging.Warn("could not observe stack deletion", "stack", stack, "error", err)
	}

	return true, o.submit(ctx, stack, template, types.ChangeSetTypeCreate, true)
}

// resume picks up the single change set still available for execution on a
// stack that is waiting in review. The operator can apply it, delete it, or
// leave it alone; after a deletion a fresh update change set is submitted
// when ResubmitAfterDelete is set.
func (o *Orchestrator) resume(ctx context.Context, stack, template string) error {
	pending, err := o.client.PendingChangeSet(ctx, stack)
	if err != nil {
		return err
	}
	if pending.ChangeSetId == nil || *pending.ChangeSetId == "" {
		return errNoChangeSetID(stack)
	}
	id := *pending.ChangeSetId

	desc, err := o.client.DescribeChangeSet(ctx, id)
	if err != nil {
		return err
	}
	logging.Info("found a pending change set", "stack", stack, "id", id)
	o.presenter.PrintChangeSet(display.NewChangeSetModel(desc))

	if o.confirm("Apply this pending change set?") {
		return o.client.ExecuteChangeSet(ctx, id)
	}
	if !o.confirm("Delete this pending change set?") {
		return nil
	}

	if err := o.client.DeleteChangeSet(ctx, id); err != nil {
		return err
	}
	status, reason, err := o.poller.WaitForChangeSet(ctx, o.client, id)
	if err != nil && !errors.Is(err, cfn.ErrChangeSetNotFound) {
		return err
	}
	if !o.opts.ResubmitAfterDelete {
		return nil
	}
	if err == nil && status != types.ChangeSetStatusDeleteComplete {
		return fmt.Errorf("unable to delete change set %s: %s", id, reason)
	}
	return o.submit(ctx, stack, template, types.ChangeSetTypeUpdate, true)
}
