package orchestrator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/cfn"
	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/logging"
)

// Preview runs the same branch selection as Up but always terminates at the
// rendered diff: a submitted change set is neither executed nor deleted, so
// the operator can inspect it and pick it up later with Up.
func (o *Orchestrator) Preview(ctx context.Context, stack, template string) error {
	return o.run(ctx, stack, func(ctx context.Context, d cfn.Decision) error {
		switch d.Op {
		case cfn.OpCreate:
			return o.submit(ctx, stack, template, types.ChangeSetTypeCreate, false)
		case cfn.OpUpdate:
			return o.submit(ctx, stack, template, types.ChangeSetTypeUpdate, false)
		case cfn.OpResume:
			return o.previewPending(ctx, stack)
		default:
			logging.Error("nothing to preview for current stack status, check the console",
				"stack", stack, "status", string(d.Status), "reason", d.Reason)
			return nil
		}
	})
}

// previewPending shows the diff of the change set already waiting in review.
func (o *Orchestrator) previewPending(ctx context.Context, stack string) error {
	pending, err := o.client.PendingChangeSet(ctx, stack)
	if err != nil {
		return err
	}
	if pending.ChangeSetId == nil || *pending.ChangeSetId == "" {
		return errNoChangeSetID(stack)
	}

	desc, err := o.client.DescribeChangeSet(ctx, *pending.ChangeSetId)
	if err != nil {
		return err
	}
	logging.Info("found a pending change set", "stack", stack, "id", *pending.ChangeSetId)
	o.presenter.PrintChangeSet(display.NewChangeSetModel(desc))
	return nil
}
