// Package orchestrator drives a stack through the deployment service's
// asynchronous state machine: it reads the settled status, selects the next
// operation, issues the mutating call, and waits for the result.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/cfn"
	"github.com/stackup-io/stackup/internal/diagnostics"
	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/logging"
	"github.com/stackup-io/stackup/internal/render"
)

// Client is the remote adapter surface the orchestrator needs. *cfn.Client
// implements it.
type Client interface {
	DescribeStack(ctx context.Context, name string) (types.Stack, error)
	StackStatus(ctx context.Context, name string) (types.StackStatus, string, error)
	ListStacks(ctx context.Context, filter []types.StackStatus) ([]types.StackSummary, error)
	ListStackResources(ctx context.Context, stackID string) ([]types.StackResourceSummary, error)
	ListStackEvents(ctx context.Context, name string) ([]types.StackEvent, error)
	CreateChangeSet(ctx context.Context, stack, templateBody string, kind types.ChangeSetType) (string, error)
	DescribeChangeSet(ctx context.Context, id string) (*cloudformation.DescribeChangeSetOutput, error)
	ChangeSetStatus(ctx context.Context, id string) (types.ChangeSetStatus, string, error)
	ExecuteChangeSet(ctx context.Context, id string) error
	DeleteChangeSet(ctx context.Context, id string) error
	PendingChangeSet(ctx context.Context, stack string) (types.ChangeSetSummary, error)
	DeleteStack(ctx context.Context, name string) error
}

// Presenter renders stacks, change sets, and diagnostics for the operator.
// *display.Printer implements it.
type Presenter interface {
	PrintChangeSet(display.ChangeSetModel)
	PrintStack(display.StackModel)
	PrintResources([]display.ResourceRow)
	PrintSummaries([]display.SummaryRow)
	PrintFailures([]diagnostics.Failure)
}

// Options configures orchestration behavior that varies across source
// lineages.
type Options struct {
	// ResubmitAfterDelete re-enters the update path after a resumed change
	// set is declined and deleted, instead of stopping at the deletion.
	ResubmitAfterDelete bool
}

// Orchestrator composes the remote adapter, the poller, the template
// renderer, and the presentation layer. A nil confirm declines every gate,
// matching the prompt's default answer.
type Orchestrator struct {
	client    Client
	poller    *cfn.Poller
	renderer  render.Renderer
	presenter Presenter
	confirm   display.ConfirmFunc
	opts      Options
}

// New builds an Orchestrator.
func New(client Client, poller *cfn.Poller, renderer render.Renderer, presenter Presenter, confirm display.ConfirmFunc, opts Options) *Orchestrator {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Orchestrator{
		client:    client,
		poller:    poller,
		renderer:  renderer,
		presenter: presenter,
		confirm:   confirm,
		opts:      opts,
	}
}

func errNoChangeSetID(stack string) error {
	return fmt.Errorf("pending change set for stack %s has no id", stack)
}

// run is the shared pipeline under Up and Preview: wait for any in-flight
// operation to settle, map the settled status onto the next operation, and
// hand the decision to the command's action. An unsafe status aborts with a
// log line and no mutation; the command still exits cleanly because there is
// nothing broken about this process.
func (o *Orchestrator) run(ctx context.Context, stack string, act func(ctx context.Context, d cfn.Decision) error) error {
	status, reason, err := o.poller.WaitForStack(ctx, o.client, stack)
	found := true
	if err != nil {
		if !errors.Is(err, cfn.ErrStackNotFound) {
			return err
		}
		found = false
	}

	d := cfn.Decide(status, reason, found)
	logging.Debug("selected operation", "stack", stack, "op", d.Op.String(), "status", string(d.Status))
	if d.Op == cfn.OpAbort || d.Op == cfn.OpWait {
		logging.Error("no safe operation for current stack status, check the console",
			"stack", stack, "status", string(d.Status), "reason", d.Reason)
		return nil
	}
	return act(ctx, d)
}

// submit renders the template, creates a change set of the given type, waits
// for it to settle, and presents the diff. When execute is true the
// confirmation gate decides whether the change set is executed or deleted;
// preview passes false and stops at the diff.
func (o *Orchestrator) submit(ctx context.Context, stack, template string, kind types.ChangeSetType, execute bool) error {
	body, err := o.renderer.Render(ctx, template)
	if err != nil {
		return err
	}

	id, err := o.client.CreateChangeSet(ctx, stack, body, kind)
	if err != nil {
		return err
	}
	if _, _, err := o.poller.WaitForChangeSet(ctx, o.client, id); err != nil {
		return err
	}

	desc, err := o.client.DescribeChangeSet(ctx, id)
	if err != nil {
		return err
	}
	o.presenter.PrintChangeSet(display.NewChangeSetModel(desc))

	if !execute {
		return nil
	}
	if o.confirm("Apply this change set?") {
		return o.client.ExecuteChangeSet(ctx, id)
	}
	logging.Info("change set declined, deleting it", "id", id)
	return o.client.DeleteChangeSet(ctx, id)
}

// report waits for the stack to settle and classifies the outcome. A
// terminal-but-unsuccessful status is not a process failure: the failing
// resources are extracted from the events recorded after the boundary and
// presented, and the command still exits cleanly.
func (o *Orchestrator) report(ctx context.Context, stack string, boundary time.Time, success ...types.StackStatus) error {
	status, reason, err := o.poller.WaitForStack(ctx, o.client, stack)
	if err != nil {
		return err
	}

	if slices.Contains(success, status) {
		logging.Info("completed successfully", "stack", stack, "status", string(status))
		return nil
	}

	logging.Error("operation did not complete", "stack", stack, "status", string(status), "reason", reason)
	events, err := o.client.ListStackEvents(ctx, stack)
	if err != nil {
		return err
	}
	o.presenter.PrintFailures(diagnostics.FailedResources(events, boundary))
	return nil
}
