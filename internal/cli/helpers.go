package cli

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/cfn"
	"github.com/stackup-io/stackup/internal/display"
	"github.com/stackup-io/stackup/internal/orchestrator"
	"github.com/stackup-io/stackup/internal/render"
)

// newOrchestrator assembles the orchestrator from the global flags and the
// default AWS config chain.
func newOrchestrator(ctx context.Context, opts orchestrator.Options) (*orchestrator.Orchestrator, error) {
	client, err := cfn.New(ctx)
	if err != nil {
		return nil, err
	}

	poller := cfn.NewPoller(
		time.Duration(pollIntervalSeconds)*time.Second,
		time.Duration(waitTimeoutSeconds)*time.Second,
	)

	confirm := display.ConfirmFunc(display.TerminalConfirm)
	if autoApprove {
		confirm = display.AutoApprove
	}

	return orchestrator.New(
		client,
		poller,
		&render.PklRenderer{},
		display.NewPrinter(noColor),
		confirm,
		opts,
	), nil
}

// parseStatusFilter turns raw flag values into stack status values. The
// values are passed through as-is; the service rejects unknown ones.
func parseStatusFilter(raw []string) []types.StackStatus {
	filter := make([]types.StackStatus, 0, len(raw))
	for _, s := range raw {
		filter = append(filter, types.StackStatus(s))
	}
	return filter
}
