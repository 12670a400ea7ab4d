package cfn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackup-io/stackup/internal/logging"
)

// ErrWaitTimeout is returned when a wait deadline expires before the remote
// operation settles. The wrapped error carries the entity and last status.
var ErrWaitTimeout = errors.New("wait timed out")

// DefaultPollInterval is used when a Poller is constructed without one.
const DefaultPollInterval = 5 * time.Second

// Poller repeatedly queries a remote status until it is no longer classified
// as in progress. Timeout zero means wait forever, which matches the remote
// service's own guarantee that every operation terminates.
type Poller struct {
	Interval time.Duration
	Timeout  time.Duration

	sleep func(time.Duration)
}

// NewPoller returns a Poller with the given interval and deadline.
func NewPoller(interval, timeout time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{Interval: interval, Timeout: timeout, sleep: time.Sleep}
}

// fetchFunc queries the current status and its reason once.
type fetchFunc[S ~string] func(ctx context.Context) (S, string, error)

// wait queries once and returns immediately if the status is already
// settled. Otherwise it sleeps one interval and re-queries until the
// classifier reports the operation finished. Query errors propagate
// unretried.
func wait[S ~string](ctx context.Context, p *Poller, fetch fetchFunc[S], inProgress func(S) bool) (S, string, error) {
	status, reason, err := fetch(ctx)
	if err != nil || !inProgress(status) {
		return status, reason, err
	}

	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var deadline time.Time
	if p.Timeout > 0 {
		deadline = time.Now().Add(p.Timeout)
	}

	logging.Info("waiting for operation to settle", "status", string(status))
	for {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return status, reason, fmt.Errorf("status %s after %s: %w", string(status), p.Timeout, ErrWaitTimeout)
		}
		sleep(p.Interval)
		status, reason, err = fetch(ctx)
		if err != nil {
			return status, reason, err
		}
		if !inProgress(status) {
			return status, reason, nil
		}
		logging.Debug("still in progress", "status", string(status))
	}
}

// WaitForStack polls the stack until its status leaves the in-progress set.
func (p *Poller) WaitForStack(ctx context.Context, client StackStatusReader, name string) (types.StackStatus, string, error) {
	return wait(ctx, p, func(ctx context.Context) (types.StackStatus, string, error) {
		return client.StackStatus(ctx, name)
	}, StackOperationInProgress)
}

// WaitForChangeSet polls the change set until its status leaves the
// in-progress set.
func (p *Poller) WaitForChangeSet(ctx context.Context, client ChangeSetStatusReader, id string) (types.ChangeSetStatus, string, error) {
	return wait(ctx, p, func(ctx context.Context) (types.ChangeSetStatus, string, error) {
		return client.ChangeSetStatus(ctx, id)
	}, ChangeSetOperationInProgress)
}

// StackStatusReader is the slice of the adapter the stack wait needs.
type StackStatusReader interface {
	StackStatus(ctx context.Context, name string) (types.StackStatus, string, error)
}

// ChangeSetStatusReader is the slice of the adapter the change set wait needs.
type ChangeSetStatusReader interface {
	ChangeSetStatus(ctx context.Context, id string) (types.ChangeSetStatus, string, error)
}
