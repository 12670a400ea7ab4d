// Package cfn wraps the CloudFormation API surface the orchestrator drives:
// stack and change set description, change set submission and execution, and
// the wait-until-settled poller.
package cfn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"

	"github.com/stackup-io/stackup/internal/logging"
)

// ErrStackNotFound is returned when the named stack does not exist.
var ErrStackNotFound = errors.New("stack not found")

// ErrNoPendingChangeSet is returned when a stack in review has no change set
// left in an executable state.
var ErrNoPendingChangeSet = errors.New("no pending change set")

// ErrChangeSetNotFound is returned when the change set no longer exists,
// which is also how the service reports a finished deletion.
var ErrChangeSetNotFound = errors.New("change set not found")

// api is the slice of the CloudFormation SDK client the adapter uses. The
// embedded paginator interfaces come from the SDK's generated code.
type api interface {
	cloudformation.ListStacksAPIClient
	cloudformation.ListStackResourcesAPIClient
	cloudformation.DescribeStackEventsAPIClient
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	CreateChangeSet(ctx context.Context, params *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error)
	DescribeChangeSet(ctx context.Context, params *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSet(ctx context.Context, params *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error)
	DeleteChangeSet(ctx context.Context, params *cloudformation.DeleteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error)
	ListChangeSets(ctx context.Context, params *cloudformation.ListChangeSetsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListChangeSetsOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// Client is a typed adapter over the CloudFormation API. It holds no
// orchestration logic; every call maps to exactly one remote operation and is
// never retried.
type Client struct {
	api api
	now func() time.Time
}

// New loads the default AWS config chain and returns a Client bound to it.
func New(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &Client{api: cloudformation.NewFromConfig(cfg), now: time.Now}, nil
}

// NewFromAPI wraps an existing API implementation. Used by tests.
func NewFromAPI(a api) *Client {
	return &Client{api: a, now: time.Now}
}

// DescribeStack returns the named stack, or ErrStackNotFound.
func (c *Client) DescribeStack(ctx context.Context, name string) (types.Stack, error) {
	out, err := c.api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if isStackNotFound(err) {
			return types.Stack{}, fmt.Errorf("stack %s: %w", name, ErrStackNotFound)
		}
		return types.Stack{}, err
	}
	if len(out.Stacks) == 0 {
		return types.Stack{}, fmt.Errorf("stack %s: %w", name, ErrStackNotFound)
	}
	return out.Stacks[0], nil
}

// StackStatus returns the stack's status and its reason. A stack without a
// status violates the service contract and is reported as a hard error.
func (c *Client) StackStatus(ctx context.Context, name string) (types.StackStatus, string, error) {
	stack, err := c.DescribeStack(ctx, name)
	if err != nil {
		return "", "", err
	}
	if stack.StackStatus == "" {
		return "", "", fmt.Errorf("stack %s has no status", name)
	}
	return stack.StackStatus, reasonOrUnknown(stack.StackStatusReason), nil
}

// ListStacks returns stack summaries matching the status filter, concatenated
// across pages in server order.
func (c *Client) ListStacks(ctx context.Context, filter []types.StackStatus) ([]types.StackSummary, error) {
	var summaries []types.StackSummary
	p := cloudformation.NewListStacksPaginator(c.api, &cloudformation.ListStacksInput{
		StackStatusFilter: filter,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, page.StackSummaries...)
	}
	return summaries, nil
}

// ListStackResources returns the resource summaries of a stack, concatenated
// across pages in server order.
func (c *Client) ListStackResources(ctx context.Context, stackID string) ([]types.StackResourceSummary, error) {
	var resources []types.StackResourceSummary
	p := cloudformation.NewListStackResourcesPaginator(c.api, &cloudformation.ListStackResourcesInput{
		StackName: aws.String(stackID),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		resources = append(resources, page.StackResourceSummaries...)
	}
	return resources, nil
}

// ListStackEvents returns the stack's events concatenated across pages in
// server order, which is newest first.
func (c *Client) ListStackEvents(ctx context.Context, name string) ([]types.StackEvent, error) {
	var events []types.StackEvent
	p := cloudformation.NewDescribeStackEventsPaginator(c.api, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(name),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		events = append(events, page.StackEvents...)
	}
	return events, nil
}

// CreateChangeSet submits a change set of the given type and returns its id.
// The name carries a UTC timestamp with microsecond precision so retries for
// the same stack never collide.
func (c *Client) CreateChangeSet(ctx context.Context, stack, templateBody string, kind types.ChangeSetType) (string, error) {
	name := changeSetName(stack, c.now().UTC())
	logging.Info("creating change set", "stack", stack, "name", name, "type", string(kind))
	out, err := c.api.CreateChangeSet(ctx, &cloudformation.CreateChangeSetInput{
		StackName:     aws.String(stack),
		ChangeSetName: aws.String(name),
		ChangeSetType: kind,
		TemplateBody:  aws.String(templateBody),
	})
	if err != nil {
		return "", err
	}
	if out.Id == nil {
		return "", fmt.Errorf("change set %s: response carries no id", name)
	}
	return *out.Id, nil
}

func changeSetName(stack string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%06d", stack, t.Format("20060102-150405"), t.Nanosecond()/1000)
}

// DescribeChangeSet returns the full change set description, including its
// resource changes.
func (c *Client) DescribeChangeSet(ctx context.Context, id string) (*cloudformation.DescribeChangeSetOutput, error) {
	out, err := c.api.DescribeChangeSet(ctx, &cloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(id),
	})
	if err != nil {
		var nf *types.ChangeSetNotFoundException
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("change set %s: %w", id, ErrChangeSetNotFound)
		}
		return nil, err
	}
	return out, nil
}

// ChangeSetStatus returns the change set's status and its reason.
func (c *Client) ChangeSetStatus(ctx context.Context, id string) (types.ChangeSetStatus, string, error) {
	out, err := c.DescribeChangeSet(ctx, id)
	if err != nil {
		return "", "", err
	}
	if out.Status == "" {
		return "", "", fmt.Errorf("change set %s has no status", id)
	}
	return out.Status, reasonOrUnknown(out.StatusReason), nil
}

// ExecuteChangeSet applies the change set to its stack.
func (c *Client) ExecuteChangeSet(ctx context.Context, id string) error {
	logging.Info("executing change set", "id", id)
	_, err := c.api.ExecuteChangeSet(ctx, &cloudformation.ExecuteChangeSetInput{
		ChangeSetName: aws.String(id),
	})
	return err
}

// DeleteChangeSet discards the change set without applying it.
func (c *Client) DeleteChangeSet(ctx context.Context, id string) error {
	logging.Info("deleting change set", "id", id)
	_, err := c.api.DeleteChangeSet(ctx, &cloudformation.DeleteChangeSetInput{
		ChangeSetName: aws.String(id),
	})
	return err
}

// PendingChangeSet returns the stack's change set that is still available for
// execution, or ErrNoPendingChangeSet.
func (c *Client) PendingChangeSet(ctx context.Context, stack string) (types.ChangeSetSummary, error) {
	out, err := c.api.ListChangeSets(ctx, &cloudformation.ListChangeSetsInput{
		StackName: aws.String(stack),
	})
	if err != nil {
		return types.ChangeSetSummary{}, err
	}
	for _, cs := range out.Summaries {
		if cs.ExecutionStatus == types.ExecutionStatusAvailable {
			return cs, nil
		}
	}
	return types.ChangeSetSummary{}, fmt.Errorf("stack %s: %w", stack, ErrNoPendingChangeSet)
}

// DeleteStack starts deletion of the named stack.
func (c *Client) DeleteStack(ctx context.Context, name string) error {
	logging.Info("deleting stack", "stack", name)
	_, err := c.api.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	return err
}

// isStackNotFound matches the ValidationError the service returns for a
// missing stack. There is no dedicated error shape for this case.
func isStackNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ErrorCode() == "ValidationError" &&
		strings.Contains(apiErr.ErrorMessage(), "does not exist")
}

func reasonOrUnknown(reason *string) string {
	if reason == nil || *reason == "" {
		return "Unknown reason"
	}
	return *reason
}
