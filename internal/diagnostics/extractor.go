// Package diagnostics isolates the resource-level causes of a failed stack
// operation from the stack's event stream.
package diagnostics

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// Failure describes one resource that failed during a stack operation.
type Failure struct {
	ResourceType string
	LogicalID    string
	Reason       string
	Properties   string
}

const (
	unknownResourceType = "unknown resource type"
	unknownLogicalID    = "unknown logical id"
	unknownReason       = "Unknown reason"
)

// FailedResources filters the event stream down to resource failures that
// happened strictly after the boundary. The boundary must be captured before
// the mutating call was issued, otherwise failures from an earlier attempt
// would be blamed on this one. Stream order is preserved; the service serves
// events newest first, so the result is newest failure first.
func FailedResources(events []types.StackEvent, boundary time.Time) []Failure {
	var failures []Failure
	for _, ev := range events {
		switch ev.ResourceStatus {
		case types.ResourceStatusCreateFailed, types.ResourceStatusUpdateFailed:
		default:
			continue
		}
		if ev.Timestamp == nil || !ev.Timestamp.After(boundary) {
			continue
		}
		failures = append(failures, Failure{
			ResourceType: orDefault(ev.ResourceType, unknownResourceType),
			LogicalID:    orDefault(ev.LogicalResourceId, unknownLogicalID),
			Reason:       orDefault(ev.ResourceStatusReason, unknownReason),
			Properties:   orDefault(ev.ResourceProperties, ""),
		})
	}
	return failures
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
