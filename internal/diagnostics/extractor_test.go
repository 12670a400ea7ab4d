package diagnostics

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(ts time.Time, status types.ResourceStatus, logicalID string) types.StackEvent {
	return types.StackEvent{
		Timestamp:          aws.Time(ts),
		ResourceStatus:     status,
		LogicalResourceId:  aws.String(logicalID),
		ResourceType:       aws.String("AWS::S3::Bucket"),
		ResourceProperties: aws.String(`{"BucketName":"x"}`),
	}
}

func TestFailedResources_Boundary(t *testing.T) {
	boundary := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	events := []types.StackEvent{
		event(boundary.Add(-10*time.Second), types.ResourceStatusCreateFailed, "OldFailure"),
		event(boundary.Add(5*time.Second), types.ResourceStatusCreateFailed, "FreshFailure"),
		event(boundary.Add(20*time.Second), types.ResourceStatusUpdateComplete, "Healthy"),
	}

	failures := FailedResources(events, boundary)
	require.Len(t, failures, 1)
	assert.Equal(t, "FreshFailure", failures[0].LogicalID)
	assert.Equal(t, "AWS::S3::Bucket", failures[0].ResourceType)
}

func TestFailedResources_ExactBoundaryExcluded(t *testing.T) {
	boundary := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	events := []types.StackEvent{
		event(boundary, types.ResourceStatusCreateFailed, "AtBoundary"),
	}
	assert.Empty(t, FailedResources(events, boundary))
}

func TestFailedResources_OrderPreserved(t *testing.T) {
	boundary := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	// The service serves events newest first; the extractor must not re-sort.
	events := []types.StackEvent{
		event(boundary.Add(30*time.Second), types.ResourceStatusUpdateFailed, "Third"),
		event(boundary.Add(20*time.Second), types.ResourceStatusCreateFailed, "Second"),
		event(boundary.Add(10*time.Second), types.ResourceStatusCreateFailed, "First"),
	}

	failures := FailedResources(events, boundary)
	require.Len(t, failures, 3)
	assert.Equal(t, "Third", failures[0].LogicalID)
	assert.Equal(t, "Second", failures[1].LogicalID)
	assert.Equal(t, "First", failures[2].LogicalID)
}

func TestFailedResources_MissingFieldsGetDefaults(t *testing.T) {
	boundary := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	events := []types.StackEvent{{
		Timestamp:      aws.Time(boundary.Add(time.Second)),
		ResourceStatus: types.ResourceStatusCreateFailed,
	}}

	failures := FailedResources(events, boundary)
	require.Len(t, failures, 1)
	assert.Equal(t, "Unknown reason", failures[0].Reason)
	assert.Equal(t, "unknown resource type", failures[0].ResourceType)
	assert.Equal(t, "unknown logical id", failures[0].LogicalID)
	assert.Empty(t, failures[0].Properties)
}

func TestFailedResources_NoTimestampSkipped(t *testing.T) {
	boundary := time.Now()
	events := []types.StackEvent{{
		ResourceStatus:    types.ResourceStatusCreateFailed,
		LogicalResourceId: aws.String("NoClock"),
	}}
	assert.Empty(t, FailedResources(events, boundary))
}
