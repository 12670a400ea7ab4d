package display

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeSetModel(t *testing.T) {
	out := &cloudformation.DescribeChangeSetOutput{
		ChangeSetName: aws.String("web-20250701-120000-000001"),
		Status:        types.ChangeSetStatusCreateComplete,
		Changes: []types.Change{
			{
				ResourceChange: &types.ResourceChange{
					Action:            types.ChangeActionModify,
					LogicalResourceId: aws.String("Bucket"),
					ResourceType:      aws.String("AWS::S3::Bucket"),
					Replacement:       types.ReplacementConditional,
					Scope:             []types.ResourceAttribute{types.ResourceAttributeProperties},
					Details: []types.ResourceChangeDetail{{
						Target: &types.ResourceTargetDefinition{
							Attribute:          types.ResourceAttributeProperties,
							Name:               aws.String("BucketName"),
							RequiresRecreation: types.RequiresRecreationAlways,
						},
						CausingEntity: aws.String("BucketName"),
					}},
				},
			},
			// Entries without a resource change carry nothing renderable.
			{ResourceChange: nil},
		},
	}

	m := NewChangeSetModel(out)
	assert.Equal(t, "web-20250701-120000-000001", m.Name)
	assert.Equal(t, types.ChangeSetStatusCreateComplete, m.Status)
	require.Len(t, m.Changes, 1)

	rc := m.Changes[0]
	assert.Equal(t, "Bucket", rc.LogicalID)
	assert.Equal(t, "AWS::S3::Bucket", rc.ResourceType)
	assert.Equal(t, types.ReplacementConditional, rc.Replacement)
	assert.Equal(t, []string{"Properties"}, rc.Scope)
	require.Len(t, rc.Details, 1)
	assert.Equal(t, "BucketName", rc.Details[0].Name)
	assert.Equal(t, types.RequiresRecreationAlways, rc.Details[0].RequiresRecreation)
}

func TestResourceChangeSymbols(t *testing.T) {
	tests := []struct {
		action types.ChangeAction
		symbol string
	}{
		{types.ChangeActionAdd, "+"},
		{types.ChangeActionModify, "~"},
		{types.ChangeActionRemove, "-"},
		{types.ChangeActionDynamic, "~/+"},
		{types.ChangeActionImport, ">"},
		{types.ChangeAction("MYSTERY"), "?"},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			m := ResourceChangeModel{Action: tt.action}
			assert.Equal(t, tt.symbol, m.Symbol())
		})
	}
}

func TestNewStackModel(t *testing.T) {
	m := NewStackModel(types.Stack{
		StackName:         aws.String("web"),
		StackId:           aws.String("arn:aws:cloudformation:eu-west-1:1:stack/web/abc"),
		StackStatus:       types.StackStatusReviewInProgress,
		StackStatusReason: aws.String("User initiated"),
		ChangeSetId:       aws.String("cs-pending"),
		Parameters: []types.Parameter{
			{ParameterKey: aws.String("Env"), ParameterValue: aws.String("prod")},
		},
	})

	assert.Equal(t, "web", m.Name)
	assert.Equal(t, types.StackStatusReviewInProgress, m.Status)
	assert.Equal(t, "cs-pending", m.ChangeSetID)
	require.Len(t, m.Parameters, 1)
	assert.Equal(t, Parameter{Key: "Env", Value: "prod"}, m.Parameters[0])
}

func TestNewSummaryRowsPreservesOrder(t *testing.T) {
	rows := NewSummaryRows([]types.StackSummary{
		{StackName: aws.String("b"), StackStatus: types.StackStatusCreateComplete},
		{StackName: aws.String("a"), StackStatus: types.StackStatusUpdateComplete},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].Name)
	assert.Equal(t, "a", rows[1].Name)
}
