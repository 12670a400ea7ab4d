package display

import (
	"bytes"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"

	"github.com/stackup-io/stackup/internal/diagnostics"
)

func TestPrintChangeSet_NoColor(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, NoColor: true}

	p.PrintChangeSet(ChangeSetModel{
		Name:   "web-20250701-120000-000001",
		Status: types.ChangeSetStatusCreateComplete,
		Changes: []ResourceChangeModel{{
			Action:       types.ChangeActionAdd,
			LogicalID:    "Bucket",
			ResourceType: "AWS::S3::Bucket",
			Replacement:  types.ReplacementFalse,
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Change set: web-20250701-120000-000001")
	assert.Contains(t, out, "+ Bucket (AWS::S3::Bucket)")
	assert.Contains(t, out, "Replacement: False")
	assert.NotContains(t, out, "\x1b[", "no escape codes with color disabled")
}

func TestPrintFailures(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, NoColor: true}

	p.PrintFailures([]diagnostics.Failure{{
		ResourceType: "AWS::RDS::DBInstance",
		LogicalID:    "Db",
		Reason:       "instance class unavailable",
		Properties:   `{"DBInstanceClass":"db.t2.micro"}`,
	}})

	out := buf.String()
	assert.Contains(t, out, "AWS::RDS::DBInstance: Db")
	assert.Contains(t, out, "reason: instance class unavailable")
	assert.Contains(t, out, `properties: {"DBInstanceClass":"db.t2.micro"}`)
}

func TestPrintSummaries_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, NoColor: true}
	p.PrintSummaries(nil)
	assert.Equal(t, "No stacks.\n", buf.String())
}
