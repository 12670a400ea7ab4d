package cfn

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
)

func TestStackOperationInProgress(t *testing.T) {
	inProgress := []types.StackStatus{
		types.StackStatusCreateInProgress,
		types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress,
		types.StackStatusImportRollbackInProgress,
		types.StackStatusRollbackInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress,
	}
	for _, status := range inProgress {
		assert.True(t, StackOperationInProgress(status), string(status))
	}

	settled := []types.StackStatus{
		types.StackStatusCreateComplete,
		types.StackStatusCreateFailed,
		types.StackStatusDeleteComplete,
		types.StackStatusDeleteFailed,
		types.StackStatusRollbackComplete,
		types.StackStatusUpdateComplete,
		types.StackStatusUpdateFailed,
		// A stack in review waits on a human decision, not on the service.
		types.StackStatusReviewInProgress,
	}
	for _, status := range settled {
		assert.False(t, StackOperationInProgress(status), string(status))
	}
}

func TestChangeSetOperationInProgress(t *testing.T) {
	inProgress := []types.ChangeSetStatus{
		types.ChangeSetStatusCreateInProgress,
		types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress,
		types.ChangeSetStatusDeletePending,
	}
	for _, status := range inProgress {
		assert.True(t, ChangeSetOperationInProgress(status), string(status))
	}

	settled := []types.ChangeSetStatus{
		types.ChangeSetStatusCreateComplete,
		types.ChangeSetStatusDeleteComplete,
		types.ChangeSetStatusDeleteFailed,
		types.ChangeSetStatusFailed,
	}
	for _, status := range settled {
		assert.False(t, ChangeSetOperationInProgress(status), string(status))
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		status types.StackStatus
		want   Op
	}{
		{types.StackStatusDeleteComplete, OpCreate},
		{types.StackStatusCreateComplete, OpUpdate},
		{types.StackStatusImportComplete, OpUpdate},
		{types.StackStatusUpdateComplete, OpUpdate},
		{types.StackStatusUpdateRollbackComplete, OpUpdate},
		{types.StackStatusCreateFailed, OpRecreate},
		{types.StackStatusRollbackComplete, OpRecreate},
		{types.StackStatusReviewInProgress, OpResume},
		{types.StackStatusCreateInProgress, OpWait},
		{types.StackStatusUpdateRollbackInProgress, OpWait},
		{types.StackStatusDeleteFailed, OpAbort},
		{types.StackStatusRollbackFailed, OpAbort},
		{types.StackStatusUpdateFailed, OpAbort},
		{types.StackStatusUpdateRollbackFailed, OpAbort},
		{types.StackStatusImportRollbackComplete, OpAbort},
		{types.StackStatusImportRollbackFailed, OpAbort},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			d := Decide(tt.status, "reason", true)
			assert.Equal(t, tt.want, d.Op)
			assert.Equal(t, tt.status, d.Status)
		})
	}
}

func TestDecide_StackAbsent(t *testing.T) {
	d := Decide("", "", false)
	assert.Equal(t, OpCreate, d.Op)
}

func TestDecide_Total(t *testing.T) {
	// Every status the service defines must map somewhere; an unknown value
	// must land on abort, never on a mutating operation.
	for _, status := range types.StackStatus("").Values() {
		d := Decide(status, "", true)
		assert.LessOrEqual(t, d.Op, OpAbort, string(status))
	}
	assert.Equal(t, OpAbort, Decide(types.StackStatus("SOMETHING_NEW"), "", true).Op)
}
