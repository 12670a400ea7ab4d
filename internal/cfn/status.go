package cfn

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// Op is the operation the orchestrator should perform next, selected from the
// stack's settled status.
type Op int

const (
	// OpCreate submits a change set of type CREATE.
	OpCreate Op = iota
	// OpUpdate submits a change set of type UPDATE.
	OpUpdate
	// OpRecreate deletes the failed stack and re-enters the create path.
	OpRecreate
	// OpResume picks up the pending change set left in review.
	OpResume
	// OpWait means an operation is still running. Unreachable once the stack
	// has settled; kept so the mapping stays total.
	OpWait
	// OpAbort means the status has no safe next operation.
	OpAbort
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpRecreate:
		return "recreate"
	case OpResume:
		return "resume"
	case OpWait:
		return "wait"
	default:
		return "abort"
	}
}

// Decision pairs the selected operation with the status it was derived from.
type Decision struct {
	Op     Op
	Status types.StackStatus
	Reason string
}

// StackOperationInProgress reports whether the stack status means an
// operation is still running. REVIEW_IN_PROGRESS is settled: the stack is
// waiting on a human, not on CloudFormation.
func StackOperationInProgress(status types.StackStatus) bool {
	switch status {
	case types.StackStatusCreateInProgress,
		types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress,
		types.StackStatusImportRollbackInProgress,
		types.StackStatusRollbackInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress:
		return true
	}
	return false
}

// ChangeSetOperationInProgress reports whether the change set status means an
// operation is still running.
func ChangeSetOperationInProgress(status types.ChangeSetStatus) bool {
	switch status {
	case types.ChangeSetStatusCreateInProgress,
		types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress,
		types.ChangeSetStatusDeletePending:
		return true
	}
	return false
}

// Decide maps a settled stack status onto the next operation. found is false
// when the stack does not exist. The switch enumerates every status the
// service defines so that a new one shows up as a gap here instead of a
// silent abort.
func Decide(status types.StackStatus, reason string, found bool) Decision {
	if !found {
		return Decision{Op: OpCreate}
	}

	d := Decision{Status: status, Reason: reason}
	switch status {
	case types.StackStatusDeleteComplete:
		d.Op = OpCreate
	case types.StackStatusCreateComplete,
		types.StackStatusImportComplete,
		types.StackStatusUpdateComplete,
		types.StackStatusUpdateRollbackComplete:
		d.Op = OpUpdate
	case types.StackStatusCreateFailed,
		types.StackStatusRollbackComplete:
		d.Op = OpRecreate
	case types.StackStatusReviewInProgress:
		d.Op = OpResume
	case types.StackStatusCreateInProgress,
		types.StackStatusDeleteInProgress,
		types.StackStatusImportInProgress,
		types.StackStatusImportRollbackInProgress,
		types.StackStatusRollbackInProgress,
		types.StackStatusUpdateCompleteCleanupInProgress,
		types.StackStatusUpdateInProgress,
		types.StackStatusUpdateRollbackCompleteCleanupInProgress,
		types.StackStatusUpdateRollbackInProgress:
		d.Op = OpWait
	case types.StackStatusDeleteFailed,
		types.StackStatusImportRollbackComplete,
		types.StackStatusImportRollbackFailed,
		types.StackStatusRollbackFailed,
		types.StackStatusUpdateFailed,
		types.StackStatusUpdateRollbackFailed:
		d.Op = OpAbort
	default:
		d.Op = OpAbort
	}
	return d
}
