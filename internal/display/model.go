// Package display renders stacks, change sets, resources, and failure
// diagnostics for the operator. Models are pure transforms of the service
// response types; the orchestration core never formats anything itself.
package display

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

const (
	unknownChangeSet    = "unknown change set"
	unknownResourceType = "unknown resource type"
	unknownLogicalID    = "unknown logical id"
)

// ChangeSetModel is the renderable form of a change set and its diff.
type ChangeSetModel struct {
	Name         string
	Status       types.ChangeSetStatus
	StatusReason string
	Changes      []ResourceChangeModel
}

// ResourceChangeModel is one resource-level entry of a change set diff.
type ResourceChangeModel struct {
	Action       types.ChangeAction
	LogicalID    string
	PhysicalID   string
	ResourceType string
	Replacement  types.Replacement
	Scope        []string
	Details      []ChangeDetailModel
}

// ChangeDetailModel is one attribute-level change under a resource change.
type ChangeDetailModel struct {
	Attribute          string
	Name               string
	RequiresRecreation types.RequiresRecreation
	CausingEntity      string
	ChangeSource       string
}

// Symbol returns the one-glyph plan marker for the change action.
func (m ResourceChangeModel) Symbol() string {
	switch m.Action {
	case types.ChangeActionAdd:
		return "+"
	case types.ChangeActionModify:
		return "~"
	case types.ChangeActionRemove:
		return "-"
	case types.ChangeActionDynamic:
		return "~/+"
	case types.ChangeActionImport:
		return ">"
	default:
		return "?"
	}
}

// NewChangeSetModel builds the render model from a change set description.
func NewChangeSetModel(out *cloudformation.DescribeChangeSetOutput) ChangeSetModel {
	m := ChangeSetModel{
		Name:         deref(out.ChangeSetName, unknownChangeSet),
		Status:       out.Status,
		StatusReason: deref(out.StatusReason, ""),
	}
	for _, change := range out.Changes {
		rc := change.ResourceChange
		if rc == nil {
			continue
		}
		rcm := ResourceChangeModel{
			Action:       rc.Action,
			LogicalID:    deref(rc.LogicalResourceId, unknownLogicalID),
			PhysicalID:   deref(rc.PhysicalResourceId, ""),
			ResourceType: deref(rc.ResourceType, unknownResourceType),
			Replacement:  rc.Replacement,
		}
		for _, scope := range rc.Scope {
			rcm.Scope = append(rcm.Scope, string(scope))
		}
		for _, detail := range rc.Details {
			dm := ChangeDetailModel{
				CausingEntity: deref(detail.CausingEntity, ""),
				ChangeSource:  string(detail.ChangeSource),
			}
			if detail.Target != nil {
				dm.Attribute = string(detail.Target.Attribute)
				dm.Name = deref(detail.Target.Name, "")
				dm.RequiresRecreation = detail.Target.RequiresRecreation
			}
			rcm.Details = append(rcm.Details, dm)
		}
		m.Changes = append(m.Changes, rcm)
	}
	return m
}

// StackModel is the renderable form of a stack description.
type StackModel struct {
	Name         string
	ID           string
	Status       types.StackStatus
	StatusReason string
	Description  string
	ChangeSetID  string
	Parameters   []Parameter
}

// Parameter is one stack parameter key/value pair.
type Parameter struct {
	Key   string
	Value string
}

// NewStackModel builds the render model from a stack description.
func NewStackModel(stack types.Stack) StackModel {
	m := StackModel{
		Name:         deref(stack.StackName, ""),
		ID:           deref(stack.StackId, ""),
		Status:       stack.StackStatus,
		StatusReason: deref(stack.StackStatusReason, ""),
		Description:  deref(stack.Description, ""),
		ChangeSetID:  deref(stack.ChangeSetId, ""),
	}
	for _, p := range stack.Parameters {
		m.Parameters = append(m.Parameters, Parameter{
			Key:   deref(p.ParameterKey, ""),
			Value: deref(p.ParameterValue, ""),
		})
	}
	return m
}

// ResourceRow is one stack resource in the describe listing.
type ResourceRow struct {
	LogicalID    string
	PhysicalID   string
	ResourceType string
	Status       types.ResourceStatus
	StatusReason string
}

// NewResourceRows builds resource rows from stack resource summaries.
func NewResourceRows(resources []types.StackResourceSummary) []ResourceRow {
	rows := make([]ResourceRow, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, ResourceRow{
			LogicalID:    deref(r.LogicalResourceId, unknownLogicalID),
			PhysicalID:   deref(r.PhysicalResourceId, ""),
			ResourceType: deref(r.ResourceType, unknownResourceType),
			Status:       r.ResourceStatus,
			StatusReason: deref(r.ResourceStatusReason, ""),
		})
	}
	return rows
}

// SummaryRow is one stack in the list output.
type SummaryRow struct {
	Name        string
	Status      types.StackStatus
	Description string
}

// NewSummaryRows builds list rows from stack summaries, preserving server
// order.
func NewSummaryRows(stacks []types.StackSummary) []SummaryRow {
	rows := make([]SummaryRow, 0, len(stacks))
	for _, s := range stacks {
		rows = append(rows, SummaryRow{
			Name:        deref(s.StackName, ""),
			Status:      s.StackStatus,
			Description: deref(s.TemplateDescription, ""),
		})
	}
	return rows
}

func deref(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
