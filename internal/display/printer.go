package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackup-io/stackup/internal/diagnostics"
)

var (
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	modifyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	removeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dynamicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Printer writes render models to a terminal.
type Printer struct {
	Out     io.Writer
	NoColor bool
}

// NewPrinter returns a Printer on stdout.
func NewPrinter(noColor bool) *Printer {
	return &Printer{Out: os.Stdout, NoColor: noColor}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if p.NoColor {
		return text
	}
	return s.Render(text)
}

func (p *Printer) actionStyle(action types.ChangeAction) lipgloss.Style {
	switch action {
	case types.ChangeActionAdd, types.ChangeActionImport:
		return addStyle
	case types.ChangeActionModify:
		return modifyStyle
	case types.ChangeActionDynamic:
		return dynamicStyle
	default:
		return removeStyle
	}
}

func (p *Printer) changeSetStatusStyle(status types.ChangeSetStatus) lipgloss.Style {
	switch status {
	case types.ChangeSetStatusCreateComplete, types.ChangeSetStatusDeleteComplete:
		return okStyle
	case types.ChangeSetStatusCreateInProgress, types.ChangeSetStatusCreatePending,
		types.ChangeSetStatusDeleteInProgress, types.ChangeSetStatusDeletePending:
		return warnStyle
	default:
		return failStyle
	}
}

func (p *Printer) recreationStyle(r types.RequiresRecreation) lipgloss.Style {
	switch r {
	case types.RequiresRecreationNever:
		return okStyle
	case types.RequiresRecreationConditionally:
		return warnStyle
	default:
		return failStyle
	}
}

func (p *Printer) replacementStyle(r types.Replacement) lipgloss.Style {
	switch r {
	case types.ReplacementFalse:
		return okStyle
	case types.ReplacementConditional:
		return warnStyle
	default:
		return failStyle
	}
}

// PrintChangeSet renders a change set diff.
func (p *Printer) PrintChangeSet(m ChangeSetModel) {
	fmt.Fprintf(p.Out, "Change set: %s\n", m.Name)
	statusLine := fmt.Sprintf("Status: %s", m.Status)
	if m.StatusReason != "" {
		statusLine += fmt.Sprintf(" (%s)", m.StatusReason)
	}
	fmt.Fprintln(p.Out, p.style(p.changeSetStatusStyle(m.Status), statusLine))

	for _, rc := range m.Changes {
		style := p.actionStyle(rc.Action)
		fmt.Fprintln(p.Out, p.style(style, fmt.Sprintf("  %s %s (%s)", rc.Symbol(), rc.LogicalID, rc.ResourceType)))
		fmt.Fprintln(p.Out, p.style(style, fmt.Sprintf("    Action: %s", rc.Action)))
		if rc.Replacement != "" {
			fmt.Fprintln(p.Out, p.style(p.replacementStyle(rc.Replacement), fmt.Sprintf("    Replacement: %s", rc.Replacement)))
		}
		if rc.PhysicalID != "" {
			fmt.Fprintf(p.Out, "    Physical resource: %s\n", rc.PhysicalID)
		}
		if len(rc.Scope) > 0 {
			fmt.Fprintf(p.Out, "    Change scope: %s\n", strings.Join(rc.Scope, ", "))
		}
		if len(rc.Details) > 0 {
			fmt.Fprintln(p.Out, "    Changed properties:")
			for _, d := range rc.Details {
				fmt.Fprintf(p.Out, "      %s %s\n", d.Attribute, d.Name)
				if d.RequiresRecreation != "" {
					fmt.Fprintln(p.Out, p.style(p.recreationStyle(d.RequiresRecreation), fmt.Sprintf("        Recreation: %s", d.RequiresRecreation)))
				}
				if d.CausingEntity != "" {
					fmt.Fprintf(p.Out, "        Causing entity: %s\n", d.CausingEntity)
				}
				if d.ChangeSource != "" {
					fmt.Fprintf(p.Out, "        Change source: %s\n", d.ChangeSource)
				}
			}
		}
	}
}

// PrintStack renders a stack description.
func (p *Printer) PrintStack(m StackModel) {
	fmt.Fprintf(p.Out, "Stack: %s\n", m.Name)
	if m.ID != "" {
		fmt.Fprintf(p.Out, "  Id: %s\n", m.ID)
	}
	statusLine := fmt.Sprintf("  Status: %s", m.Status)
	if m.StatusReason != "" {
		statusLine += fmt.Sprintf(" (%s)", m.StatusReason)
	}
	fmt.Fprintln(p.Out, statusLine)
	if m.Description != "" {
		fmt.Fprintf(p.Out, "  Description: %s\n", m.Description)
	}
	if len(m.Parameters) > 0 {
		fmt.Fprintln(p.Out, "  Parameters:")
		for _, param := range m.Parameters {
			fmt.Fprintf(p.Out, "    %s = %s\n", param.Key, param.Value)
		}
	}
}

// PrintResources renders the resource listing of a stack.
func (p *Printer) PrintResources(rows []ResourceRow) {
	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "No resources.")
		return
	}
	fmt.Fprintln(p.Out, "Resources:")
	for _, r := range rows {
		fmt.Fprintf(p.Out, "  %s (%s)\n", r.LogicalID, r.ResourceType)
		if r.PhysicalID != "" {
			fmt.Fprintf(p.Out, "    Physical id: %s\n", r.PhysicalID)
		}
		line := fmt.Sprintf("    Status: %s", r.Status)
		if r.StatusReason != "" {
			line += fmt.Sprintf(" (%s)", r.StatusReason)
		}
		fmt.Fprintln(p.Out, line)
	}
}

// PrintSummaries renders the stack list.
func (p *Printer) PrintSummaries(rows []SummaryRow) {
	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "No stacks.")
		return
	}
	for _, r := range rows {
		line := fmt.Sprintf("%s  %s", r.Name, r.Status)
		if r.Description != "" {
			line += fmt.Sprintf("  %s", r.Description)
		}
		fmt.Fprintln(p.Out, line)
	}
}

// PrintFailures renders resource failure diagnostics, newest first.
func (p *Printer) PrintFailures(failures []diagnostics.Failure) {
	for _, f := range failures {
		fmt.Fprintln(p.Out, p.style(failStyle, fmt.Sprintf("%s: %s", f.ResourceType, f.LogicalID)))
		fmt.Fprintln(p.Out, p.style(failStyle, fmt.Sprintf("  reason: %s", f.Reason)))
		if f.Properties != "" {
			fmt.Fprintln(p.Out, p.style(failStyle, fmt.Sprintf("  properties: %s", f.Properties)))
		}
	}
}
