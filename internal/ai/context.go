package ai

import (
	"fmt"
	"strings"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
)

// BuildProjectContext serializes a snapshot into the plain-text
// summary sent alongside chat messages. It covers the metadata,
// schedule position, and budget figures the assistant needs to answer
// most questions without tool access.
func BuildProjectContext(snap *model.Snapshot) string {
	summary := stats.Compute(snap)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Project: %s\n", snap.Project.Name))
	if snap.Project.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", snap.Project.Location))
	}
	if snap.Project.Owner != "" {
		sb.WriteString(fmt.Sprintf("Owner: %s\n", snap.Project.Owner))
	}
	if snap.Project.StartDate != "" {
		sb.WriteString(fmt.Sprintf("Started: %s\n", snap.Project.StartDate))
	}

	sb.WriteString(fmt.Sprintf("Progress: %d%% (%d of %d steps completed)\n",
		summary.ProgressPercent, summary.CompletedSteps, summary.TotalSteps))
	sb.WriteString(fmt.Sprintf("Budget: %s, spent %s (%d%%)\n",
		stats.FormatCurrency(summary.TotalBudget),
		stats.FormatCurrency(summary.SpentBudget),
		summary.SpentPercent))
	if summary.OverdueCount > 0 {
		sb.WriteString(fmt.Sprintf("Overdue invoices: %d\n", summary.OverdueCount))
	}
	if summary.PendingTotal > 0 {
		sb.WriteString(fmt.Sprintf("Pending payments: %s\n",
			stats.FormatCurrency(summary.PendingTotal)))
	}

	if len(snap.TimelineSteps) > 0 {
		sb.WriteString("Timeline:\n")
		for _, step := range snap.TimelineSteps {
			sb.WriteString(fmt.Sprintf("- %s: %s", step.Label, step.Status))
			if step.Status == model.StepCurrent {
				sb.WriteString(fmt.Sprintf(" (%d%%)", step.Progress))
			}
			if step.Contractor != "" {
				sb.WriteString(fmt.Sprintf(", contractor: %s", step.Contractor))
			}
			sb.WriteString("\n")
		}
	}

	if len(snap.Issues) > 0 {
		open := 0
		for _, issue := range snap.Issues {
			if issue.Status != model.IssueResolved {
				open++
			}
		}
		sb.WriteString(fmt.Sprintf("Open issues: %d of %d\n", open, len(snap.Issues)))
	}

	return sb.String()
}
