// Package risk evaluates a fixed checklist of heuristic predicates
// against a project snapshot and produces display-ordered alerts.
// Evaluation is stateless: the same snapshot always yields the same
// alerts, and the fallback guarantees at least one.
package risk

import (
	"fmt"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
)

// Alert severities.
const (
	SeverityDanger  = "danger"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Alert is one fired risk rule with a human-readable title and
// description.
type Alert struct {
	ID          string
	Severity    string
	Title       string
	Description string
}

// budgetDangerPercent is the spend level past which the budget counts
// as nearly exhausted.
const budgetDangerPercent = 80

// spendLeadPercent is how far spend may run ahead of progress before
// it is flagged.
const spendLeadPercent = 20

// stalledProgressPercent mirrors the on-track threshold: a current
// step below it is considered stalled.
const stalledProgressPercent = 30

// Evaluate runs every rule against the snapshot and returns the fired
// alerts in checklist order. The budget-exhausted and spend-ahead
// rules are mutually exclusive; every other rule fires independently.
func Evaluate(snap *model.Snapshot) []Alert {
	var alerts []Alert

	progressPercent := stats.Progress(snap.TimelineSteps)
	spent := stats.SpentBudget(snap.FinanceItems)
	budgetPercent := stats.SpentPercent(spent, snap.Project.Budget)

	if budgetPercent > budgetDangerPercent {
		alerts = append(alerts, Alert{
			ID:       "budget-high",
			Severity: SeverityDanger,
			Title:    "Budget nearly exhausted",
			Description: fmt.Sprintf(
				"%d%% of the budget is spent with the project at %d%% completion.",
				budgetPercent, progressPercent),
		})
	} else if budgetPercent > progressPercent+spendLeadPercent {
		alerts = append(alerts, Alert{
			ID:       "budget-ahead",
			Severity: SeverityWarning,
			Title:    "Spending ahead of progress",
			Description: fmt.Sprintf(
				"Spend is at %d%% of budget while progress is only %d%%.",
				budgetPercent, progressPercent),
		})
	}

	if overdue := stats.OverdueCount(snap.FinanceItems); overdue > 0 {
		alerts = append(alerts, Alert{
			ID:       "overdue-invoices",
			Severity: SeverityDanger,
			Title:    fmt.Sprintf("%d overdue invoices", overdue),
			Description: fmt.Sprintf(
				"%d invoices are past their payment date and need attention.",
				overdue),
		})
	}

	if pending := stats.PendingTotal(snap.FinanceItems); pending > 0 {
		alerts = append(alerts, Alert{
			ID:       "pending-payment",
			Severity: SeverityInfo,
			Title:    "Payments awaiting processing",
			Description: fmt.Sprintf(
				"%s in pending payments is queued for processing.",
				stats.FormatCurrency(pending)),
		})
	}

	current := stats.CurrentStep(snap.TimelineSteps)
	if current == nil && len(snap.TimelineSteps) > 0 && !allCompleted(snap.TimelineSteps) {
		alerts = append(alerts, Alert{
			ID:          "no-active-step",
			Severity:    SeverityWarning,
			Title:       "No active phase",
			Description: "No timeline step is currently in progress although work remains.",
		})
	}

	if current != nil && current.Progress < stalledProgressPercent {
		alerts = append(alerts, Alert{
			ID:       "slow-progress",
			Severity: SeverityInfo,
			Title:    "Current phase moving slowly",
			Description: fmt.Sprintf(
				"%q is only at %d%% completion.",
				current.Label, current.Progress),
		})
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			ID:          "all-good",
			Severity:    SeverityInfo,
			Title:       "Project on schedule",
			Description: "No budget or schedule risks detected.",
		})
	}

	return alerts
}

func allCompleted(steps []model.TimelineStep) bool {
	for _, step := range steps {
		if step.Status != model.StepCompleted {
			return false
		}
	}
	return true
}
