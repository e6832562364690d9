package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/sitetrack/internal/model"
)

func healthySnapshot() *model.Snapshot {
	return &model.Snapshot{
		Project: model.ProjectInfo{Name: "Riverside House", Budget: 5000000},
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCompleted},
			{ID: "2", Label: "Framing", Status: model.StepCurrent, Progress: 50},
			{ID: "3", Label: "Roofing", Status: model.StepPending},
		},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Total: 1000000, Status: model.FinancePaid},
		},
	}
}

func alertIDs(alerts []Alert) []string {
	ids := make([]string, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}
	return ids
}

func TestEvaluate_NeverEmpty(t *testing.T) {
	snapshots := []*model.Snapshot{
		{},
		healthySnapshot(),
		{Project: model.ProjectInfo{Budget: 100}},
	}
	for _, snap := range snapshots {
		assert.NotEmpty(t, Evaluate(snap))
	}
}

func TestEvaluate_AllGoodFallback(t *testing.T) {
	alerts := Evaluate(healthySnapshot())
	require.Len(t, alerts, 1)
	assert.Equal(t, "all-good", alerts[0].ID)
	assert.Equal(t, SeverityInfo, alerts[0].Severity)
}

func TestEvaluate_Idempotent(t *testing.T) {
	snap := healthySnapshot()
	snap.FinanceItems = append(snap.FinanceItems,
		model.FinanceItem{ID: "2", Name: "Steel", Total: 500000, Status: model.FinancePending},
		model.FinanceItem{ID: "3", Name: "Glass", Total: 200000, Status: model.FinanceOverdue},
	)

	first := Evaluate(snap)
	second := Evaluate(snap)
	assert.Equal(t, first, second)
}

func TestEvaluate_BudgetRulesMutuallyExclusive(t *testing.T) {
	// 90% spent: only the exhausted rule may fire, even though spend
	// also outpaces progress.
	snap := &model.Snapshot{
		Project: model.ProjectInfo{Budget: 1000000},
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCurrent, Progress: 50},
			{ID: "2", Label: "Framing", Status: model.StepPending},
		},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Total: 900000, Status: model.FinancePaid},
		},
	}

	ids := alertIDs(Evaluate(snap))
	assert.Contains(t, ids, "budget-high")
	assert.NotContains(t, ids, "budget-ahead")
}

func TestEvaluate_SpendAheadOfProgress(t *testing.T) {
	// 60% spent at 25% progress: ahead by more than 20 points but
	// under the 80% danger line.
	snap := &model.Snapshot{
		Project: model.ProjectInfo{Budget: 1000000},
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCompleted},
			{ID: "2", Label: "Framing", Status: model.StepPending},
			{ID: "3", Label: "Roofing", Status: model.StepPending},
			{ID: "4", Label: "Finishing", Status: model.StepPending},
		},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Total: 600000, Status: model.FinancePaid},
		},
	}

	ids := alertIDs(Evaluate(snap))
	assert.Contains(t, ids, "budget-ahead")
	assert.NotContains(t, ids, "budget-high")
}

func TestEvaluate_OverdueInvoicesCounted(t *testing.T) {
	snap := &model.Snapshot{
		Project: model.ProjectInfo{Budget: 1000000},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Total: 100, Status: model.FinanceOverdue},
			{ID: "2", Name: "Steel", Total: 200, Status: model.FinanceOverdue},
			{ID: "3", Name: "Glass", Total: 300, Status: model.FinanceOverdue},
		},
	}

	alerts := Evaluate(snap)
	var overdue []Alert
	for _, a := range alerts {
		if a.ID == "overdue-invoices" {
			overdue = append(overdue, a)
		}
	}
	require.Len(t, overdue, 1)
	assert.Equal(t, SeverityDanger, overdue[0].Severity)
	assert.Equal(t, "3 overdue invoices", overdue[0].Title)
}

func TestEvaluate_NoActiveStep(t *testing.T) {
	snap := &model.Snapshot{
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCompleted},
			{ID: "2", Label: "Framing", Status: model.StepPending},
		},
	}
	assert.Contains(t, alertIDs(Evaluate(snap)), "no-active-step")
}

func TestEvaluate_NoActiveStepSkippedWhenAllCompleted(t *testing.T) {
	snap := &model.Snapshot{
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCompleted},
			{ID: "2", Label: "Framing", Status: model.StepCompleted},
		},
	}
	ids := alertIDs(Evaluate(snap))
	assert.NotContains(t, ids, "no-active-step")
	assert.Equal(t, []string{"all-good"}, ids)
}

func TestEvaluate_NoActiveStepSkippedWhenNoSteps(t *testing.T) {
	ids := alertIDs(Evaluate(&model.Snapshot{}))
	assert.NotContains(t, ids, "no-active-step")
}

func TestEvaluate_StalledCurrentStep(t *testing.T) {
	snap := &model.Snapshot{
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Roofing", Status: model.StepCurrent, Progress: 10},
		},
	}

	alerts := Evaluate(snap)
	require.Contains(t, alertIDs(alerts), "slow-progress")
	for _, a := range alerts {
		if a.ID == "slow-progress" {
			assert.Contains(t, a.Description, "Roofing")
		}
	}
}

func TestEvaluate_PendingPayments(t *testing.T) {
	snap := &model.Snapshot{
		Project: model.ProjectInfo{Budget: 10000000},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Glass", Total: 750000, Status: model.FinancePending},
		},
	}

	alerts := Evaluate(snap)
	require.Contains(t, alertIDs(alerts), "pending-payment")
	for _, a := range alerts {
		if a.ID == "pending-payment" {
			assert.Equal(t, SeverityInfo, a.Severity)
			assert.Contains(t, a.Description, "750k")
		}
	}
}
