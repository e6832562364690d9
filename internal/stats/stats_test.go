package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/sitetrack/internal/model"
)

func steps5TwoDoneOneCurrent() []model.TimelineStep {
	return []model.TimelineStep{
		{ID: "1", Label: "Foundation", Status: model.StepCompleted},
		{ID: "2", Label: "Framing", Status: model.StepCompleted},
		{ID: "3", Label: "Roofing", Status: model.StepCurrent, Progress: 50},
		{ID: "4", Label: "Plumbing", Status: model.StepPending},
		{ID: "5", Label: "Finishing", Status: model.StepPending},
	}
}

func TestProgress_EmptyTimeline(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 0, Progress([]model.TimelineStep{}))
}

func TestProgress_CurrentStepContributesFraction(t *testing.T) {
	// 2 completed + 0.5 current out of 5 steps = 50%.
	assert.Equal(t, 50, Progress(steps5TwoDoneOneCurrent()))
}

func TestProgress_AllCompleted(t *testing.T) {
	steps := []model.TimelineStep{
		{ID: "1", Status: model.StepCompleted},
		{ID: "2", Status: model.StepCompleted},
	}
	assert.Equal(t, 100, Progress(steps))
}

func TestProgress_SingleCurrentStaysInRange(t *testing.T) {
	for _, progress := range []int{0, 1, 30, 99, 100} {
		steps := []model.TimelineStep{
			{ID: "1", Status: model.StepCurrent, Progress: progress},
			{ID: "2", Status: model.StepPending},
		}
		got := Progress(steps)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestProgress_MultipleCurrentSumsFractions(t *testing.T) {
	steps := []model.TimelineStep{
		{ID: "1", Status: model.StepCurrent, Progress: 60},
		{ID: "2", Status: model.StepCurrent, Progress: 40},
	}
	// (0.6 + 0.4) / 2 = 50%.
	assert.Equal(t, 50, Progress(steps))
}

func TestRemainingDays(t *testing.T) {
	// 3 non-completed steps x 14 days.
	assert.Equal(t, 42, RemainingDays(steps5TwoDoneOneCurrent()))
	assert.Equal(t, 0, RemainingDays(nil))
}

func TestOnTrack(t *testing.T) {
	assert.True(t, OnTrack(nil), "no steps means nothing is behind")
	assert.True(t, OnTrack(steps5TwoDoneOneCurrent()), "current at 50% is on track")

	stalled := []model.TimelineStep{
		{ID: "1", Status: model.StepCurrent, Progress: 10},
	}
	assert.False(t, OnTrack(stalled))

	noCurrent := []model.TimelineStep{
		{ID: "1", Status: model.StepCompleted},
		{ID: "2", Status: model.StepPending},
	}
	assert.True(t, OnTrack(noCurrent))
}

func TestSpentBudget_PaidOnly(t *testing.T) {
	items := []model.FinanceItem{
		{ID: "1", Name: "Cement", Total: 1000000, Status: model.FinancePaid},
		{ID: "2", Name: "Steel", Total: 250000, Status: model.FinancePaid},
		{ID: "3", Name: "Glass", Total: 500000, Status: model.FinancePending},
		{ID: "4", Name: "Paint", Total: 200000, Status: model.FinanceOverdue},
	}
	assert.Equal(t, 1250000.0, SpentBudget(items))
}

func TestSpentPercent_ZeroBudget(t *testing.T) {
	assert.Equal(t, 0, SpentPercent(500, 0))
}

func TestSpentPercent_AllowsOverHundred(t *testing.T) {
	assert.Equal(t, 125, SpentPercent(1250, 1000))
}

func TestPendingAndOverdue(t *testing.T) {
	items := []model.FinanceItem{
		{ID: "1", Total: 100, Status: model.FinancePending},
		{ID: "2", Total: 200, Status: model.FinancePending},
		{ID: "3", Total: 300, Status: model.FinanceOverdue},
	}
	assert.Equal(t, 300.0, PendingTotal(items))
	assert.Equal(t, 1, OverdueCount(items))
}

func TestVendorAllocation_TopFiveByAmount(t *testing.T) {
	items := []model.FinanceItem{
		{ID: "1", Vendor: "A", Total: 600},
		{ID: "2", Vendor: "B", Total: 150},
		{ID: "3", Vendor: "C", Total: 100},
		{ID: "4", Vendor: "D", Total: 70},
		{ID: "5", Vendor: "E", Total: 50},
		{ID: "6", Vendor: "F", Total: 30},
		{ID: "7", Vendor: "A", Total: 0},
	}

	shares := VendorAllocation(items)
	assert.Len(t, shares, 5, "sixth vendor is dropped")
	assert.Equal(t, "A", shares[0].Vendor)
	assert.Equal(t, 600.0, shares[0].Amount)
	assert.Equal(t, 60, shares[0].Percent)

	sum := 0
	for _, share := range shares {
		sum += share.Percent
	}
	assert.LessOrEqual(t, sum, 100)
}

func TestVendorAllocation_ZeroGrandTotal(t *testing.T) {
	items := []model.FinanceItem{
		{ID: "1", Vendor: "A", Total: 0},
		{ID: "2", Vendor: "B", Total: 0},
	}
	shares := VendorAllocation(items)
	assert.Len(t, shares, 2)
	for _, share := range shares {
		assert.Equal(t, 0, share.Percent)
	}
}

func TestCompute_CanonicalScenario(t *testing.T) {
	snap := &model.Snapshot{
		Project:       model.ProjectInfo{Name: "Riverside House", Budget: 5000000},
		TimelineSteps: steps5TwoDoneOneCurrent(),
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Vendor: "BuildCo", Total: 1000000, Status: model.FinancePaid},
			{ID: "2", Name: "Steel", Vendor: "SteelWorks", Total: 250000, Status: model.FinancePaid},
		},
	}

	summary := Compute(snap)
	assert.Equal(t, 50, summary.ProgressPercent)
	assert.Equal(t, 25, summary.SpentPercent)
	assert.Equal(t, 1250000.0, summary.SpentBudget)
	assert.Equal(t, 42, summary.RemainingDays)
	assert.True(t, summary.OnTrack)
	assert.Equal(t, 2, summary.CompletedSteps)
	assert.Equal(t, 5, summary.TotalSteps)
	assert.Equal(t, 0, summary.OverdueCount)
	assert.Equal(t, 0.0, summary.PendingTotal)
}
