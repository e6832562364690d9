package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/sitetrack/internal/model"
)

func TestBuildProjectContext(t *testing.T) {
	snap := &model.Snapshot{
		Project: model.ProjectInfo{
			Name: "Riverside House", Location: "District 7",
			Owner: "The Tran family", Budget: 5000000, StartDate: "12/03/2025",
		},
		TimelineSteps: []model.TimelineStep{
			{ID: "1", Label: "Foundation", Status: model.StepCompleted},
			{ID: "2", Label: "Framing", Status: model.StepCurrent, Progress: 50, Contractor: "Nguyen & Sons"},
		},
		FinanceItems: []model.FinanceItem{
			{ID: "1", Name: "Cement", Total: 1000000, Status: model.FinancePaid},
			{ID: "2", Name: "Steel", Total: 500000, Status: model.FinancePending},
		},
		Issues: []model.Issue{
			{ID: "1", Title: "Crack", Status: model.IssueOpen},
			{ID: "2", Title: "Leak", Status: model.IssueResolved},
		},
	}

	got := BuildProjectContext(snap)

	assert.Contains(t, got, "Project: Riverside House")
	assert.Contains(t, got, "Location: District 7")
	assert.Contains(t, got, "Progress: 75% (1 of 2 steps completed)")
	assert.Contains(t, got, "Budget: 5M, spent 1M (20%)")
	assert.Contains(t, got, "Pending payments: 500k")
	assert.Contains(t, got, "- Framing: current (50%), contractor: Nguyen & Sons")
	assert.Contains(t, got, "Open issues: 1 of 2")
}

func TestConfigured(t *testing.T) {
	assert.False(t, New("", "", 0).Configured())
	assert.True(t, New("sk-test", "", 0).Configured())
}
