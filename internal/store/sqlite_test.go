package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/store"
	"github.com/nhle/sitetrack/tests/testutil"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestProject_DefaultsAndMergeUpdate(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	project, err := s.GetProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ProjectInfo{}, project, "fresh store starts with empty metadata")

	err = s.UpdateProject(ctx, store.ProjectPatch{
		Name:   strPtr("Riverside House"),
		Budget: f64Ptr(5000000),
	})
	require.NoError(t, err)

	// Second patch touches only the location; other fields survive.
	err = s.UpdateProject(ctx, store.ProjectPatch{Location: strPtr("District 7")})
	require.NoError(t, err)

	project, err = s.GetProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riverside House", project.Name)
	assert.Equal(t, "District 7", project.Location)
	assert.Equal(t, 5000000.0, project.Budget)
}

func TestProject_RejectsNegativeBudget(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.UpdateProject(context.Background(), store.ProjectPatch{Budget: f64Ptr(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestTimelineSteps_AppendOrderAndPatch(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s1", Label: "Foundation", Status: model.StepCompleted,
	}))
	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s2", Label: "Framing", Status: model.StepCurrent, Progress: 40,
	}))
	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s3", Label: "Roofing",
	}))

	steps, err := s.GetTimelineSteps(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, []string{"Foundation", "Framing", "Roofing"},
		[]string{steps[0].Label, steps[1].Label, steps[2].Label},
		"steps keep construction sequence order")
	assert.Equal(t, model.StepPending, steps[2].Status, "status defaults to pending")

	err = s.UpdateTimelineStep(ctx, "s2", store.StepPatch{Progress: intPtr(65)})
	require.NoError(t, err)

	steps, err = s.GetTimelineSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 65, steps[1].Progress)
	assert.Equal(t, "Framing", steps[1].Label, "untouched fields survive the patch")
}

func TestTimelineSteps_ValidationAndNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.AddTimelineStep(ctx, model.TimelineStep{ID: "s1", Label: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label must not be empty")

	err = s.UpdateTimelineStep(ctx, "missing", store.StepPatch{Progress: intPtr(10)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = s.DeleteTimelineStep(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTimelineSteps_ProgressClamped(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s1", Label: "Foundation", Status: model.StepCurrent, Progress: 150,
	}))

	steps, err := s.GetTimelineSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, steps[0].Progress)
}

func TestFinanceItems_NewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFinanceItem(ctx, model.FinanceItem{
		ID: "f1", Name: "Cement", Vendor: "BuildCo", Total: 100000, Status: model.FinancePaid,
	}))
	require.NoError(t, s.AddFinanceItem(ctx, model.FinanceItem{
		ID: "f2", Name: "Steel", Vendor: "SteelWorks", Total: 250000,
	}))

	items, err := s.GetFinanceItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f2", items[0].ID, "latest item listed first")
	assert.Equal(t, model.FinancePending, items[0].Status, "status defaults to pending")

	err = s.UpdateFinanceItem(ctx, "f2", store.FinancePatch{
		Status: strPtr(model.FinanceOverdue),
	})
	require.NoError(t, err)

	items, err = s.GetFinanceItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FinanceOverdue, items[0].Status)

	require.NoError(t, s.DeleteFinanceItem(ctx, "f1"))
	items, err = s.GetFinanceItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPhotos_AITagWriteback(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddPhoto(ctx, model.DailyPhoto{
		ID: "p1", URL: "https://example.com/p1.jpg", Timestamp: "15/03/2025 - 08:00",
	}))

	err := s.UpdatePhoto(ctx, "p1", store.PhotoPatch{
		AITag:   strPtr("Pouring concrete"),
		AIColor: strPtr("blue"),
	})
	require.NoError(t, err)

	photos, err := s.GetPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "Pouring concrete", photos[0].AITag)
	assert.Equal(t, "blue", photos[0].AIColor)
}

func TestContractors_RatingClampedAndOrdered(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddContractor(ctx, model.Contractor{
		ID: "c1", Name: "Nguyen & Sons", Specialty: "Masonry", Rating: 9,
	}))
	require.NoError(t, s.AddContractor(ctx, model.Contractor{
		ID: "c2", Name: "Delta Electric", Specialty: "Electrical", Rating: 4,
	}))

	contractors, err := s.GetContractors(ctx)
	require.NoError(t, err)
	require.Len(t, contractors, 2)
	assert.Equal(t, "c1", contractors[0].ID, "contractors keep insertion order")
	assert.Equal(t, 5, contractors[0].Rating)
	assert.Equal(t, model.ContractorActive, contractors[0].Status)

	err = s.UpdateContractor(ctx, "c2", store.ContractorPatch{
		Status: strPtr(model.ContractorPaused),
		Notes:  strPtr("On hold until framing is done"),
	})
	require.NoError(t, err)

	contractors, err = s.GetContractors(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ContractorPaused, contractors[1].Status)
	assert.Equal(t, "On hold until framing is done", contractors[1].Notes)
}

func TestDocuments_DefaultsAndDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddDocument(ctx, model.ProjectDocument{
		ID: "d1", Name: "Building permit", Category: model.DocPermit, UploadDate: "10/03/2025",
	}))
	require.NoError(t, s.AddDocument(ctx, model.ProjectDocument{
		ID: "d2", Name: "Site sketch",
	}))

	docs, err := s.GetDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d2", docs[0].ID, "latest upload listed first")
	assert.Equal(t, model.DocOther, docs[0].Category, "category defaults to other")
	assert.NotEmpty(t, docs[0].UploadDate, "upload date is stamped")

	require.NoError(t, s.DeleteDocument(ctx, "d1"))
	docs, err = s.GetDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestIssues_ResolveStampsDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddIssue(ctx, model.Issue{
		ID: "i1", Title: "Crack in east wall", Location: "East wall",
		Priority: model.IssuePriorityHigh,
	}))

	issues, err := s.GetIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueOpen, issues[0].Status)
	assert.NotEmpty(t, issues[0].CreatedDate)
	assert.Empty(t, issues[0].ResolvedDate)

	err = s.UpdateIssue(ctx, "i1", store.IssuePatch{
		Status: strPtr(model.IssueResolved),
	})
	require.NoError(t, err)

	issues, err = s.GetIssues(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.IssueResolved, issues[0].Status)
	assert.NotEmpty(t, issues[0].ResolvedDate)
}

func TestAILogs_AppendAndClear(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddAILog(ctx, model.AILog{
		ID: "a1", Type: model.AILogChat, Content: "asked about delays",
	}))
	require.NoError(t, s.AddAILog(ctx, model.AILog{
		ID: "a2", Type: model.AILogPrediction, Content: "projected finish in 6 weeks",
	}))

	logs, err := s.GetAILogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a2", logs[0].ID, "journal lists newest entries first")
	assert.NotEmpty(t, logs[0].Time)

	require.NoError(t, s.ClearAILogs(ctx))
	logs, err = s.GetAILogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDarkMode_Persisted(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	dark, err := s.GetDarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)

	require.NoError(t, s.SetDarkMode(ctx, true))
	dark, err = s.GetDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)
}

func TestSnapshot_AssemblesEverything(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateProject(ctx, store.ProjectPatch{
		Name: strPtr("Riverside House"), Budget: f64Ptr(5000000),
	}))
	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{ID: "s1", Label: "Foundation"}))
	require.NoError(t, s.AddFinanceItem(ctx, model.FinanceItem{ID: "f1", Name: "Cement", Total: 100}))
	require.NoError(t, s.AddPhoto(ctx, model.DailyPhoto{ID: "p1", URL: "u"}))
	require.NoError(t, s.AddContractor(ctx, model.Contractor{ID: "c1", Name: "Nguyen & Sons"}))
	require.NoError(t, s.AddDocument(ctx, model.ProjectDocument{ID: "d1", Name: "Permit"}))
	require.NoError(t, s.AddIssue(ctx, model.Issue{ID: "i1", Title: "Crack"}))
	require.NoError(t, s.AddAILog(ctx, model.AILog{ID: "a1", Content: "hello"}))
	require.NoError(t, s.SetDarkMode(ctx, true))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riverside House", snap.Project.Name)
	assert.Len(t, snap.TimelineSteps, 1)
	assert.Len(t, snap.FinanceItems, 1)
	assert.Len(t, snap.DailyPhotos, 1)
	assert.Len(t, snap.Contractors, 1)
	assert.Len(t, snap.Documents, 1)
	assert.Len(t, snap.Issues, 1)
	assert.Len(t, snap.AILogs, 1)
	assert.True(t, snap.DarkMode)
}

func TestAdd_SameIDLastWriteWins(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{ID: "s1", Label: "Foundation"}))
	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{ID: "s1", Label: "Framing"}))

	steps, err := s.GetTimelineSteps(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "Framing", steps[0].Label)
}
