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

func seedStore(t *testing.T, s *store.SQLiteStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.UpdateProject(ctx, store.ProjectPatch{
		Name: strPtr("Old House"), Budget: f64Ptr(1000000),
	}))
	require.NoError(t, s.AddTimelineStep(ctx, model.TimelineStep{ID: "old-s", Label: "Old step"}))
	require.NoError(t, s.AddFinanceItem(ctx, model.FinanceItem{ID: "old-f", Name: "Old item", Total: 500}))
	require.NoError(t, s.AddContractor(ctx, model.Contractor{ID: "old-c", Name: "Old crew"}))
}

func TestImportState_ReplacesPresentCollections(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedStore(t, s)

	steps := []model.TimelineStep{
		{ID: "n1", Label: "Foundation", Status: model.StepCompleted},
		{ID: "n2", Label: "Framing", Status: model.StepCurrent, Progress: 30},
	}
	project := model.ProjectInfo{Name: "New House", Budget: 9000000}

	err := s.ImportState(ctx, store.ImportData{
		Project:       &project,
		TimelineSteps: &steps,
	})
	require.NoError(t, err)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "New House", snap.Project.Name)
	assert.Equal(t, 9000000.0, snap.Project.Budget)

	require.Len(t, snap.TimelineSteps, 2)
	assert.Equal(t, "Foundation", snap.TimelineSteps[0].Label, "imported order preserved")
	assert.Equal(t, "Framing", snap.TimelineSteps[1].Label)

	// Absent collections keep their current contents.
	assert.Len(t, snap.FinanceItems, 1)
	assert.Equal(t, "old-f", snap.FinanceItems[0].ID)
	assert.Len(t, snap.Contractors, 1)
}

func TestImportState_EmptyCollectionClears(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedStore(t, s)

	empty := []model.FinanceItem{}
	err := s.ImportState(ctx, store.ImportData{FinanceItems: &empty})
	require.NoError(t, err)

	items, err := s.GetFinanceItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "present-but-empty collection replaces stored data")

	steps, err := s.GetTimelineSteps(ctx)
	require.NoError(t, err)
	assert.Len(t, steps, 1, "absent collections untouched")
}

func TestImportState_RoundTripThroughSnapshot(t *testing.T) {
	src := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, src.UpdateProject(ctx, store.ProjectPatch{
		Name: strPtr("Riverside House"), Budget: f64Ptr(5000000),
	}))
	require.NoError(t, src.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s1", Label: "Foundation", Status: model.StepCompleted,
	}))
	require.NoError(t, src.AddTimelineStep(ctx, model.TimelineStep{
		ID: "s2", Label: "Framing", Status: model.StepCurrent, Progress: 50,
	}))
	require.NoError(t, src.AddFinanceItem(ctx, model.FinanceItem{
		ID: "f1", Name: "Cement", Vendor: "BuildCo", Total: 100000, Status: model.FinancePaid,
	}))
	require.NoError(t, src.AddFinanceItem(ctx, model.FinanceItem{
		ID: "f2", Name: "Steel", Vendor: "SteelWorks", Total: 250000, Status: model.FinancePending,
	}))
	require.NoError(t, src.AddPhoto(ctx, model.DailyPhoto{
		ID: "p1", URL: "https://example.com/p1.jpg", AITag: "Pouring concrete",
	}))
	require.NoError(t, src.AddIssue(ctx, model.Issue{
		ID: "i1", Title: "Crack in east wall", Priority: model.IssuePriorityHigh,
	}))

	original, err := src.Snapshot(ctx)
	require.NoError(t, err)

	dst := testutil.NewTestStore(t)
	err = dst.ImportState(ctx, store.ImportData{
		Project:       &original.Project,
		TimelineSteps: &original.TimelineSteps,
		DailyPhotos:   &original.DailyPhotos,
		FinanceItems:  &original.FinanceItems,
		AILogs:        &original.AILogs,
		Contractors:   &original.Contractors,
		Documents:     &original.Documents,
		Issues:        &original.Issues,
	})
	require.NoError(t, err)

	restored, err := dst.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, original.Project, restored.Project)
	assert.Equal(t, original.TimelineSteps, restored.TimelineSteps)
	assert.Equal(t, original.DailyPhotos, restored.DailyPhotos)
	assert.Equal(t, original.FinanceItems, restored.FinanceItems)
	assert.Equal(t, original.Contractors, restored.Contractors)
	assert.Equal(t, original.Documents, restored.Documents)
	assert.Equal(t, original.Issues, restored.Issues)
	assert.Equal(t, original.AILogs, restored.AILogs)
}
