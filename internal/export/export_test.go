package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/sitetrack/internal/model"
)

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Project: model.ProjectInfo{
			Name: "Riverside House", Location: "District 7",
			Owner: "The Tran family", Budget: 5000000, StartDate: "12/03/2025",
		},
		TimelineSteps: []model.TimelineStep{
			{ID: "s1", Label: "Foundation", Date: "12/03/2025", Status: model.StepCompleted},
			{ID: "s2", Label: "Framing", Date: "current", Status: model.StepCurrent, Progress: 50},
		},
		FinanceItems: []model.FinanceItem{
			{ID: "f1", Date: "15/03/2025", Name: "Cement", Vendor: "BuildCo",
				Quantity: "20 bags", UnitPrice: 5000, Total: 100000, Status: model.FinancePaid},
		},
		DailyPhotos: []model.DailyPhoto{
			{ID: "p1", URL: "https://example.com/p1.jpg", Timestamp: "15/03/2025 - 08:00",
				AITag: "Pouring concrete", AIColor: "blue", Phase: "Foundation"},
		},
		Contractors: []model.Contractor{
			{ID: "c1", Name: "Nguyen & Sons", Specialty: "Masonry", Rating: 5,
				Status: model.ContractorActive},
		},
		Documents: []model.ProjectDocument{
			{ID: "d1", Name: "Building permit", Category: model.DocPermit, UploadDate: "10/03/2025"},
		},
		Issues: []model.Issue{
			{ID: "i1", Title: "Crack in east wall", Location: "East wall",
				Priority: model.IssuePriorityHigh, Status: model.IssueOpen, CreatedDate: "20/03/2025"},
		},
		AILogs: []model.AILog{
			{ID: "a1", Type: model.AILogChat, Time: "20/03/2025 09:00", Content: "asked about delays"},
		},
	}
}

func TestWriteParse_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap))

	payload, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, payload.Version)
	assert.False(t, payload.ExportedAt.IsZero())

	require.NotNil(t, payload.Project)
	assert.Equal(t, snap.Project, *payload.Project)
	require.NotNil(t, payload.TimelineSteps)
	assert.Equal(t, snap.TimelineSteps, *payload.TimelineSteps)
	require.NotNil(t, payload.FinanceItems)
	assert.Equal(t, snap.FinanceItems, *payload.FinanceItems)
	require.NotNil(t, payload.DailyPhotos)
	assert.Equal(t, snap.DailyPhotos, *payload.DailyPhotos)
	require.NotNil(t, payload.Contractors)
	assert.Equal(t, snap.Contractors, *payload.Contractors)
	require.NotNil(t, payload.Documents)
	assert.Equal(t, snap.Documents, *payload.Documents)
	require.NotNil(t, payload.Issues)
	assert.Equal(t, snap.Issues, *payload.Issues)
	require.NotNil(t, payload.AILogs)
	assert.Equal(t, snap.AILogs, *payload.AILogs)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backup JSON")
}

func TestParse_RejectsMissingTimelineSteps(t *testing.T) {
	doc := `{"project": {"name": "X", "budget": 100}, "version": "1.0"}`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing project metadata or timeline steps")
}

func TestParse_RejectsMissingProject(t *testing.T) {
	doc := `{"timelineSteps": [], "version": "1.0"}`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParse_RejectsNullTimelineSteps(t *testing.T) {
	doc := `{"project": {"name": "X"}, "timelineSteps": null}`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParse_PartialBackupKeepsAbsentCollections(t *testing.T) {
	doc := `{"project": {"name": "X", "budget": 100}, "timelineSteps": []}`
	payload, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	data := payload.ImportData()
	assert.NotNil(t, data.Project)
	assert.NotNil(t, data.TimelineSteps)
	assert.Empty(t, *data.TimelineSteps)
	assert.Nil(t, data.FinanceItems)
	assert.Nil(t, data.DailyPhotos)
	assert.Nil(t, data.Contractors)
	assert.Nil(t, data.Documents)
	assert.Nil(t, data.Issues)
	assert.Nil(t, data.AILogs)
}

func TestDefaultFilename(t *testing.T) {
	at := time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "sitetrack-backup-2025-03-12.json", DefaultFilename(at))
}
