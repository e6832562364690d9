package store

import (
	"context"

	"github.com/nhle/sitetrack/internal/model"
)

// ProjectPatch carries a partial update to the project metadata.
// Nil fields are left unchanged.
type ProjectPatch struct {
	Name      *string
	Location  *string
	Owner     *string
	Budget    *float64
	StartDate *string
}

// StepPatch carries a partial update to a timeline step.
type StepPatch struct {
	Label      *string
	Date       *string
	Status     *string
	Progress   *int
	Contractor *string
	Estimate   *string
}

// FinancePatch carries a partial update to a finance item.
type FinancePatch struct {
	Date      *string
	Name      *string
	Vendor    *string
	Quantity  *string
	UnitPrice *float64
	Total     *float64
	Status    *string
}

// PhotoPatch carries a partial update to a daily photo, typically the
// AI-generated tag after an image analysis completes.
type PhotoPatch struct {
	URL     *string
	AITag   *string
	AIColor *string
	Phase   *string
}

// ContractorPatch carries a partial update to a contractor.
type ContractorPatch struct {
	Name      *string
	Specialty *string
	Phone     *string
	Email     *string
	Rating    *int
	Status    *string
	Notes     *string
}

// IssuePatch carries a partial update to a site issue.
type IssuePatch struct {
	Title        *string
	Description  *string
	Location     *string
	Priority     *string
	Status       *string
	Assignee     *string
	PhotoURL     *string
	ResolvedDate *string
}

// ImportData is the set of collections applied by ImportState. Nil
// collections are left untouched; non-nil collections replace the
// stored ones wholesale. A nil Project keeps the current metadata.
type ImportData struct {
	Project       *model.ProjectInfo
	TimelineSteps *[]model.TimelineStep
	DailyPhotos   *[]model.DailyPhoto
	FinanceItems  *[]model.FinanceItem
	AILogs        *[]model.AILog
	Contractors   *[]model.Contractor
	Documents     *[]model.ProjectDocument
	Issues        *[]model.Issue
}

// Store defines the persistence interface for the project record, its
// collections, the AI journal, and display settings.
type Store interface {
	// === Snapshot ===

	Snapshot(ctx context.Context) (*model.Snapshot, error)

	// === Project metadata ===

	GetProject(ctx context.Context) (model.ProjectInfo, error)
	UpdateProject(ctx context.Context, patch ProjectPatch) error

	// === Timeline ===

	AddTimelineStep(ctx context.Context, step model.TimelineStep) error
	UpdateTimelineStep(ctx context.Context, id string, patch StepPatch) error
	DeleteTimelineStep(ctx context.Context, id string) error
	GetTimelineSteps(ctx context.Context) ([]model.TimelineStep, error)

	// === Finance ===

	AddFinanceItem(ctx context.Context, item model.FinanceItem) error
	UpdateFinanceItem(ctx context.Context, id string, patch FinancePatch) error
	DeleteFinanceItem(ctx context.Context, id string) error
	GetFinanceItems(ctx context.Context) ([]model.FinanceItem, error)

	// === Daily photos ===

	AddPhoto(ctx context.Context, photo model.DailyPhoto) error
	UpdatePhoto(ctx context.Context, id string, patch PhotoPatch) error
	DeletePhoto(ctx context.Context, id string) error
	GetPhotos(ctx context.Context) ([]model.DailyPhoto, error)

	// === Contractors ===

	AddContractor(ctx context.Context, c model.Contractor) error
	UpdateContractor(ctx context.Context, id string, patch ContractorPatch) error
	DeleteContractor(ctx context.Context, id string) error
	GetContractors(ctx context.Context) ([]model.Contractor, error)

	// === Documents ===

	AddDocument(ctx context.Context, doc model.ProjectDocument) error
	DeleteDocument(ctx context.Context, id string) error
	GetDocuments(ctx context.Context) ([]model.ProjectDocument, error)

	// === Issues ===

	AddIssue(ctx context.Context, issue model.Issue) error
	UpdateIssue(ctx context.Context, id string, patch IssuePatch) error
	DeleteIssue(ctx context.Context, id string) error
	GetIssues(ctx context.Context) ([]model.Issue, error)

	// === AI journal ===

	AddAILog(ctx context.Context, entry model.AILog) error
	GetAILogs(ctx context.Context) ([]model.AILog, error)
	ClearAILogs(ctx context.Context) error

	// === Settings ===

	GetDarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error

	// === Import ===

	ImportState(ctx context.Context, data ImportData) error
}
