package model

// Timeline step status constants.
const (
	StepCompleted = "completed"
	StepCurrent   = "current"
	StepPending   = "pending"
)

// TimelineStep is one phase of the construction schedule. Steps are
// ordered by Position (the construction sequence), which is caller
// controlled and never re-sorted.
type TimelineStep struct {
	ID    string `json:"id" db:"id"`
	Label string `json:"label" db:"label"`

	// Date is a display string; it may be a placeholder such as
	// "current" or an estimate rather than a parseable date.
	Date   string `json:"date" db:"date"`
	Status string `json:"status" db:"status"`

	// Progress is 0-100 and only meaningful while Status is "current".
	Progress   int    `json:"progress,omitempty" db:"progress"`
	Contractor string `json:"contractor,omitempty" db:"contractor"`
	Estimate   string `json:"estimate,omitempty" db:"estimate"`
	Position   int    `json:"-" db:"position"`
}
