package model

// Issue priority constants.
const (
	IssuePriorityHigh   = "high"
	IssuePriorityMedium = "medium"
	IssuePriorityLow    = "low"
)

// Issue status constants.
const (
	IssueOpen       = "open"
	IssueInProgress = "in_progress"
	IssueResolved   = "resolved"
)

// Issue is a defect or problem ticket raised against the site
// ("cracked wall, living room, floor 1"). ResolvedDate is present by
// convention when Status is "resolved"; this is not enforced on
// direct mutation.
type Issue struct {
	ID           string `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description,omitempty" db:"description"`
	Location     string `json:"location" db:"location"`
	Priority     string `json:"priority" db:"priority"`
	Status       string `json:"status" db:"status"`
	Assignee     string `json:"assignee,omitempty" db:"assignee"`
	PhotoURL     string `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedDate  string `json:"createdDate" db:"created_date"`
	ResolvedDate string `json:"resolvedDate,omitempty" db:"resolved_date"`
	Position     int    `json:"-" db:"position"`
}
