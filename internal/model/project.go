package model

// ProjectInfo holds the singleton metadata for the tracked construction
// project. It is updated by partial merge and never deleted.
type ProjectInfo struct {
	Name     string  `json:"name" db:"name"`
	Location string  `json:"location" db:"location"`
	Owner    string  `json:"owner" db:"owner"`
	Budget   float64 `json:"budget" db:"budget"`

	// StartDate is a free-form display string (e.g. "12/03/2025"),
	// not a validated calendar date.
	StartDate string `json:"startDate" db:"start_date"`
}
