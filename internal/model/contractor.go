package model

// Contractor status constants.
const (
	ContractorActive    = "active"
	ContractorCompleted = "completed"
	ContractorPaused    = "paused"
)

// Contractor is one entry in the project's contractor roster.
type Contractor struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Specialty string `json:"specialty" db:"specialty"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email,omitempty" db:"email"`

	// Rating is 1-5.
	Rating   int    `json:"rating" db:"rating"`
	Status   string `json:"status" db:"status"`
	Notes    string `json:"notes,omitempty" db:"notes"`
	Position int    `json:"-" db:"position"`
}
