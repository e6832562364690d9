package model

// AI log type constants.
const (
	AILogChat       = "CHAT"
	AILogImage      = "IMAGE ANALYSIS"
	AILogPrediction = "PREDICTION"
)

// AILog is one recorded assistant interaction shown in the AI journal.
type AILog struct {
	ID       string `json:"id" db:"id"`
	Type     string `json:"type" db:"type"`
	Time     string `json:"time" db:"time"`
	Content  string `json:"content" db:"content"`
	Position int    `json:"-" db:"position"`
}
