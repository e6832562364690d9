package model

// Snapshot is the full current state of the store at one point in
// time. The statistics and risk engines consume snapshots and never
// mutate them; the store re-assembles a fresh snapshot on every read.
//
// The JSON field names match the persisted/export schema.
type Snapshot struct {
	Project       ProjectInfo       `json:"project"`
	TimelineSteps []TimelineStep    `json:"timelineSteps"`
	DailyPhotos   []DailyPhoto      `json:"dailyPhotos"`
	FinanceItems  []FinanceItem     `json:"financeItems"`
	AILogs        []AILog           `json:"aiLogs"`
	Contractors   []Contractor      `json:"contractors"`
	Documents     []ProjectDocument `json:"documents"`
	Issues        []Issue           `json:"issues"`
	DarkMode      bool              `json:"darkMode"`
}
