package model

// DailyPhoto is a site photo with its AI-generated tag. URL may be a
// remote link or an embedded base64 blob. Phase is intended to match a
// TimelineStep label but is not referentially enforced.
type DailyPhoto struct {
	ID        string `json:"id" db:"id"`
	URL       string `json:"url" db:"url"`
	Timestamp string `json:"timestamp" db:"timestamp"`
	AITag     string `json:"aiTag" db:"ai_tag"`
	AIColor   string `json:"aiColor" db:"ai_color"`
	Phase     string `json:"phase,omitempty" db:"phase"`
	Position  int    `json:"-" db:"position"`
}
