package diagnosis

import "time"

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Result is the structured outcome of one image analysis.
type Result struct {
	Confidence      int
	Findings        []string
	Recommendations []string
	Urgency         Urgency
	Disclaimer      string
}

// Analysis is a stored analysis run, owned by one user. The image
// itself is never persisted.
type Analysis struct {
	ID     string
	UserID string

	Question string
	Result   Result

	CreatedAt time.Time
}
