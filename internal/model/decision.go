package model

// Decision is one of three fixed horizon-scoped recommendations
type Decision struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Rationale         string         `json:"rationale"`
	Impact            int            `json:"impact"`
	Effort            int            `json:"effort"`
	Urgency           int            `json:"urgency"`
	Score             float64        `json:"score"` // Weighted sort key, distinct from ScoreBreakdown.Total
	Horizon           Horizon        `json:"horizon"`
	ScoreBreakdown    ScoreBreakdown `json:"scoreBreakdown"`
	GovernanceReasons []string       `json:"governanceReasons"`
	Status            DecisionStatus `json:"status"`
	ConflictSourceIDs []string       `json:"conflictSourceIds"`
}

// Horizon is a fixed planning window
type Horizon string

const (
	Horizon24h Horizon = "24h"
	Horizon7d  Horizon = "7d"
	Horizon30d Horizon = "30d"
)

// Horizons returns the fixed horizon order (24h, 7d, 30d)
func Horizons() []Horizon {
	return []Horizon{Horizon24h, Horizon7d, Horizon30d}
}

// DecisionStatus is the governance lifecycle state of a decision
type DecisionStatus string

const (
	StatusAccepted    DecisionStatus = "accepted"
	StatusNeedsReview DecisionStatus = "needs-review"
	StatusRejected    DecisionStatus = "rejected"
)

// ValidStatus reports whether s is a recognized decision status
func ValidStatus(s DecisionStatus) bool {
	switch s {
	case StatusAccepted, StatusNeedsReview, StatusRejected:
		return true
	}
	return false
}
