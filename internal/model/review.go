package model

import "time"

// ReviewerDecision is a persisted reviewer disposition for one decision.
// At most one live entry exists per decision id within a scope; later saves
// with the same id replace it.
type ReviewerDecision struct {
	DecisionID string         `json:"decisionId"`
	Status     DecisionStatus `json:"status"`
	Notes      string         `json:"notes"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
