package model

// Claim represents a typed assertion extracted from a source
type Claim struct {
	Text            string         `json:"text"`
	Type            ClaimType      `json:"type"`
	Confidence      Confidence     `json:"confidence"`
	ConfidenceScore int            `json:"confidenceScore"`
	ScoreBreakdown  ScoreBreakdown `json:"scoreBreakdown"`
	SourceID        string         `json:"sourceId"`
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimTypeOpportunity ClaimType = "opportunity"
	ClaimTypeRisk        ClaimType = "risk"
	ClaimTypeAssumption  ClaimType = "assumption"
	ClaimTypeUnknown     ClaimType = "unknown"
)

// Confidence is the bucketed confidence level derived from ConfidenceScore
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Bucket thresholds for ConfidenceFromScore. ConfidenceMediumThreshold is
// also the governance review threshold for decisions.
const (
	ConfidenceHighThreshold   = 72
	ConfidenceMediumThreshold = 46
)

// ConfidenceFromScore maps a breakdown total to its confidence bucket.
// The bucket must never be set independently of the score.
func ConfidenceFromScore(score int) Confidence {
	switch {
	case score >= ConfidenceHighThreshold:
		return ConfidenceHigh
	case score >= ConfidenceMediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
