package model

// ScoreBreakdown is the transparent four-component confidence breakdown.
// Total is always clamped to [8, 95]; Rationale carries one human-readable
// line per component plus the total derivation.
type ScoreBreakdown struct {
	SignalQuality        int      `json:"signalQuality"`
	SourceReliability    int      `json:"sourceReliability"`
	Recency              int      `json:"recency"`
	ContradictionPenalty int      `json:"contradictionPenalty"`
	Total                int      `json:"total"`
	Rationale            []string `json:"rationale"`
}
