package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
)

// Component clamps and weights. The reliability table, clamp bounds and the
// confidence thresholds are contractual; the term weights are frozen here.
const (
	signalBaseline    = 12
	evidenceWeight    = 6
	weakWeight        = 4
	lengthBonus       = 5
	lengthThreshold   = 160
	signalMin         = 8
	signalMax         = 45
	recencyWeight     = 6
	yearBonus         = 4
	recencyMax        = 18
	contradictionUnit = 6
	contradictionMax  = 24
	totalMin          = 8
	totalMax          = 95
)

// reliabilityTable maps source types to their fixed reliability component
var reliabilityTable = map[model.SourceType]int{
	model.SourceTypeDocument:   24,
	model.SourceTypeURL:        20,
	model.SourceTypeTranscript: 17,
	model.SourceTypeNote:       13,
}

var evidenceTerms = []string{
	"data", "confirmed", "verified", "measured", "metric",
	"benchmark", "evidence", "study", "audit",
}

var weakTerms = []string{
	"maybe", "might", "probably", "guess", "roughly",
	"someday", "not sure", "hopefully",
}

// "now" is deliberately absent: as a substring it false-hits "known".
var recencyTerms = []string{
	"today", "this week", "this quarter", "latest",
	"recent", "currently", "q4",
}

var nearTermYears = []string{"2025", "2026"}

var contradictionTerms = []string{
	"however", "although", "contradict", "conflict", "dispute",
	"versus", "disagree", "inconsistent",
}

// Scorer computes deterministic confidence breakdowns.
// Each term counts once per text regardless of repetition.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Breakdown computes the four-component breakdown for a (text, source type)
// pair. Pure function: identical inputs yield identical components and
// identical rationale strings.
func (s *Scorer) Breakdown(text string, sourceType model.SourceType) model.ScoreBreakdown {
	lower := strings.ToLower(text)

	quality, qualityLine := s.signalQuality(text, lower)
	reliability, reliabilityLine := s.sourceReliability(sourceType)
	recency, recencyLine := s.recency(lower)
	penalty, penaltyLine := s.contradictionPenalty(lower)

	total := clamp(totalMin, totalMax, quality+reliability+recency-penalty)

	return model.ScoreBreakdown{
		SignalQuality:        quality,
		SourceReliability:    reliability,
		Recency:              recency,
		ContradictionPenalty: penalty,
		Total:                total,
		Rationale: []string{
			qualityLine,
			reliabilityLine,
			recencyLine,
			penaltyLine,
			fmt.Sprintf("total %d: clamp(8, 95, %d + %d + %d - %d)", total, quality, reliability, recency, penalty),
		},
	}
}

// DecisionBreakdown folds claim-level results into a decision-level
// breakdown: impact proxies signal quality, mean claim confidence proxies
// source reliability, recency is a horizon constant, and each conflicting
// source costs 8 penalty points.
func (s *Scorer) DecisionBreakdown(impact int, claims []model.Claim, horizon model.Horizon, horizonRecency int, conflictCount int) model.ScoreBreakdown {
	quality := clamp(signalMin, signalMax, impact*4)

	mean := 0.0
	if len(claims) > 0 {
		sum := 0
		for _, c := range claims {
			sum += c.ConfidenceScore
		}
		mean = float64(sum) / float64(len(claims))
	}
	reliability := int(math.Round(mean * 0.25))

	penalty := clamp(0, contradictionMax, conflictCount*8)
	total := clamp(totalMin, totalMax, quality+reliability+horizonRecency-penalty)

	return model.ScoreBreakdown{
		SignalQuality:        quality,
		SourceReliability:    reliability,
		Recency:              horizonRecency,
		ContradictionPenalty: penalty,
		Total:                total,
		Rationale: []string{
			fmt.Sprintf("signal quality %d: impact %d scaled by 4", quality, impact),
			fmt.Sprintf("source reliability %d: mean claim confidence %.1f over %d claim(s) scaled by 0.25", reliability, mean, len(claims)),
			fmt.Sprintf("recency %d: %s horizon constant", horizonRecency, horizon),
			fmt.Sprintf("contradiction penalty %d: %d conflicting source(s) at 8 points each", penalty, conflictCount),
			fmt.Sprintf("total %d: clamp(8, 95, %d + %d + %d - %d)", total, quality, reliability, horizonRecency, penalty),
		},
	}
}

// signalQuality scores evidence density against hedging (clamped to [8,45])
func (s *Scorer) signalQuality(text, lower string) (int, string) {
	evidenceHits := countTerms(lower, evidenceTerms)
	weakHits := countTerms(lower, weakTerms)

	bonus := 0
	if len(text) > lengthThreshold {
		bonus = lengthBonus
	}

	raw := signalBaseline + evidenceHits*evidenceWeight - weakHits*weakWeight + bonus
	score := clamp(signalMin, signalMax, raw)

	return score, fmt.Sprintf("signal quality %d: baseline %d, %d evidence term(s) (+%d), %d weak term(s) (-%d), length bonus %d",
		score, signalBaseline, evidenceHits, evidenceHits*evidenceWeight, weakHits, weakHits*weakWeight, bonus)
}

// sourceReliability is a fixed lookup by source type
func (s *Scorer) sourceReliability(sourceType model.SourceType) (int, string) {
	score := reliabilityTable[sourceType]
	return score, fmt.Sprintf("source reliability %d: %s source", score, sourceType)
}

// recency scores near-term language (clamped to [0,18])
func (s *Scorer) recency(lower string) (int, string) {
	hits := countTerms(lower, recencyTerms)

	bonus := 0
	if countTerms(lower, nearTermYears) > 0 {
		bonus = yearBonus
	}

	score := clamp(0, recencyMax, hits*recencyWeight+bonus)
	return score, fmt.Sprintf("recency %d: %d recency term(s), year bonus %d", score, hits, bonus)
}

// contradictionPenalty scores hedged or disputed language; a literal
// question mark counts as one extra term (clamped to [0,24])
func (s *Scorer) contradictionPenalty(lower string) (int, string) {
	hits := countTerms(lower, contradictionTerms)

	questions := 0
	if strings.Contains(lower, "?") {
		questions = 1
	}

	score := clamp(0, contradictionMax, (hits+questions)*contradictionUnit)
	return score, fmt.Sprintf("contradiction penalty %d: %d contradiction term(s), question mark %d", score, hits, questions)
}

// countTerms counts how many terms appear in lower at least once.
// "Does the term appear", not "how many times".
func countTerms(lower string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

func clamp(low, high, v int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
