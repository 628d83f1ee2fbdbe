package extract

import (
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/score"
)

// excerptLen bounds the claim text excerpt taken from the source line
const excerptLen = 120

// category pairs a claim type with its label and signal terms. Order is
// fixed so extraction output is deterministic.
type category struct {
	claimType model.ClaimType
	label     string
	terms     []string
}

var categories = []category{
	{
		claimType: model.ClaimTypeOpportunity,
		label:     "[Opportunity]",
		terms: []string{
			"growth", "opportunity", "launch", "expand", "demand",
			"traction", "revenue", "upside",
		},
	},
	{
		claimType: model.ClaimTypeRisk,
		label:     "[Risk]",
		terms: []string{
			"risk", "churn", "burn", "threat", "decline",
			"blocker", "outage", "delay", "competitor",
		},
	},
	{
		claimType: model.ClaimTypeAssumption,
		label:     "[Assumption]",
		terms: []string{
			"assume", "assumption", "believe", "expect", "likely",
			"hypothesis", "we think",
		},
	},
	{
		claimType: model.ClaimTypeUnknown,
		label:     "[Unknown]",
		terms: []string{
			"unknown", "unclear", "tbd", "uncertain", "need data",
			"missing", "open question",
		},
	},
}

// ClaimExtractor applies keyword-signal rules per source to emit typed claims
type ClaimExtractor struct {
	scorer *score.Scorer
}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{scorer: score.NewScorer()}
}

// Extract emits claims for every source in order. A source always yields at
// least one claim: one per matched category, or a single fallback when
// nothing matches.
func (e *ClaimExtractor) Extract(sources []model.SourceItem) []model.Claim {
	claims := make([]model.Claim, 0, len(sources))
	for _, src := range sources {
		claims = append(claims, e.extractFromSource(src)...)
	}
	return claims
}

// extractFromSource computes the breakdown once and shares it across every
// claim the source yields
func (e *ClaimExtractor) extractFromSource(src model.SourceItem) []model.Claim {
	breakdown := e.scorer.Breakdown(src.Raw, src.Type)
	lower := strings.ToLower(src.Raw)

	var claims []model.Claim
	for _, cat := range categories {
		matched := containsAny(lower, cat.terms)

		// Linked pages are surfaced as potential opportunities even
		// without a keyword hit.
		if !matched && cat.claimType == model.ClaimTypeOpportunity && src.Type == model.SourceTypeURL {
			matched = true
		}

		if matched {
			claims = append(claims, newClaim(cat.label, cat.claimType, src, breakdown))
		}
	}

	if len(claims) == 0 {
		fallbackType := model.ClaimTypeUnknown
		label := "[Unknown]"
		if src.Type == model.SourceTypeNote {
			fallbackType = model.ClaimTypeAssumption
			label = "[Assumption]"
		}
		claims = append(claims, newClaim(label, fallbackType, src, breakdown))
	}

	return claims
}

func newClaim(label string, claimType model.ClaimType, src model.SourceItem, breakdown model.ScoreBreakdown) model.Claim {
	return model.Claim{
		Text:            label + " " + truncate(src.Raw, excerptLen),
		Type:            claimType,
		Confidence:      model.ConfidenceFromScore(breakdown.Total),
		ConfidenceScore: breakdown.Total,
		ScoreBreakdown:  breakdown,
		SourceID:        src.ID,
	}
}

// truncate is a no-op when the text is already within the limit
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
