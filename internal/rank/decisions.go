package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/score"
)

const maxImpact = 10

// template is one of the three fixed horizon decisions
type template struct {
	horizon      model.Horizon
	title        string
	rationaleFmt string
	claimTypes   []model.ClaimType
	impactBase   int
	effort       int
	urgency      int
	recency      int
}

var templates = []template{
	{
		horizon:      model.Horizon24h,
		title:        "Validate top opportunity signal",
		rationaleFmt: "Fastest path to compound returns based on %d opportunity claim(s)",
		claimTypes:   []model.ClaimType{model.ClaimTypeOpportunity},
		impactBase:   5,
		effort:       3,
		urgency:      9,
		recency:      14,
	},
	{
		horizon:      model.Horizon7d,
		title:        "Mitigate flagged delivery risks",
		rationaleFmt: "%d risk claim(s) threaten near-term delivery",
		claimTypes:   []model.ClaimType{model.ClaimTypeRisk},
		impactBase:   4,
		effort:       5,
		urgency:      6,
		recency:      10,
	},
	{
		horizon:      model.Horizon30d,
		title:        "Resolve open assumptions and unknowns",
		rationaleFmt: "%d open assumption(s) and unknown(s) need resolution before commitment",
		claimTypes:   []model.ClaimType{model.ClaimTypeAssumption, model.ClaimTypeUnknown},
		impactBase:   3,
		effort:       7,
		urgency:      4,
		recency:      6,
	},
}

// Ranker aggregates claims into exactly three horizon decisions
type Ranker struct {
	scorer *score.Scorer
}

// NewRanker creates a new decision ranker
func NewRanker() *Ranker {
	return &Ranker{scorer: score.NewScorer()}
}

// Build returns exactly three auto-governed decisions sorted descending by
// the weighted score, ties broken by horizon order (stable sort).
func (r *Ranker) Build(claims []model.Claim) []model.Decision {
	conflicts := conflictSources(claims)

	decisions := make([]model.Decision, 0, len(templates))
	for i, tpl := range templates {
		relevant := claimsOfTypes(claims, tpl.claimTypes)

		impact := tpl.impactBase + len(relevant)
		if impact > maxImpact {
			impact = maxImpact
		}

		breakdown := r.scorer.DecisionBreakdown(impact, relevant, tpl.horizon, tpl.recency, len(conflicts))

		// Display/sort score; intentionally a different formula from
		// the governed breakdown total.
		weighted := float64(impact)*1.8 + float64(tpl.urgency)*1.2 - float64(tpl.effort) +
			float64(breakdown.Total)/50 - float64(breakdown.ContradictionPenalty)/10

		reasons, status := govern(breakdown, conflicts)

		decisions = append(decisions, model.Decision{
			ID:                fmt.Sprintf("d-%s-%d", tpl.horizon, i+1),
			Title:             tpl.title,
			Rationale:         fmt.Sprintf(tpl.rationaleFmt, len(relevant)),
			Impact:            impact,
			Effort:            tpl.effort,
			Urgency:           tpl.urgency,
			Score:             weighted,
			Horizon:           tpl.horizon,
			ScoreBreakdown:    breakdown,
			GovernanceReasons: reasons,
			Status:            status,
			ConflictSourceIDs: conflicts,
		})
	}

	sort.SliceStable(decisions, func(a, b int) bool {
		return decisions[a].Score > decisions[b].Score
	})

	return decisions
}

// conflictSources returns ids of sources that produced both an opportunity
// and a risk claim, in first-seen claim order. Conflict detection is
// intake-wide, not per decision.
func conflictSources(claims []model.Claim) []string {
	types := make(map[string]map[model.ClaimType]bool)
	var order []string

	for _, c := range claims {
		if types[c.SourceID] == nil {
			types[c.SourceID] = make(map[model.ClaimType]bool)
			order = append(order, c.SourceID)
		}
		types[c.SourceID][c.Type] = true
	}

	conflicts := make([]string, 0)
	for _, id := range order {
		if types[id][model.ClaimTypeOpportunity] && types[id][model.ClaimTypeRisk] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts
}

func claimsOfTypes(claims []model.Claim, claimTypes []model.ClaimType) []model.Claim {
	relevant := make([]model.Claim, 0)
	for _, c := range claims {
		for _, t := range claimTypes {
			if c.Type == t {
				relevant = append(relevant, c)
				break
			}
		}
	}
	return relevant
}

// govern applies the auto-governance rules. Both reasons are appended when
// both trigger; the reason list is never empty.
func govern(breakdown model.ScoreBreakdown, conflicts []string) ([]string, model.DecisionStatus) {
	var reasons []string

	if breakdown.Total < model.ConfidenceMediumThreshold {
		reasons = append(reasons, fmt.Sprintf("support total %d below review threshold %d", breakdown.Total, model.ConfidenceMediumThreshold))
	}
	if len(conflicts) > 0 {
		reasons = append(reasons, fmt.Sprintf("conflicting opportunity and risk signals from %s", strings.Join(conflicts, ", ")))
	}

	if len(reasons) > 0 {
		return reasons, model.StatusNeedsReview
	}
	return []string{"passes governance checks"}, model.StatusAccepted
}
