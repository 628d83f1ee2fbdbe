package plan

import (
	"github.com/fathomworks/opsbrief/internal/model"
)

// Fixed owner/metric strings per horizon
var roadmapMeta = map[model.Horizon]struct {
	Owner  string
	Metric string
}{
	model.Horizon24h: {
		Owner:  "Operator",
		Metric: "Top opportunity validated or discarded within 24 hours",
	},
	model.Horizon7d: {
		Owner:  "Delivery lead",
		Metric: "Every flagged risk has an owner and mitigation by end of week",
	},
	model.Horizon30d: {
		Owner:  "Research lead",
		Metric: "No decision blocked on an unverified assumption at month close",
	},
}

// BuildRoadmap derives one item per horizon from the final decision set.
// The ranker guarantees one decision per horizon; the fallback triple covers
// the defensive case anyway.
func BuildRoadmap(decisions []model.Decision) []model.RoadmapItem {
	items := make([]model.RoadmapItem, 0, 3)

	for _, horizon := range model.Horizons() {
		decision, ok := decisionForHorizon(decisions, horizon)
		if !ok {
			items = append(items, model.RoadmapItem{
				Horizon: horizon,
				Focus:   "Re-run analysis",
				Owner:   "Operator",
				Metric:  "Pipeline produces one decision per horizon",
			})
			continue
		}

		meta := roadmapMeta[horizon]
		items = append(items, model.RoadmapItem{
			Horizon: horizon,
			Focus:   decision.Title,
			Owner:   meta.Owner,
			Metric:  meta.Metric,
		})
	}

	return items
}

func decisionForHorizon(decisions []model.Decision, horizon model.Horizon) (model.Decision, bool) {
	for _, d := range decisions {
		if d.Horizon == horizon {
			return d, true
		}
	}
	return model.Decision{}, false
}
