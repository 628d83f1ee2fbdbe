package review

import (
	"fmt"
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
)

// Merge overlays reviewer dispositions onto auto-governed decisions.
// Pure function: the input decisions are never mutated; overridden entries
// are returned as copies with the reviewer status and appended reasons.
// Decisions without a matching entry pass through unchanged.
func Merge(decisions []model.Decision, reviewer map[string]model.ReviewerDecision) []model.Decision {
	merged := make([]model.Decision, len(decisions))

	for i, decision := range decisions {
		entry, ok := reviewer[decision.ID]
		if !ok {
			merged[i] = decision
			continue
		}

		overridden := decision
		overridden.Status = entry.Status

		reasons := make([]string, 0, len(decision.GovernanceReasons)+2)
		reasons = append(reasons, decision.GovernanceReasons...)
		reasons = append(reasons, fmt.Sprintf("reviewer set status to %s", entry.Status))
		if strings.TrimSpace(entry.Notes) != "" {
			reasons = append(reasons, "reviewer note: "+entry.Notes)
		}
		overridden.GovernanceReasons = reasons

		merged[i] = overridden
	}

	return merged
}

// HasPendingReview reports whether any decision still needs review; export
// is gated on this.
func HasPendingReview(decisions []model.Decision) bool {
	for _, d := range decisions {
		if d.Status == model.StatusNeedsReview {
			return true
		}
	}
	return false
}
