package review

import (
	"strings"
	"testing"

	"github.com/fathomworks/opsbrief/internal/model"
)

func TestMerge_OverridesStatusAndAppendsReasons(t *testing.T) {
	decisions := []model.Decision{
		{
			ID:                "d-7d-2",
			Status:            model.StatusNeedsReview,
			GovernanceReasons: []string{"support total 41 below review threshold 46"},
		},
	}
	reviewer := map[string]model.ReviewerDecision{
		"d-7d-2": {DecisionID: "d-7d-2", Status: model.StatusAccepted, Notes: "verified with finance"},
	}

	merged := Merge(decisions, reviewer)

	if merged[0].Status != model.StatusAccepted {
		t.Errorf("Expected reviewer status to win, got %s", merged[0].Status)
	}
	reasons := merged[0].GovernanceReasons
	if len(reasons) != 3 {
		t.Fatalf("Expected original reason plus override plus note, got %v", reasons)
	}
	if reasons[0] != "support total 41 below review threshold 46" {
		t.Errorf("Expected auto reason preserved first, got %q", reasons[0])
	}
	if reasons[1] != "reviewer set status to accepted" {
		t.Errorf("Expected override reason, got %q", reasons[1])
	}
	if !strings.HasPrefix(reasons[2], "reviewer note: ") {
		t.Errorf("Expected note reason, got %q", reasons[2])
	}
}

func TestMerge_BlankNotesAddNoReason(t *testing.T) {
	decisions := []model.Decision{
		{ID: "d-24h-1", Status: model.StatusAccepted, GovernanceReasons: []string{"passes governance checks"}},
	}
	reviewer := map[string]model.ReviewerDecision{
		"d-24h-1": {DecisionID: "d-24h-1", Status: model.StatusRejected, Notes: "   "},
	}

	merged := Merge(decisions, reviewer)

	if len(merged[0].GovernanceReasons) != 2 {
		t.Errorf("Expected no note reason for blank notes, got %v", merged[0].GovernanceReasons)
	}
}

func TestMerge_PassThroughWithoutEntry(t *testing.T) {
	decisions := []model.Decision{
		{ID: "d-24h-1", Status: model.StatusAccepted, GovernanceReasons: []string{"passes governance checks"}},
		{ID: "d-7d-2", Status: model.StatusNeedsReview, GovernanceReasons: []string{"support total 30 below review threshold 46"}},
	}

	merged := Merge(decisions, map[string]model.ReviewerDecision{})

	for i := range decisions {
		if merged[i].Status != decisions[i].Status {
			t.Errorf("Expected %s to pass through, got %s", decisions[i].ID, merged[i].Status)
		}
	}
}

func TestMerge_NeverMutatesInput(t *testing.T) {
	decisions := []model.Decision{
		{ID: "d-30d-3", Status: model.StatusNeedsReview, GovernanceReasons: []string{"support total 28 below review threshold 46"}},
	}
	reviewer := map[string]model.ReviewerDecision{
		"d-30d-3": {DecisionID: "d-30d-3", Status: model.StatusRejected, Notes: "stale data"},
	}

	Merge(decisions, reviewer)

	if decisions[0].Status != model.StatusNeedsReview {
		t.Errorf("Expected input status untouched, got %s", decisions[0].Status)
	}
	if len(decisions[0].GovernanceReasons) != 1 {
		t.Errorf("Expected input reasons untouched, got %v", decisions[0].GovernanceReasons)
	}
}

func TestHasPendingReview(t *testing.T) {
	pending := []model.Decision{
		{ID: "d-24h-1", Status: model.StatusAccepted},
		{ID: "d-7d-2", Status: model.StatusNeedsReview},
	}
	if !HasPendingReview(pending) {
		t.Error("Expected pending review to be detected")
	}

	clear := []model.Decision{
		{ID: "d-24h-1", Status: model.StatusAccepted},
		{ID: "d-7d-2", Status: model.StatusRejected},
	}
	if HasPendingReview(clear) {
		t.Error("Expected no pending review when all decisions are resolved")
	}
}
