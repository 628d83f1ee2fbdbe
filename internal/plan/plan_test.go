package plan

import (
	"strings"
	"testing"

	"github.com/fathomworks/opsbrief/internal/model"
)

func decision(id string, horizon model.Horizon, title string) model.Decision {
	return model.Decision{ID: id, Horizon: horizon, Title: title}
}

func TestBuildRoadmap_OneItemPerHorizon(t *testing.T) {
	decisions := []model.Decision{
		decision("d-24h-1", model.Horizon24h, "Validate top opportunity signal"),
		decision("d-7d-2", model.Horizon7d, "Mitigate flagged delivery risks"),
		decision("d-30d-3", model.Horizon30d, "Resolve open assumptions and unknowns"),
	}

	items := BuildRoadmap(decisions)

	if len(items) != 3 {
		t.Fatalf("Expected 3 roadmap items, got %d", len(items))
	}

	expectedOwners := []string{"Operator", "Delivery lead", "Research lead"}
	for i, horizon := range model.Horizons() {
		if items[i].Horizon != horizon {
			t.Errorf("Expected item %d for horizon %s, got %s", i, horizon, items[i].Horizon)
		}
		if items[i].Owner != expectedOwners[i] {
			t.Errorf("Expected owner %s, got %s", expectedOwners[i], items[i].Owner)
		}
		if items[i].Focus != decisions[i].Title {
			t.Errorf("Expected focus from decision title, got %q", items[i].Focus)
		}
		if items[i].Metric == "" {
			t.Errorf("Expected a metric for horizon %s", horizon)
		}
	}
}

func TestBuildRoadmap_FallbackForMissingHorizon(t *testing.T) {
	items := BuildRoadmap(nil)

	if len(items) != 3 {
		t.Fatalf("Expected 3 items even without decisions, got %d", len(items))
	}
	for _, item := range items {
		if item.Focus != "Re-run analysis" || item.Owner != "Operator" {
			t.Errorf("Expected fallback item, got focus %q owner %q", item.Focus, item.Owner)
		}
	}
}

func TestBuildPackets_FourRoles(t *testing.T) {
	claims := []model.Claim{
		{Type: model.ClaimTypeOpportunity, Text: "[Opportunity] growth traction"},
		{Type: model.ClaimTypeRisk, Text: "[Risk] churn spike"},
	}
	decisions := []model.Decision{
		decision("d-24h-1", model.Horizon24h, "Validate top opportunity signal"),
	}

	packets := BuildPackets(claims, decisions)

	if len(packets) != 4 {
		t.Fatalf("Expected 4 packets, got %d", len(packets))
	}

	expectedRoles := []string{"Coder", "Researcher", "Writer", "Notion"}
	for i, want := range expectedRoles {
		if packets[i].Role != want {
			t.Errorf("Expected role %s at %d, got %s", want, i, packets[i].Role)
		}
		if packets[i].Objective == "" || packets[i].HandoffPrompt == "" || packets[i].Output == "" {
			t.Errorf("Expected populated template fields for %s", packets[i].Role)
		}
	}
}

func TestBuildPackets_ContextInterpolation(t *testing.T) {
	claims := []model.Claim{
		{Type: model.ClaimTypeOpportunity},
		{Type: model.ClaimTypeOpportunity},
		{Type: model.ClaimTypeRisk},
		{Type: model.ClaimTypeUnknown},
	}
	decisions := []model.Decision{
		decision("d-24h-1", model.Horizon24h, "Validate top opportunity signal"),
	}

	packets := BuildPackets(claims, decisions)
	context := packets[0].Context

	if !strings.Contains(context, "Validate top opportunity signal") {
		t.Errorf("Expected top decision title in context, got %q", context)
	}
	if !strings.Contains(context, "2 opportunity, 1 risk, 0 assumption and 1 unknown") {
		t.Errorf("Expected claim counts in context, got %q", context)
	}

	for _, p := range packets[1:] {
		if p.Context != context {
			t.Error("Expected identical context across packets")
		}
	}
}

func TestBuildPackets_RisksCappedAndOrdered(t *testing.T) {
	claims := []model.Claim{
		{Type: model.ClaimTypeRisk, Text: "[Risk] first"},
		{Type: model.ClaimTypeOpportunity, Text: "[Opportunity] noise"},
		{Type: model.ClaimTypeRisk, Text: "[Risk] second"},
		{Type: model.ClaimTypeRisk, Text: "[Risk] third"},
		{Type: model.ClaimTypeRisk, Text: "[Risk] fourth"},
	}

	packets := BuildPackets(claims, nil)
	risks := packets[0].Risks

	if len(risks) != 3 {
		t.Fatalf("Expected risks capped at 3, got %d", len(risks))
	}
	expected := []string{"[Risk] first", "[Risk] second", "[Risk] third"}
	for i, want := range expected {
		if risks[i] != want {
			t.Errorf("Expected risk %d to be %q, got %q", i, want, risks[i])
		}
	}
}

func TestBuildPackets_NoRiskFallback(t *testing.T) {
	packets := BuildPackets(nil, nil)

	if len(packets[0].Risks) != 1 {
		t.Fatalf("Expected single fallback risk, got %v", packets[0].Risks)
	}
	if packets[0].Risks[0] != "No risk claims extracted from current intake" {
		t.Errorf("Expected fallback risk line, got %q", packets[0].Risks[0])
	}
	if packets[0].Context != "Top decision: No decision available. Intake yielded 0 opportunity, 0 risk, 0 assumption and 0 unknown claim(s)." {
		t.Errorf("Unexpected empty-input context: %q", packets[0].Context)
	}
}
