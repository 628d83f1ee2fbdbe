package extract

import (
	"strings"
	"testing"

	"github.com/fathomworks/opsbrief/internal/model"
)

func source(id, raw string, sourceType model.SourceType) model.SourceItem {
	return model.SourceItem{ID: id, Raw: raw, Type: sourceType, Valid: true}
}

func TestClaimExtractor_CategoryMatching(t *testing.T) {
	extractor := NewClaimExtractor()

	sources := []model.SourceItem{
		source("s-1", "growth traction is strong", model.SourceTypeNote),
		source("s-2", "churn risk and cost burn", model.SourceTypeDocument),
		source("s-3", "we assume the vendor ships on time", model.SourceTypeNote),
		source("s-4", "timeline is unknown and unclear", model.SourceTypeNote),
	}

	claims := extractor.Extract(sources)

	if len(claims) != 4 {
		t.Fatalf("Expected 4 claims, got %d", len(claims))
	}

	expected := []model.ClaimType{
		model.ClaimTypeOpportunity,
		model.ClaimTypeRisk,
		model.ClaimTypeAssumption,
		model.ClaimTypeUnknown,
	}
	for i, want := range expected {
		if claims[i].Type != want {
			t.Errorf("Expected claim %d type %s, got %s", i, want, claims[i].Type)
		}
	}
}

func TestClaimExtractor_OneClaimPerMatchedCategory(t *testing.T) {
	extractor := NewClaimExtractor()

	// Hits opportunity twice and risk twice; still one claim per category
	claims := extractor.Extract([]model.SourceItem{
		source("s-1", "growth launch but churn risk", model.SourceTypeNote),
	})

	if len(claims) != 2 {
		t.Fatalf("Expected 2 claims (one per category), got %d", len(claims))
	}
	if claims[0].Type != model.ClaimTypeOpportunity || claims[1].Type != model.ClaimTypeRisk {
		t.Errorf("Expected opportunity then risk, got %s then %s", claims[0].Type, claims[1].Type)
	}
}

func TestClaimExtractor_URLAlwaysYieldsOpportunity(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract([]model.SourceItem{
		source("s-1", "https://example.com/metrics", model.SourceTypeURL),
	})

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].Type != model.ClaimTypeOpportunity {
		t.Errorf("Expected url source to yield opportunity without keyword hits, got %s", claims[0].Type)
	}
}

func TestClaimExtractor_Fallback(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract([]model.SourceItem{
		source("s-1", "call the vendor tomorrow", model.SourceTypeNote),
		source("s-2", "meeting summary attached in the weekly memo", model.SourceTypeDocument),
	})

	if len(claims) != 2 {
		t.Fatalf("Expected 2 fallback claims, got %d", len(claims))
	}

	if claims[0].Type != model.ClaimTypeAssumption {
		t.Errorf("Expected note fallback to be assumption, got %s", claims[0].Type)
	}
	if !strings.HasPrefix(claims[0].Text, "[Assumption]") {
		t.Errorf("Expected assumption label, got %q", claims[0].Text)
	}

	if claims[1].Type != model.ClaimTypeUnknown {
		t.Errorf("Expected non-note fallback to be unknown, got %s", claims[1].Type)
	}
	if !strings.HasPrefix(claims[1].Text, "[Unknown]") {
		t.Errorf("Expected unknown label, got %q", claims[1].Text)
	}
}

func TestClaimExtractor_SharedBreakdownPerSource(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract([]model.SourceItem{
		source("s-1", "growth launch but churn risk confirmed by data", model.SourceTypeNote),
	})

	if len(claims) < 2 {
		t.Fatalf("Expected multiple claims, got %d", len(claims))
	}

	first := claims[0].ScoreBreakdown
	for _, claim := range claims[1:] {
		if claim.ScoreBreakdown.Total != first.Total {
			t.Errorf("Expected all claims from one source to share a breakdown: %d vs %d",
				first.Total, claim.ScoreBreakdown.Total)
		}
		if claim.SourceID != "s-1" {
			t.Errorf("Expected source id s-1, got %s", claim.SourceID)
		}
	}
}

func TestClaimExtractor_ConfidenceConsistency(t *testing.T) {
	extractor := NewClaimExtractor()

	sources := []model.SourceItem{
		source("s-1", "growth data confirmed benchmark study audit verified", model.SourceTypeDocument),
		source("s-2", "maybe churn risk?", model.SourceTypeNote),
		source("s-3", "https://example.com", model.SourceTypeURL),
	}

	for _, claim := range extractor.Extract(sources) {
		if claim.Confidence != model.ConfidenceFromScore(claim.ConfidenceScore) {
			t.Errorf("Confidence bucket %s disagrees with score %d", claim.Confidence, claim.ConfidenceScore)
		}
		if claim.ConfidenceScore != claim.ScoreBreakdown.Total {
			t.Errorf("ConfidenceScore %d disagrees with breakdown total %d", claim.ConfidenceScore, claim.ScoreBreakdown.Total)
		}
	}
}

func TestClaimExtractor_TruncationIsNoOpOnShortInput(t *testing.T) {
	extractor := NewClaimExtractor()

	long := strings.Repeat("growth ", 40)
	claims := extractor.Extract([]model.SourceItem{
		source("s-1", "growth", model.SourceTypeNote),
		source("s-2", long, model.SourceTypeNote),
	})

	if claims[0].Text != "[Opportunity] growth" {
		t.Errorf("Expected short text untouched, got %q", claims[0].Text)
	}

	excerpt := strings.TrimPrefix(claims[1].Text, "[Opportunity] ")
	if len([]rune(excerpt)) != 120 {
		t.Errorf("Expected 120-rune excerpt, got %d", len([]rune(excerpt)))
	}
}
