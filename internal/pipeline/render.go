package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gowebpki/jcs"

	"github.com/fathomworks/opsbrief/internal/model"
)

// Renderer writes the Brief as Markdown and canonical JSON
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the brief as RFC 8785 canonical JSON, so identical
// briefs always produce identical bytes.
func (r *Renderer) RenderJSON(brief *model.Brief, path string) error {
	data, err := JSONBytes(brief)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// JSONBytes returns the canonical JSON encoding of the brief
func JSONBytes(brief *model.Brief) ([]byte, error) {
	data, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("marshal brief: %w", err)
	}

	canonical, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("canonicalize brief: %w", err)
	}
	return canonical, nil
}

// RenderMarkdown writes the sectioned Markdown brief
func (r *Renderer) RenderMarkdown(brief *model.Brief, path string) error {
	if err := os.WriteFile(path, []byte(r.MarkdownString(brief)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// MarkdownString renders the full brief as a sectioned Markdown document
func (r *Renderer) MarkdownString(brief *model.Brief) string {
	var b strings.Builder

	b.WriteString("# Operator Brief\n\n")

	b.WriteString("## Intake Sources\n\n")
	if len(brief.Sources) == 0 {
		b.WriteString("No sources parsed from intake.\n")
	}
	for _, src := range brief.Sources {
		validity := "valid"
		if !src.Valid {
			validity = "invalid"
		}
		fmt.Fprintf(&b, "- **%s** [%s, %s] %s\n", src.ID, src.Type, validity, src.Raw)
	}
	b.WriteString("\n")

	b.WriteString("## Intelligence Brief\n\n")
	if len(brief.Claims) == 0 {
		b.WriteString("No claims extracted.\n")
	}
	for _, claim := range brief.Claims {
		fmt.Fprintf(&b, "### %s\n\n", claim.Text)
		fmt.Fprintf(&b, "- Type: %s\n", claim.Type)
		fmt.Fprintf(&b, "- Confidence: %s (%d/95)\n", claim.Confidence, claim.ConfidenceScore)
		fmt.Fprintf(&b, "- Source: %s\n", claim.SourceID)
		b.WriteString("- Rationale:\n")
		for _, line := range claim.ScoreBreakdown.Rationale {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Ranked Decisions\n\n")
	for i, d := range brief.Decisions {
		fmt.Fprintf(&b, "### %d. %s (%s)\n\n", i+1, d.Title, d.Horizon)
		fmt.Fprintf(&b, "- Id: %s\n", d.ID)
		fmt.Fprintf(&b, "- Status: %s\n", d.Status)
		fmt.Fprintf(&b, "- Score: %.2f (impact %d, effort %d, urgency %d)\n", d.Score, d.Impact, d.Effort, d.Urgency)
		fmt.Fprintf(&b, "- Rationale: %s\n", d.Rationale)
		b.WriteString("- Governance:\n")
		for _, reason := range d.GovernanceReasons {
			fmt.Fprintf(&b, "  - %s\n", reason)
		}
		if len(d.ConflictSourceIDs) > 0 {
			fmt.Fprintf(&b, "- Conflicting sources: %s\n", strings.Join(d.ConflictSourceIDs, ", "))
		}
		b.WriteString("- Score breakdown:\n")
		for _, line := range d.ScoreBreakdown.Rationale {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Reviewer Trail\n\n")
	if len(brief.ReviewerTrail) == 0 {
		b.WriteString("No reviewer actions recorded.\n")
	}
	for _, entry := range brief.ReviewerTrail {
		fmt.Fprintf(&b, "- %s: %s set to %s", entry.UpdatedAt.Format("2006-01-02 15:04:05"), entry.DecisionID, entry.Status)
		if strings.TrimSpace(entry.Notes) != "" {
			fmt.Fprintf(&b, " (%s)", entry.Notes)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## Roadmap\n\n")
	for _, item := range brief.Roadmap {
		fmt.Fprintf(&b, "- **%s**: %s (owner: %s; metric: %s)\n", item.Horizon, item.Focus, item.Owner, item.Metric)
	}
	b.WriteString("\n")

	b.WriteString("## Execution Packets\n\n")
	for _, packet := range brief.Packets {
		fmt.Fprintf(&b, "### %s\n\n", packet.Role)
		fmt.Fprintf(&b, "- Objective: %s\n", packet.Objective)
		fmt.Fprintf(&b, "- Context: %s\n", packet.Context)
		writeList(&b, "Tasks", packet.Tasks)
		writeList(&b, "Acceptance criteria", packet.AcceptanceCriteria)
		writeList(&b, "Dependencies", packet.Dependencies)
		writeList(&b, "Risks", packet.Risks)
		fmt.Fprintf(&b, "- Handoff prompt: %s\n", packet.HandoffPrompt)
		fmt.Fprintf(&b, "- Output: %s\n", packet.Output)
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by opsbrief. Scores are deterministic heuristics, not judgments of truth.\n")
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "- %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

// RenderSummary prints a compact run summary to stdout
func (r *Renderer) RenderSummary(brief *model.Brief) {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  Opsbrief Analysis")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	sourceCounts := map[model.SourceType]int{}
	for _, src := range brief.Sources {
		sourceCounts[src.Type]++
	}
	fmt.Printf("  Sources:   %d (%d url, %d note, %d transcript, %d document)\n",
		len(brief.Sources),
		sourceCounts[model.SourceTypeURL],
		sourceCounts[model.SourceTypeNote],
		sourceCounts[model.SourceTypeTranscript],
		sourceCounts[model.SourceTypeDocument])

	claimCounts := map[model.ClaimType]int{}
	for _, claim := range brief.Claims {
		claimCounts[claim.Type]++
	}
	fmt.Printf("  Claims:    %d (%d opportunity, %d risk, %d assumption, %d unknown)\n",
		len(brief.Claims),
		claimCounts[model.ClaimTypeOpportunity],
		claimCounts[model.ClaimTypeRisk],
		claimCounts[model.ClaimTypeAssumption],
		claimCounts[model.ClaimTypeUnknown])
	fmt.Println()

	for i, d := range brief.Decisions {
		fmt.Printf("  %d. [%s] %s [%s] (score %.2f)\n", i+1, d.Horizon, d.Title, d.Status, d.Score)
	}
	fmt.Println()

	pending := 0
	for _, d := range brief.Decisions {
		if d.Status == model.StatusNeedsReview {
			pending++
		}
	}
	if pending > 0 {
		fmt.Printf("  ⚠ %d decision(s) pending review; export is blocked\n", pending)
	} else {
		fmt.Println("  ✓ All decisions reviewed; export unlocked")
	}
	fmt.Println()
}
