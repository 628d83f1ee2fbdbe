package pipeline

import (
	"fmt"
	"sort"

	"github.com/fathomworks/opsbrief/internal/extract"
	"github.com/fathomworks/opsbrief/internal/intake"
	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/plan"
	"github.com/fathomworks/opsbrief/internal/rank"
	"github.com/fathomworks/opsbrief/internal/review"
)

// Pipeline orchestrates the full analysis: sources -> claims -> decisions ->
// reviewer merge -> roadmap/packets. Synchronous and pure with respect to
// its inputs; reviewer state arrives as a plain map, never from storage.
type Pipeline struct {
	parser         *intake.Parser
	claimExtractor *extract.ClaimExtractor
	ranker         *rank.Ranker
	renderer       *Renderer
	config         *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		parser:         intake.NewParser(),
		claimExtractor: extract.NewClaimExtractor(),
		ranker:         rank.NewRanker(),
		renderer:       NewRenderer(cfg.Output.IncludeFooter),
		config:         cfg,
	}
}

// Renderer exposes the pipeline's renderer for callers that write artifacts
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Analyze runs the full pipeline over intake text and a reviewer map.
// Idempotent: identical inputs yield an identical Brief, including rationale
// strings and sort order.
func (p *Pipeline) Analyze(intakeText string, reviewer map[string]model.ReviewerDecision) *model.Brief {
	sources := p.parser.Parse(intakeText)
	claims := p.claimExtractor.Extract(sources)
	decisions := p.ranker.Build(claims)
	merged := review.Merge(decisions, reviewer)

	return &model.Brief{
		Sources:       sources,
		Claims:        claims,
		Decisions:     merged,
		Roadmap:       plan.BuildRoadmap(merged),
		Packets:       plan.BuildPackets(claims, merged),
		ReviewerTrail: reviewerTrail(reviewer),
	}
}

// RenderBrief writes the requested artifacts, refusing both when the export
// gate fails. The stdout summary always prints.
func (p *Pipeline) RenderBrief(brief *model.Brief, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" || mdPath != "" {
		if err := ExportGate(brief.Decisions); err != nil {
			p.renderer.RenderSummary(brief)
			return err
		}
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(brief, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(brief, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(brief)

	return nil
}

// reviewerTrail flattens the reviewer map sorted by UpdatedAt ascending,
// ties broken by decision id for a stable export.
func reviewerTrail(reviewer map[string]model.ReviewerDecision) []model.ReviewerDecision {
	trail := make([]model.ReviewerDecision, 0, len(reviewer))
	for _, entry := range reviewer {
		trail = append(trail, entry)
	}

	sort.Slice(trail, func(a, b int) bool {
		if trail[a].UpdatedAt.Equal(trail[b].UpdatedAt) {
			return trail[a].DecisionID < trail[b].DecisionID
		}
		return trail[a].UpdatedAt.Before(trail[b].UpdatedAt)
	})

	return trail
}
