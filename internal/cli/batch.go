package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/pipeline"
	"github.com/fathomworks/opsbrief/internal/review"
	"github.com/fathomworks/opsbrief/internal/worker"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Analyze multiple intake files from a manifest",
	Long: `Batch analyzes several intake files in parallel:
- Read intake file paths from the manifest (one per line, # comments)
- Analyze each intake through the full pipeline
- Write <slug>.json and <slug>.md per intake into the output directory

Each intake keeps its own reviewer scope; briefs with pending reviews are
reported as blocked and produce no artifacts.

Example:
  opsbrief batch intakes.txt
  opsbrief batch intakes.txt --concurrency 8 --output-dir ./briefs`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./opsbrief-briefs", "output directory for briefs")
	batchCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "flatten pasted HTML intakes before parsing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown briefs")
}

// batchBriefer adapts the pipeline to the worker pool's Briefer interface
type batchBriefer struct {
	cfg *model.Config
	p   *pipeline.Pipeline
}

// BriefFile analyzes one intake file under its own reviewer scope
func (b *batchBriefer) BriefFile(ctx context.Context, path string) (*model.Brief, error) {
	text, err := readIntake(path, b.cfg.Intake.StripHTML)
	if err != nil {
		return nil, err
	}
	if err := pipeline.ValidateIntake(text, b.cfg.Intake.MaxChars); err != nil {
		return nil, err
	}

	st := openStore(b.cfg)
	scope := review.ScopeKey(text, "")
	reviewerMap := review.LoadReviewerDecisions(scope, st)

	return b.p.Analyze(text, reviewerMap), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx := context.Background()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Opsbrief Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Manifest:     %s\n", manifest)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := model.DefaultConfig()
	cfg.Intake.StripHTML = stripHTML
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	briefer := &batchBriefer{cfg: cfg, p: pipeline.NewPipeline(cfg)}
	processor := worker.NewBatchProcessor(briefer, concurrency)

	results, err := processor.ProcessManifest(ctx, manifest)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	blockedCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		if gateErr := pipeline.ExportGate(result.Brief.Decisions); gateErr != nil {
			blockedCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, gateErr)
			continue
		}

		slug := slugFromPath(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Brief, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Brief, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d claims, %d decisions)\n", result.Path, len(result.Brief.Claims), len(result.Brief.Decisions))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d intakes\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Blocked:   %d\n", blockedCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
