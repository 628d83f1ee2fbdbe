package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/pipeline"
	"github.com/fathomworks/opsbrief/internal/review"
)

var (
	outJSON   string
	outMD     string
	sessionID string
	stripHTML bool
	noFooter  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <intake-file>",
	Short: "Analyze an intake file and generate a governed decision brief",
	Long: `Analyze runs the full deterministic pipeline over one intake file:
- Split and classify each line as url, note, transcript or document
- Extract typed claims with transparent confidence breakdowns
- Rank three horizon decisions with auto-governance
- Overlay persisted reviewer dispositions for this intake's scope
- Render the brief as Markdown and canonical JSON

Export is refused while any decision is pending review or the intake fails
basic validation. Use "-" to read intake from stdin.

Example:
  opsbrief analyze intake.txt
  opsbrief analyze intake.txt --json brief.json --md brief.md
  opsbrief analyze pasted.html --strip-html --md brief.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown briefs")

	// Intake flags
	analyzeCmd.Flags().StringVar(&sessionID, "session", "", "explicit session id for reviewer scope (default: derived from intake)")
	analyzeCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "flatten pasted HTML intake to plain text before parsing")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readIntake(args[0], stripHTML)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Intake.StripHTML = stripHTML
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	st := openStore(cfg)
	scope := review.ScopeKey(text, sessionID)
	reviewerMap := review.LoadReviewerDecisions(scope, st)

	if verbose {
		fmt.Fprintf(os.Stderr, "Intake:         %s (%d chars)\n", args[0], len(text))
		fmt.Fprintf(os.Stderr, "Reviewer scope: %s (%d entries)\n", scope, len(reviewerMap))
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	brief := p.Analyze(text, reviewerMap)

	// Invalid intake still computes and summarizes; only export is refused.
	if err := pipeline.ValidateIntake(text, cfg.Intake.MaxChars); err != nil {
		p.Renderer().RenderSummary(brief)
		return fmt.Errorf("export blocked: %w", err)
	}

	return p.RenderBrief(brief, outJSON, outMD, verbose)
}
