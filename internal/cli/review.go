package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/pipeline"
	"github.com/fathomworks/opsbrief/internal/review"
)

var reviewNotes string

// reviewCmd represents the review command group
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Inspect and set reviewer dispositions for an intake's decisions",
	Long: `Review manages the governance workflow that gates export.

Reviewer dispositions are persisted per intake scope: the scope key is
derived from the normalized intake text (or an explicit --session id), so
different intakes never share reviewer state.`,
}

var reviewListCmd = &cobra.Command{
	Use:   "list <intake-file>",
	Short: "List decisions and their governance status for an intake",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewList,
}

var reviewSetCmd = &cobra.Command{
	Use:   "set <intake-file> <decision-id> <status>",
	Short: "Record a reviewer status for one decision",
	Long: `Set records a reviewer disposition (accepted, needs-review or rejected)
for one decision within the intake's scope. A later set for the same
decision replaces the earlier one.

Example:
  opsbrief review set intake.txt d-24h-1 accepted --notes "validated with growth team"`,
	Args: cobra.ExactArgs(3),
	RunE: runReviewSet,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewSetCmd)

	reviewCmd.PersistentFlags().StringVar(&sessionID, "session", "", "explicit session id for reviewer scope")
	reviewSetCmd.Flags().StringVar(&reviewNotes, "notes", "", "reviewer note attached to the decision")
}

func runReviewList(cmd *cobra.Command, args []string) error {
	brief, _, _, err := analyzeForReview(args[0])
	if err != nil {
		return err
	}

	for _, d := range brief.Decisions {
		fmt.Printf("%s  [%s]  %s  [%s]\n", d.ID, d.Horizon, d.Title, d.Status)
		for _, reason := range d.GovernanceReasons {
			fmt.Printf("    - %s\n", reason)
		}
	}

	if review.HasPendingReview(brief.Decisions) {
		fmt.Println("\n⚠ Export is blocked until every decision leaves needs-review")
	} else {
		fmt.Println("\n✓ No pending reviews; export unlocked")
	}

	return nil
}

func runReviewSet(cmd *cobra.Command, args []string) error {
	decisionID := args[1]
	status := model.DecisionStatus(args[2])

	if !model.ValidStatus(status) {
		return fmt.Errorf("invalid status %q (expected accepted, needs-review or rejected)", args[2])
	}

	brief, scope, current, err := analyzeForReview(args[0])
	if err != nil {
		return err
	}

	if !decisionExists(brief.Decisions, decisionID) {
		return fmt.Errorf("unknown decision id %q for this intake", decisionID)
	}

	entry := model.ReviewerDecision{
		DecisionID: decisionID,
		Status:     status,
		Notes:      reviewNotes,
		UpdatedAt:  time.Now().UTC(),
	}

	cfg := model.DefaultConfig()
	st := openStore(cfg)
	if _, err := review.SaveReviewerDecision(entry, current, scope, st); err != nil {
		return err
	}

	fmt.Printf("✓ %s set to %s\n", decisionID, status)
	if strings.TrimSpace(reviewNotes) != "" {
		fmt.Printf("  note: %s\n", reviewNotes)
	}

	return nil
}

// analyzeForReview recomputes the brief for an intake file so reviewer
// commands act on current decision ids
func analyzeForReview(path string) (*model.Brief, string, map[string]model.ReviewerDecision, error) {
	text, err := readIntake(path, false)
	if err != nil {
		return nil, "", nil, err
	}

	cfg := model.DefaultConfig()
	st := openStore(cfg)
	scope := review.ScopeKey(text, sessionID)
	current := review.LoadReviewerDecisions(scope, st)

	if verbose {
		fmt.Fprintf(os.Stderr, "Reviewer scope: %s (%d entries)\n\n", scope, len(current))
	}

	p := pipeline.NewPipeline(cfg)
	return p.Analyze(text, current), scope, current, nil
}

func decisionExists(decisions []model.Decision, id string) bool {
	for _, d := range decisions {
		if d.ID == id {
			return true
		}
	}
	return false
}
