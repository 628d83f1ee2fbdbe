package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/review"
)

// ValidateIntake checks basic intake validity. The pipeline still computes
// on invalid intake; only export is refused.
func ValidateIntake(text string, maxChars int) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("intake is empty")
	}
	if n := utf8.RuneCountInString(text); n > maxChars {
		return fmt.Errorf("intake is %d characters, limit is %d", n, maxChars)
	}
	return nil
}

// ExportGate refuses export while any decision is pending review, naming the
// blocking decisions.
func ExportGate(decisions []model.Decision) error {
	if !review.HasPendingReview(decisions) {
		return nil
	}

	var pending []string
	for _, d := range decisions {
		if d.Status == model.StatusNeedsReview {
			pending = append(pending, d.ID)
		}
	}

	return fmt.Errorf("export blocked: %d decision(s) pending review (%s)", len(pending), strings.Join(pending, ", "))
}
