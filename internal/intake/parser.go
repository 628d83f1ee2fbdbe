package intake

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fathomworks/opsbrief/internal/model"
)

// transcriptWordThreshold: lines longer than this many words read like
// pasted speech rather than a note
const transcriptWordThreshold = 22

var transcriptTerms = []string{
	"transcript", "call notes", "standup", "meeting recording", "sync call",
}

// speakerLabel matches "Alice: we should ship" style speaker prefixes
var speakerLabel = regexp.MustCompile(`\b[A-Z][a-z]+\s*:\s`)

var documentTerms = []string{
	".pdf", ".docx", ".doc", ".pptx", ".xlsx", ".csv", ".txt",
	"report", "memo", "whitepaper", "deck",
}

// Parser splits raw intake text into classified source records
type Parser struct{}

// NewParser creates a new intake parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits intake on line breaks, trims, discards blanks, and assigns
// sequential ids (s-1, s-2, ...) in order of appearance. Ids are never
// reused or reordered.
func (p *Parser) Parse(text string) []model.SourceItem {
	sources := make([]model.SourceItem, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sourceType := classify(line)
		sources = append(sources, model.SourceItem{
			ID:    fmt.Sprintf("s-%d", len(sources)+1),
			Raw:   line,
			Type:  sourceType,
			Valid: sourceType != model.SourceTypeURL || validURL(line),
		})
	}

	return sources
}

// classify applies the classification rules in order; first match wins
func classify(line string) model.SourceType {
	lower := strings.ToLower(line)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return model.SourceTypeURL
	}

	if containsAny(lower, transcriptTerms) || speakerLabel.MatchString(line) || wordCount(line) > transcriptWordThreshold {
		return model.SourceTypeTranscript
	}

	if containsAny(lower, documentTerms) {
		return model.SourceTypeDocument
	}

	return model.SourceTypeNote
}

// validURL parses the first whitespace-delimited token and requires a scheme
// and host. Trailing annotation text after the URL does not invalidate it.
func validURL(line string) bool {
	token := strings.Fields(line)[0]
	parsed, err := url.Parse(token)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func wordCount(line string) int {
	return len(strings.Fields(line))
}
