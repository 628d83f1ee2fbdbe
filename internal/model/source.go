package model

// SourceItem represents one classified line of operator intake
type SourceItem struct {
	ID    string     `json:"id"`    // Positional identifier (s-1, s-2, ...)
	Raw   string     `json:"raw"`   // Trimmed original line
	Type  SourceType `json:"type"`  // url, note, transcript, document
	Valid bool       `json:"valid"` // False only for URL lines that fail syntax parsing
}

// SourceType classifies the nature of an intake line
type SourceType string

const (
	SourceTypeURL        SourceType = "url"
	SourceTypeNote       SourceType = "note"
	SourceTypeTranscript SourceType = "transcript"
	SourceTypeDocument   SourceType = "document"
)
