package model

// Brief is the complete analysis artifact for one intake.
// It carries no timestamps: identical intake and reviewer state must render
// to identical bytes, so run times appear only in CLI diagnostics.
type Brief struct {
	Sources       []SourceItem       `json:"sources"`
	Claims        []Claim            `json:"claims"`
	Decisions     []Decision         `json:"decisions"`
	Roadmap       []RoadmapItem      `json:"roadmap"`
	Packets       []Packet           `json:"packets"`
	ReviewerTrail []ReviewerDecision `json:"reviewerTrail"`
}
