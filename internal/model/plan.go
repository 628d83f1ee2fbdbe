package model

// RoadmapItem is a derived display artifact, one per horizon
type RoadmapItem struct {
	Horizon Horizon `json:"horizon"`
	Focus   string  `json:"focus"`
	Owner   string  `json:"owner"`
	Metric  string  `json:"metric"`
}

// Packet is a templated execution handoff for one role
type Packet struct {
	Role               string   `json:"role"`
	Objective          string   `json:"objective"`
	Context            string   `json:"context"`
	Tasks              []string `json:"tasks"`
	AcceptanceCriteria []string `json:"acceptanceCriteria"`
	Dependencies       []string `json:"dependencies"`
	Risks              []string `json:"risks"`
	HandoffPrompt      string   `json:"handoffPrompt"`
	Output             string   `json:"output"`
}
