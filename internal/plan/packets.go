package plan

import (
	"fmt"

	"github.com/fathomworks/opsbrief/internal/model"
)

// maxPacketRisks caps the risk claims pulled into each packet
const maxPacketRisks = 3

// packetTemplate holds the static text body for one role. Only Context and
// Risks are computed per run.
type packetTemplate struct {
	role               string
	objective          string
	tasks              []string
	acceptanceCriteria []string
	dependencies       []string
	handoffPrompt      string
	output             string
}

var packetTemplates = []packetTemplate{
	{
		role:      "Coder",
		objective: "Ship the smallest prototype that tests the top decision",
		tasks: []string{
			"Stand up a throwaway branch for the experiment",
			"Implement the minimal path behind a flag",
			"Instrument the one metric the decision depends on",
		},
		acceptanceCriteria: []string{
			"Prototype runs end to end on real intake data",
			"Metric is observable without manual steps",
		},
		dependencies:  []string{"Access to the current codebase", "Decision owner sign-off"},
		handoffPrompt: "Build the minimal prototype described in the context. Optimize for learning speed, not durability.",
		output:        "Working prototype plus a one-paragraph result note",
	},
	{
		role:      "Researcher",
		objective: "Close the highest-leverage unknowns before commitment",
		tasks: []string{
			"List every unknown and assumption claim verbatim",
			"Find one primary source per unknown",
			"Summarize findings against the top decision",
		},
		acceptanceCriteria: []string{
			"Each unknown has a cited answer or an explicit dead end",
			"Summary fits on one page",
		},
		dependencies:  []string{"Read access to intake sources"},
		handoffPrompt: "Resolve the unknowns listed in the context with primary sources. Flag anything that contradicts the top decision.",
		output:        "Annotated findings document",
	},
	{
		role:      "Writer",
		objective: "Turn the brief into a stakeholder-ready narrative",
		tasks: []string{
			"Draft the situation summary from the intake sources",
			"Present the three decisions with their governance status",
			"Call out every needs-review item explicitly",
		},
		acceptanceCriteria: []string{
			"Narrative matches the exported brief exactly",
			"No decision is presented as final while pending review",
		},
		dependencies:  []string{"Final exported brief"},
		handoffPrompt: "Write the stakeholder narrative for the brief in the context. Keep governance caveats visible.",
		output:        "Stakeholder memo",
	},
	{
		role:      "Notion",
		objective: "File the run so the next operator starts warm",
		tasks: []string{
			"Create a page per decision with status and rationale",
			"Link the reviewer trail entries to their decisions",
			"Tag open risks for the weekly review",
		},
		acceptanceCriteria: []string{
			"Every decision, claim and reviewer action is findable by id",
		},
		dependencies:  []string{"Workspace edit access"},
		handoffPrompt: "Archive the brief in the context into the workspace with one page per decision.",
		output:        "Linked workspace pages",
	},
}

// BuildPackets derives the four role packets. Context interpolates claim
// counts and the top-ranked decision; Risks carries the first risk claims in
// intake order. Everything else is static template text.
func BuildPackets(claims []model.Claim, decisions []model.Decision) []model.Packet {
	context := packetContext(claims, decisions)
	risks := packetRisks(claims)

	packets := make([]model.Packet, 0, len(packetTemplates))
	for _, tpl := range packetTemplates {
		packets = append(packets, model.Packet{
			Role:               tpl.role,
			Objective:          tpl.objective,
			Context:            context,
			Tasks:              tpl.tasks,
			AcceptanceCriteria: tpl.acceptanceCriteria,
			Dependencies:       tpl.dependencies,
			Risks:              risks,
			HandoffPrompt:      tpl.handoffPrompt,
			Output:             tpl.output,
		})
	}
	return packets
}

func packetContext(claims []model.Claim, decisions []model.Decision) string {
	top := "No decision available"
	if len(decisions) > 0 {
		top = decisions[0].Title
	}

	counts := map[model.ClaimType]int{}
	for _, c := range claims {
		counts[c.Type]++
	}

	return fmt.Sprintf("Top decision: %s. Intake yielded %d opportunity, %d risk, %d assumption and %d unknown claim(s).",
		top,
		counts[model.ClaimTypeOpportunity],
		counts[model.ClaimTypeRisk],
		counts[model.ClaimTypeAssumption],
		counts[model.ClaimTypeUnknown])
}

// packetRisks returns the first risk claims in original order
func packetRisks(claims []model.Claim) []string {
	risks := make([]string, 0, maxPacketRisks)
	for _, c := range claims {
		if c.Type != model.ClaimTypeRisk {
			continue
		}
		risks = append(risks, c.Text)
		if len(risks) == maxPacketRisks {
			break
		}
	}

	if len(risks) == 0 {
		risks = append(risks, "No risk claims extracted from current intake")
	}
	return risks
}
