package rubric

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pitchlab/callgrader/internal/models"
)

const promptTemplate = `You are grading a door-to-door sales rep's side of a diarized conversation with a homeowner.

Rules:
- Grade rep content only. Homeowner turns are context, never graded.
- Cite turn ids for every deduction in your notes.
- Be deterministic: same transcript, same scores.
- Respond with a single JSON object matching the schema below and nothing else.

Rep turns (id, start-end ms, text):
{{range .RepTurns}}[{{.ID}}] {{.StartMs}}-{{.EndMs}}: {{.Text}}
{{end}}
Detected objections:
{{if .Spans}}{{range .Spans}}- {{.Label}} over turns {{.StartTurnID}}-{{.EndTurnID}}
{{end}}{{else}}- none detected
{{end}}{{if .PolicySnippets}}
Company policy:
{{range .PolicySnippets}}{{.}}
{{end}}{{end}}
Output schema (all scores are integers within the stated bounds):
{"discovery": 0-20, "objection_handling": {"overall": 0-20, "cases": [{"label": "", "score": 0-20, "notes": ""}]}, "clarity_empathy": 0-10, "solution_framing": 0-10, "pricing_next_step": 0-10, "compliance": {"score": 0-10, "violations": []}, "top_wins": [], "top_fixes": [], "drills": []}
`

type promptData struct {
	RepTurns       []models.Turn
	Spans          []models.ObjectionSpan
	PolicySnippets []string
}

// PromptBuilder renders the single rubric prompt. Only rep turns are
// included; the homeowner side never reaches the model.
type PromptBuilder struct {
	tmpl *template.Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tmpl: template.Must(template.New("rubric").Parse(promptTemplate)),
	}
}

func (b *PromptBuilder) Build(t models.Transcript, spans []models.ObjectionSpan, policy []string) (string, error) {
	var repTurns []models.Turn
	for _, turn := range t.Turns {
		if turn.Speaker == models.SpeakerRep {
			repTurns = append(repTurns, turn)
		}
	}

	var buf bytes.Buffer
	err := b.tmpl.Execute(&buf, promptData{
		RepTurns:       repTurns,
		Spans:          spans,
		PolicySnippets: policy,
	})
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
