package objection

import (
	"strings"

	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/models"
)

const (
	pointsPerStep    = 5
	noConfirmPenalty = 3
	maxCaseScore     = 20
)

// CaseScorer grades the rep's handling of one objection span against the
// four-step script: acknowledge, clarify, address, confirm.
type CaseScorer struct {
	lex *lexicon.Lexicon
}

func NewCaseScorer(lex *lexicon.Lexicon) *CaseScorer {
	return &CaseScorer{lex: lex}
}

func (s *CaseScorer) Score(span models.ObjectionSpan, t models.Transcript) models.ObjectionCaseScore {
	var repText strings.Builder
	for _, turn := range t.Turns {
		if turn.ID < span.StartTurnID || turn.ID > span.EndTurnID {
			continue
		}
		if turn.Speaker != models.SpeakerRep {
			continue
		}
		repText.WriteString(turn.Text)
		repText.WriteString("\n")
	}
	text := repText.String()

	steps := models.CaseSteps{
		Ack:     boolToStep(lexicon.ContainsAny(text, s.lex.Ack)),
		Clarify: boolToStep(lexicon.ContainsAny(text, s.lex.Clarify)),
		Address: boolToStep(lexicon.ContainsAny(text, s.lex.Address)),
		Confirm: boolToStep(lexicon.ContainsAny(text, s.lex.Confirm)),
	}

	score := pointsPerStep * (steps.Ack + steps.Clarify + steps.Address + steps.Confirm)
	if steps.Confirm == 0 {
		// Moving on without checking the objection was resolved costs extra.
		score -= noConfirmPenalty
	}
	if score < 0 {
		score = 0
	}
	if score > maxCaseScore {
		score = maxCaseScore
	}

	return models.ObjectionCaseScore{
		Label: span.Label,
		Steps: steps,
		Notes: caseNotes(steps),
		Score: score,
	}
}

func boolToStep(hit bool) int {
	if hit {
		return 1
	}
	return 0
}

func caseNotes(steps models.CaseSteps) string {
	var missed []string
	if steps.Ack == 0 {
		missed = append(missed, "acknowledge")
	}
	if steps.Clarify == 0 {
		missed = append(missed, "clarify")
	}
	if steps.Address == 0 {
		missed = append(missed, "address")
	}
	if steps.Confirm == 0 {
		missed = append(missed, "confirm")
	}
	if len(missed) == 0 {
		return "all four steps present"
	}
	return "missed: " + strings.Join(missed, ", ")
}
