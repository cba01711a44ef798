package objection

import (
	"sort"

	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/models"
)

// handlingWindow is how many turns past the trigger a span covers.
const handlingWindow = 5

// Detector finds homeowner objections and opens a fixed handling window over
// each one. Category patterns are evaluated in lexicon order and the first
// match wins per turn.
type Detector struct {
	lex *lexicon.Lexicon
}

func NewDetector(lex *lexicon.Lexicon) *Detector {
	return &Detector{lex: lex}
}

func (d *Detector) Detect(t models.Transcript) []models.ObjectionSpan {
	if len(t.Turns) == 0 {
		return nil
	}
	lastID := t.Turns[len(t.Turns)-1].ID

	var spans []models.ObjectionSpan
	for _, turn := range t.Turns {
		if turn.Speaker != models.SpeakerHomeowner {
			continue
		}
		for _, op := range d.lex.Objections {
			if !op.Pattern.MatchString(turn.Text) {
				continue
			}
			end := turn.ID + handlingWindow
			if end > lastID {
				end = lastID
			}
			spans = append(spans, models.ObjectionSpan{
				Label:       op.Label,
				StartTurnID: turn.ID,
				EndTurnID:   end,
			})
			break
		}
	}

	return mergeSpans(spans)
}

// mergeSpans sorts by start and folds a span into the previous span of the
// same label when its start falls inside that span's window. Overlapping
// spans with different labels stay distinct.
func mergeSpans(spans []models.ObjectionSpan) []models.ObjectionSpan {
	if len(spans) == 0 {
		return spans
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].StartTurnID < spans[j].StartTurnID
	})

	var merged []models.ObjectionSpan
	for _, s := range spans {
		folded := false
		for i := len(merged) - 1; i >= 0; i-- {
			prev := &merged[i]
			if prev.Label != s.Label {
				continue
			}
			if s.StartTurnID >= prev.StartTurnID && s.StartTurnID <= prev.EndTurnID {
				if s.EndTurnID > prev.EndTurnID {
					prev.EndTurnID = s.EndTurnID
				}
				folded = true
			}
			break
		}
		if !folded {
			merged = append(merged, s)
		}
	}
	return merged
}
