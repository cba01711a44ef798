package metrics

import (
	"math"
	"testing"

	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtract_BasicCounts(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	transcript := models.Transcript{SessionID: "s1", Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerRep, StartMs: 0, EndMs: 4000, Text: "Hi, my name is Dave with Apex Roofing."},
		{ID: 1, Speaker: models.SpeakerHomeowner, StartMs: 4500, EndMs: 5000, Text: "Okay."},
		{ID: 2, Speaker: models.SpeakerRep, StartMs: 5500, EndMs: 7500, Text: "How long have you lived here?"},
		{ID: 3, Speaker: models.SpeakerHomeowner, StartMs: 8000, EndMs: 9000, Text: "Ten years."},
	}}

	m := e.Extract(transcript)

	if m.RepTurns != 2 || m.TotalTurns != 4 {
		t.Errorf("turns = %d/%d, want 2/4", m.RepTurns, m.TotalTurns)
	}
	if m.RepWords != 14 || m.TotalWords != 17 {
		t.Errorf("words = %d/%d, want 14/17", m.RepWords, m.TotalWords)
	}
	if m.RepQuestionTurns != 1 || !almostEqual(m.QuestionRate, 0.5) {
		t.Errorf("question rate = %f (%d turns), want 0.5", m.QuestionRate, m.RepQuestionTurns)
	}
	if !almostEqual(m.TalkRatioRep, 0.8) {
		t.Errorf("talk ratio = %f, want 0.8", m.TalkRatioRep)
	}
	if !almostEqual(m.WPMRep, 140) {
		t.Errorf("wpm = %f, want 140", m.WPMRep)
	}
	if m.DeadAirCount != 0 {
		t.Errorf("dead air = %d, want 0", m.DeadAirCount)
	}
	if !m.StepCoverage.Opener || !m.StepCoverage.Discovery {
		t.Errorf("expected opener and discovery coverage, got %+v", m.StepCoverage)
	}
	if m.StepCoverage.Value || m.StepCoverage.Price || m.StepCoverage.Close {
		t.Errorf("unexpected coverage flags: %+v", m.StepCoverage)
	}
}

func TestExtract_DeadAir(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	transcript := models.Transcript{Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerRep, StartMs: 0, EndMs: 2000, Text: "So."},
		{ID: 1, Speaker: models.SpeakerHomeowner, StartMs: 5100, EndMs: 6000, Text: "Yes."},
		{ID: 2, Speaker: models.SpeakerRep, StartMs: 8501, EndMs: 9000, Text: "Good."},
		{ID: 3, Speaker: models.SpeakerHomeowner, StartMs: 11500, EndMs: 12000, Text: "Fine."},
	}}

	// Gaps are 3100, 2501 and 2500; only gaps strictly above 2500 count.
	m := e.Extract(transcript)
	if m.DeadAirCount != 2 {
		t.Errorf("dead air = %d, want 2", m.DeadAirCount)
	}
}

func TestExtract_InterruptsAndApologies(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	tests := []struct {
		name           string
		followupText   string
		wantApologized int
	}{
		{"apology within lookahead", "Sorry, go ahead.", 1},
		{"no apology", "Anyway, the panels pay for themselves.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := models.Transcript{Turns: []models.Turn{
				{ID: 0, Speaker: models.SpeakerHomeowner, StartMs: 0, EndMs: 3000, Text: "Well, we were thinking"},
				{ID: 1, Speaker: models.SpeakerRep, StartMs: 2400, EndMs: 5000, OverlapMs: 600, Text: "Let me stop you there."},
				{ID: 2, Speaker: models.SpeakerHomeowner, StartMs: 5200, EndMs: 6000, Text: "Okay."},
				{ID: 3, Speaker: models.SpeakerRep, StartMs: 6200, EndMs: 7000, Text: tt.followupText},
			}}

			m := e.Extract(transcript)
			if m.Interrupts != 1 {
				t.Fatalf("interrupts = %d, want 1", m.Interrupts)
			}
			if m.InterruptsApologized != tt.wantApologized {
				t.Errorf("apologized = %d, want %d", m.InterruptsApologized, tt.wantApologized)
			}
		})
	}
}

func TestExtract_OverlapAtThresholdNotCounted(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	transcript := models.Transcript{Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerHomeowner, StartMs: 0, EndMs: 2000, Text: "Hm."},
		{ID: 1, Speaker: models.SpeakerRep, StartMs: 1600, EndMs: 3000, OverlapMs: 400, Text: "Right."},
	}}

	if m := e.Extract(transcript); m.Interrupts != 0 {
		t.Errorf("overlap of exactly 400ms must not count, got %d", m.Interrupts)
	}
}

func TestExtract_Fillers(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	transcript := models.Transcript{Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerRep, StartMs: 0, EndMs: 3000, Text: "Um, you know, it's like a good deal."},
	}}

	m := e.Extract(transcript)
	// 3 filler hits over 8 rep words.
	if !almostEqual(m.FillersPer100, 37.5) {
		t.Errorf("fillers per 100 = %f, want 37.5", m.FillersPer100)
	}
}

func TestExtract_EmptyTranscript(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	m := e.Extract(models.Transcript{})
	if m.TalkRatioRep != 0 || m.QuestionRate != 0 || m.WPMRep != 0 || m.FillersPer100 != 0 {
		t.Errorf("empty transcript must yield zero rates, got %+v", m)
	}
	if m.StepCoverage != (models.StepCoverage{}) {
		t.Errorf("empty transcript must yield no coverage, got %+v", m.StepCoverage)
	}
}

func TestExtract_WPMFloor(t *testing.T) {
	e := NewExtractor(lexicon.Default())

	transcript := models.Transcript{Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerRep, StartMs: 1000, EndMs: 1000, Text: "one two three four five"},
	}}

	// Zero speaking time is floored at 0.01 minutes.
	if m := e.Extract(transcript); !almostEqual(m.WPMRep, 500) {
		t.Errorf("wpm = %f, want 500", m.WPMRep)
	}
}
