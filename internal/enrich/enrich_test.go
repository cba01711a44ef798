package enrich

import (
	"testing"

	"github.com/pitchlab/callgrader/internal/models"
)

func turn(id int, s models.Speaker, text string) models.Turn {
	return models.Turn{
		ID:      id,
		Speaker: s,
		StartMs: int64(id * 5000),
		EndMs:   int64(id*5000 + 4000),
		Text:    text,
	}
}

func TestEnrich_WonCall(t *testing.T) {
	transcript := models.Transcript{SessionID: "won-1", Turns: []models.Turn{
		turn(0, models.SpeakerRep, "Hi, I'm Dave with Apex Roofing."),
		turn(1, models.SpeakerHomeowner, "We already have another company's quote."),
		turn(2, models.SpeakerRep, "I understand. Our warranty runs twice as long, and we can do a payment plan."),
		turn(3, models.SpeakerHomeowner, "What would it cost?"),
		turn(4, models.SpeakerRep, "Would morning or afternoon work better to schedule the inspection?"),
		turn(5, models.SpeakerHomeowner, "Sounds good, let's do it."),
	}}
	packet := models.GradePacket{
		SessionID: "won-1",
		Metrics:   models.ObjectiveMetrics{TalkRatioRep: 0.55, WPMRep: 150},
		Spans:     []models.ObjectionSpan{{Label: models.LabelCompetitor, StartTurnID: 1, EndTurnID: 5}},
		Cases: []models.ObjectionCaseScore{
			{Label: models.LabelCompetitor, Steps: models.CaseSteps{Ack: 1, Clarify: 1, Address: 1, Confirm: 1}, Score: 20},
		},
		Scores: models.ComponentScores{Final: 91, Band: models.BandReady},
	}

	r := Enrich(transcript, packet)

	if r.Outcome != "SUCCESS" || !r.SaleClosed {
		t.Errorf("outcome = %s closed = %v, want SUCCESS/true", r.Outcome, r.SaleClosed)
	}
	if r.Letter != "A" {
		t.Errorf("letter = %s, want A", r.Letter)
	}
	if !r.CompetitorMentioned {
		t.Error("competitor mention missed")
	}
	if !r.WarrantyMentioned || !r.FinancingDiscussed {
		t.Errorf("warranty = %v financing = %v, want true/true", r.WarrantyMentioned, r.FinancingDiscussed)
	}
	if !r.AppointmentSet {
		t.Error("appointment followed by homeowner agreement must set the flag")
	}
	if r.CloseTechnique != "alternative" {
		t.Errorf("close technique = %q, want alternative", r.CloseTechnique)
	}
	if r.ObjectionCount != 1 || r.ObjectionLabels != "competitor" || r.ObjectionsResolved != 1 {
		t.Errorf("objections = %d %q resolved %d", r.ObjectionCount, r.ObjectionLabels, r.ObjectionsResolved)
	}
	if r.HomeownerQuestions != 1 {
		t.Errorf("homeowner questions = %d, want 1", r.HomeownerQuestions)
	}
	if r.EmpathyPhrases != 1 {
		t.Errorf("empathy phrases = %d, want 1", r.EmpathyPhrases)
	}
	if r.CallDurationMs != 29000 {
		t.Errorf("duration = %d, want 29000", r.CallDurationMs)
	}
}

func TestEnrich_LostCall(t *testing.T) {
	transcript := models.Transcript{SessionID: "lost-1", Turns: []models.Turn{
		turn(0, models.SpeakerRep, "This is a limited time offer, you must decide before I leave!"),
		turn(1, models.SpeakerHomeowner, "Please leave, we're done here."),
	}}
	packet := models.GradePacket{
		SessionID: "lost-1",
		Scores:    models.ComponentScores{Final: 34, Band: models.BandRework},
	}

	r := Enrich(transcript, packet)

	if r.Outcome != "FAILURE" || r.SaleClosed {
		t.Errorf("outcome = %s closed = %v, want FAILURE/false", r.Outcome, r.SaleClosed)
	}
	if r.Letter != "F" {
		t.Errorf("letter = %s, want F", r.Letter)
	}
	if !r.PressureTactics {
		t.Error("pressure tactics missed")
	}
	if r.CloseTechnique != "urgency" {
		t.Errorf("close technique = %q, want urgency", r.CloseTechnique)
	}
}

func TestEnrich_OutcomeFallsBackToScore(t *testing.T) {
	transcript := models.Transcript{Turns: []models.Turn{
		turn(0, models.SpeakerRep, "Thanks for your time."),
		turn(1, models.SpeakerHomeowner, "We will think about it."),
	}}

	tests := []struct {
		name  string
		final int
		want  string
	}{
		{"high score", 88, "SUCCESS"},
		{"mid score", 65, "PARTIAL"},
		{"low score", 42, "FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.GradePacket{Scores: models.ComponentScores{Final: tt.final}}
			if r := Enrich(transcript, p); r.Outcome != tt.want {
				t.Errorf("outcome = %s, want %s", r.Outcome, tt.want)
			}
		})
	}
}

func TestEnrich_LetterGrades(t *testing.T) {
	tests := []struct {
		final int
		want  string
	}{
		{95, "A"}, {90, "A"}, {89, "B"}, {80, "B"},
		{79, "C"}, {70, "C"}, {69, "D"}, {60, "D"}, {59, "F"}, {0, "F"},
	}

	transcript := models.Transcript{Turns: []models.Turn{
		turn(0, models.SpeakerHomeowner, "Sounds good, let's do it."),
	}}
	for _, tt := range tests {
		p := models.GradePacket{Scores: models.ComponentScores{Final: tt.final}}
		if r := Enrich(transcript, p); r.Letter != tt.want {
			t.Errorf("letter(%d) = %s, want %s", tt.final, r.Letter, tt.want)
		}
	}
}

func TestEnrich_EnergyLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		wpm  float64
		want string
	}{
		{"flat", "we install roofs.", 140, "low"},
		{"fast talker", "we install roofs.", 180, "medium"},
		{"shouting and fast", "this is HUGE! Best deal EVER!", 180, "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := models.Transcript{Turns: []models.Turn{
				turn(0, models.SpeakerRep, tt.text),
			}}
			p := models.GradePacket{Metrics: models.ObjectiveMetrics{WPMRep: tt.wpm}}
			if r := Enrich(transcript, p); r.EnergyLevel != tt.want {
				t.Errorf("energy = %s, want %s", r.EnergyLevel, tt.want)
			}
		})
	}
}

func TestEnrich_CloseTechniquePriority(t *testing.T) {
	// Trial phrasing outranks urgency when both appear.
	transcript := models.Transcript{Turns: []models.Turn{
		turn(0, models.SpeakerRep, "How does that sound? Only today we can hold this rate."),
	}}
	if r := Enrich(transcript, models.GradePacket{}); r.CloseTechnique != "trial" {
		t.Errorf("close technique = %q, want trial", r.CloseTechnique)
	}
}

func TestEnrich_AppointmentNeedsAgreementAfterProposal(t *testing.T) {
	// Homeowner agreed before the slot was offered, never after.
	transcript := models.Transcript{Turns: []models.Turn{
		turn(0, models.SpeakerHomeowner, "That works for us."),
		turn(1, models.SpeakerRep, "Great, what time works on Tuesday?"),
	}}
	if r := Enrich(transcript, models.GradePacket{}); r.AppointmentSet {
		t.Error("agreement before the proposal must not count")
	}
}

func TestEnrich_EmptyTranscriptDefaults(t *testing.T) {
	r := Enrich(models.Transcript{}, models.GradePacket{SessionID: "empty"})

	if r.SessionID != "empty" {
		t.Errorf("session id = %s", r.SessionID)
	}
	if r.Outcome != "FAILURE" {
		t.Errorf("outcome = %s, want FAILURE for a zero score", r.Outcome)
	}
	if r.EnergyLevel != "low" || r.CloseTechnique != "" {
		t.Errorf("energy = %s technique = %q", r.EnergyLevel, r.CloseTechnique)
	}
	if r.SaleClosed || r.CallDurationMs != 0 || r.InterruptsPerMinute != 0 {
		t.Errorf("unexpected non-defaults: %+v", r)
	}
}
