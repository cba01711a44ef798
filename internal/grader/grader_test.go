package grader

import (
	"context"
	"reflect"
	"testing"

	"github.com/pitchlab/callgrader/internal/aggregator"
	"github.com/pitchlab/callgrader/internal/grader/mocks"
	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/metrics"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/pitchlab/callgrader/internal/objection"
	"github.com/pitchlab/callgrader/internal/scaler"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

// stubRunner replaces the LLM rubric stage with a canned result.
type stubRunner struct {
	out   *models.RubricOutput
	calls int
}

func (s *stubRunner) Run(ctx context.Context, t models.Transcript, spans []models.ObjectionSpan, policy []string) *models.RubricOutput {
	s.calls++
	return s.out
}

// strongCall is a ten-turn door-to-door conversation where the rep opens,
// runs discovery, handles a price objection through all four steps, and
// closes. Turn timing gives a 50/50 talk ratio with no dead air.
func strongCall() models.Transcript {
	texts := []struct {
		speaker models.Speaker
		text    string
	}{
		{models.SpeakerRep, "Hi there, my name is Dave with Apex Roofing."},
		{models.SpeakerHomeowner, "Okay, what is this about?"},
		{models.SpeakerRep, "How long have you had your current roof?"},
		{models.SpeakerHomeowner, "Honestly it sounds too expensive for us."},
		{models.SpeakerRep, "I hear you, can I ask what part of the cost worries you?"},
		{models.SpeakerHomeowner, "Mostly the monthly payment."},
		{models.SpeakerRep, "The reason is the warranty protects you and it actually saves money."},
		{models.SpeakerHomeowner, "That does sound better."},
		{models.SpeakerRep, "Does that make sense, and should we go ahead and get you started?"},
		{models.SpeakerHomeowner, "Yes, let's do it."},
	}

	turns := make([]models.Turn, 0, len(texts))
	for i, tt := range texts {
		turns = append(turns, models.Turn{
			ID:      i,
			Speaker: tt.speaker,
			StartMs: int64(i * 5000),
			EndMs:   int64(i*5000 + 4000),
			Text:    tt.text,
		})
	}
	return models.Transcript{SessionID: "e2e-1", Turns: turns}
}

func strongRubric() *models.RubricOutput {
	out := &models.RubricOutput{
		Discovery:       15,
		ClarityEmpathy:  8,
		SolutionFraming: 7,
		PricingNextStep: 6,
	}
	out.ObjectionHandling.Overall = 18
	out.Compliance.Score = 10
	out.Compliance.Violations = []string{}
	return out
}

func newPipelineGrader(runner RubricRunner) *Grader {
	logger := zerolog.Nop()
	lex := lexicon.Default()
	return New(
		metrics.NewExtractor(lex),
		objection.NewDetector(lex),
		objection.NewCaseScorer(lex),
		runner,
		scaler.New(),
		aggregator.New(&logger),
		&logger,
	)
}

func TestGrade_StagesWiredInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := zerolog.Nop()

	extractor := mocks.NewMockMetricsExtractor(ctrl)
	detector := mocks.NewMockObjectionDetector(ctrl)
	caseScorer := mocks.NewMockCaseScorer(ctrl)
	runner := mocks.NewMockRubricRunner(ctrl)
	objScaler := mocks.NewMockObjectiveScaler(ctrl)
	agg := mocks.NewMockAggregator(ctrl)

	transcript := models.Transcript{SessionID: "unit-1", Turns: []models.Turn{
		{ID: 0, Speaker: models.SpeakerRep, Text: "Hello."},
	}}
	m := models.ObjectiveMetrics{RepTurns: 1, TotalTurns: 1}
	span := models.ObjectionSpan{Label: models.LabelPrice, StartTurnID: 0, EndTurnID: 0}
	caseScore := models.ObjectionCaseScore{Label: models.LabelPrice, Score: 12}
	rubricOut := strongRubric()
	final := models.ComponentScores{Objective: 55, LLM: 32, Final: 87, Band: models.BandReady}

	extractor.EXPECT().Extract(transcript).Return(m)
	detector.EXPECT().Detect(transcript).Return([]models.ObjectionSpan{span})
	caseScorer.EXPECT().Score(span, transcript).Return(caseScore)
	runner.EXPECT().Run(gomock.Any(), transcript, []models.ObjectionSpan{span}, gomock.Nil()).Return(rubricOut)
	objScaler.EXPECT().Scale(m).Return(55.0)
	agg.EXPECT().Aggregate(55.0, 32.0, m, rubricOut).Return(final)

	g := New(extractor, detector, caseScorer, runner, objScaler, agg, &logger)
	packet := g.Grade(context.Background(), transcript, nil)

	if packet.SessionID != "unit-1" {
		t.Errorf("session id = %s", packet.SessionID)
	}
	if !reflect.DeepEqual(packet.Cases, []models.ObjectionCaseScore{caseScore}) {
		t.Errorf("cases = %+v", packet.Cases)
	}
	if packet.Scores != final {
		t.Errorf("scores = %+v, want %+v", packet.Scores, final)
	}
}

func TestGrade_EndToEnd(t *testing.T) {
	runner := &stubRunner{out: strongRubric()}
	g := newPipelineGrader(runner)

	packet := g.Grade(context.Background(), strongCall(), nil)

	if packet.Scores.Objective != 60 {
		t.Errorf("objective = %f, want 60", packet.Scores.Objective)
	}
	if packet.Scores.LLM != 32 {
		t.Errorf("llm = %f, want 32", packet.Scores.LLM)
	}
	if packet.Scores.Final != 92 {
		t.Errorf("final = %d, want 92", packet.Scores.Final)
	}
	if packet.Scores.Band != models.BandReady {
		t.Errorf("band = %s, want %s", packet.Scores.Band, models.BandReady)
	}

	if len(packet.Spans) != 1 || packet.Spans[0].Label != models.LabelPrice {
		t.Fatalf("spans = %+v, want one price span", packet.Spans)
	}
	if packet.Spans[0].StartTurnID != 3 || packet.Spans[0].EndTurnID != 8 {
		t.Errorf("span = [%d,%d], want [3,8]", packet.Spans[0].StartTurnID, packet.Spans[0].EndTurnID)
	}
	if len(packet.Cases) != 1 || packet.Cases[0].Score != 20 {
		t.Errorf("cases = %+v, want one case at 20", packet.Cases)
	}
	if runner.calls != 1 {
		t.Errorf("rubric stage ran %d times, want 1", runner.calls)
	}
}

func TestGrade_Deterministic(t *testing.T) {
	runner := &stubRunner{out: strongRubric()}
	g := newPipelineGrader(runner)

	first := g.Grade(context.Background(), strongCall(), nil)
	second := g.Grade(context.Background(), strongCall(), nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat grading diverged:\n%+v\n%+v", first, second)
	}
}

func TestGrade_LLMOutageDegradesGracefully(t *testing.T) {
	g := newPipelineGrader(&stubRunner{out: nil})

	packet := g.Grade(context.Background(), strongCall(), nil)

	if packet.Rubric != nil {
		t.Errorf("rubric = %+v, want nil", packet.Rubric)
	}
	if packet.Scores.LLM != 0 {
		t.Errorf("llm = %f, want 0", packet.Scores.LLM)
	}
	if packet.Scores.Final != 60 || packet.Scores.Band != models.BandRework {
		t.Errorf("final = %d band = %s, want 60 Rework", packet.Scores.Final, packet.Scores.Band)
	}
}

func TestGrade_EmptyTranscript(t *testing.T) {
	g := newPipelineGrader(&stubRunner{out: nil})

	packet := g.Grade(context.Background(), models.Transcript{SessionID: "empty"}, nil)

	if packet.Scores.Final < 0 || packet.Scores.Final > 100 {
		t.Errorf("final %d outside [0,100]", packet.Scores.Final)
	}
	if packet.Cases == nil {
		t.Error("cases must be non-nil even with no objections")
	}
}
