package grader

import (
	"context"

	"github.com/pitchlab/callgrader/internal/models"
	"github.com/pitchlab/callgrader/internal/rubric"
	"github.com/rs/zerolog"
)

// MetricsExtractor derives objective metrics from a transcript.
type MetricsExtractor interface {
	Extract(t models.Transcript) models.ObjectiveMetrics
}

// ObjectionDetector locates objection handling windows.
type ObjectionDetector interface {
	Detect(t models.Transcript) []models.ObjectionSpan
}

// CaseScorer grades one objection span.
type CaseScorer interface {
	Score(span models.ObjectionSpan, t models.Transcript) models.ObjectionCaseScore
}

// RubricRunner executes the LLM rubric stage; nil output means the LLM was
// unavailable and the component scores zero.
type RubricRunner interface {
	Run(ctx context.Context, t models.Transcript, spans []models.ObjectionSpan, policy []string) *models.RubricOutput
}

// ObjectiveScaler maps metrics onto the 0-60 component.
type ObjectiveScaler interface {
	Scale(m models.ObjectiveMetrics) float64
}

// Aggregator blends components and penalties into final scores.
type Aggregator interface {
	Aggregate(objective, llm40 float64, m models.ObjectiveMetrics, r *models.RubricOutput) models.ComponentScores
}

// Grader sequences the full pipeline for one session. Every stage consumes
// immutable inputs and produces new values, so concurrent Grade calls are
// safe; the single LLM call is the only asynchronous boundary.
type Grader struct {
	extractor  MetricsExtractor
	detector   ObjectionDetector
	caseScorer CaseScorer
	runner     RubricRunner
	scaler     ObjectiveScaler
	aggregator Aggregator
	logger     *zerolog.Logger
}

func New(
	extractor MetricsExtractor,
	detector ObjectionDetector,
	caseScorer CaseScorer,
	runner RubricRunner,
	scaler ObjectiveScaler,
	aggregator Aggregator,
	logger *zerolog.Logger,
) *Grader {
	return &Grader{
		extractor:  extractor,
		detector:   detector,
		caseScorer: caseScorer,
		runner:     runner,
		scaler:     scaler,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Grade converts a finished transcript into a GradePacket. It never fails:
// degenerate transcripts and LLM outages degrade to documented defaults.
func (g *Grader) Grade(ctx context.Context, t models.Transcript, policy []string) models.GradePacket {
	g.logger.Info().Str("session_id", t.SessionID).Int("turns", len(t.Turns)).Msg("grading session")

	m := g.extractor.Extract(t)
	spans := g.detector.Detect(t)

	cases := make([]models.ObjectionCaseScore, 0, len(spans))
	for _, span := range spans {
		cases = append(cases, g.caseScorer.Score(span, t))
	}

	out := g.runner.Run(ctx, t, spans, policy)
	llm40 := rubric.Scale40(out)

	objective := g.scaler.Scale(m)
	scores := g.aggregator.Aggregate(objective, llm40, m, out)

	g.logger.Info().
		Str("session_id", t.SessionID).
		Int("final", scores.Final).
		Str("band", string(scores.Band)).
		Bool("rubric_available", out != nil).
		Msg("grading complete")

	return models.GradePacket{
		SessionID: t.SessionID,
		Metrics:   m,
		Spans:     spans,
		Cases:     cases,
		Rubric:    out,
		Scores:    scores,
	}
}
