package aggregator

import (
	"math"

	"github.com/pitchlab/callgrader/internal/models"
	"github.com/rs/zerolog"
)

const (
	violationPenalty    = 10.0
	maxViolationPenalty = 20.0

	talkRatioFloor      = 0.25
	talkRatioCeiling    = 0.75
	maxTalkRatioPenalty = 10.0

	maxDeadAirPenalty = 5.0

	// Without converted discovery (coverage plus question rate >= 0.30)
	// the final score cannot exceed the soft cap.
	softCap              = 85
	personalizedQuestion = 0.30

	bandReadyMin  = 85
	bandPolishMin = 70
)

// Aggregator blends the objective and LLM components with penalties into the
// final 0-100 score and band.
type Aggregator struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

func (a *Aggregator) Aggregate(objective, llm40 float64, m models.ObjectiveMetrics, rubric *models.RubricOutput) models.ComponentScores {
	penalties := 0.0

	if rubric != nil {
		p := violationPenalty * float64(len(rubric.Compliance.Violations))
		penalties -= math.Min(maxViolationPenalty, p)
	}

	penalties -= talkRatioPenalty(m.TalkRatioRep)

	// Dead air is also subtracted inside the objective scaler. The double
	// count matches the original scoring tables and is kept for parity.
	penalties -= math.Min(maxDeadAirPenalty, float64(m.DeadAirCount))

	// The component ceilings (60/40) already carry the blend weights.
	raw := int(math.Round(objective + llm40 + penalties))
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}

	personalized := m.StepCoverage.Discovery && m.QuestionRate >= personalizedQuestion
	if !personalized && raw > softCap {
		raw = softCap
	}

	scores := models.ComponentScores{
		Objective: objective,
		LLM:       llm40,
		Penalties: penalties,
		Final:     raw,
		Band:      band(raw),
	}

	a.logger.Info().
		Float64("objective", objective).
		Float64("llm", llm40).
		Float64("penalties", penalties).
		Int("final", raw).
		Str("band", string(scores.Band)).
		Msg("aggregation complete")

	return scores
}

// talkRatioPenalty charges up to 10 points for a talk ratio outside
// [0.25, 0.75], proportional to how far past the band it sits. Only one side
// can apply.
func talkRatioPenalty(ratio float64) float64 {
	excess := 0.0
	switch {
	case ratio < talkRatioFloor:
		excess = talkRatioFloor - ratio
	case ratio > talkRatioCeiling:
		excess = ratio - talkRatioCeiling
	}
	return math.Min(maxTalkRatioPenalty, excess/talkRatioFloor*maxTalkRatioPenalty)
}

func band(final int) models.Band {
	if final >= bandReadyMin {
		return models.BandReady
	}
	if final >= bandPolishMin {
		return models.BandNeedsPolish
	}
	return models.BandRework
}
