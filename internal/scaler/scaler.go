package scaler

import (
	"math"

	"github.com/pitchlab/callgrader/internal/models"
)

const (
	maxObjective = 60.0

	// Talk ratio earns full hygiene credit at 50/50 and decays linearly to
	// zero at 25 points from center.
	talkRatioCenter = 0.5
	talkRatioSlack  = 0.25

	questionRampLow  = 0.20
	questionRampHigh = 0.35

	wpmLow  = 120.0
	wpmHigh = 190.0

	maxDeadAirPenalty = 5.0
)

// Scaler maps ObjectiveMetrics onto the deterministic 0-60 component of the
// final score. Six weighted sub-terms are summed, dead air is subtracted,
// and the result is clamped.
type Scaler struct{}

func New() *Scaler {
	return &Scaler{}
}

func (s *Scaler) Scale(m models.ObjectiveMetrics) float64 {
	total := s.hygiene(m) +
		s.discovery(m) +
		s.objectionProxy(m) +
		s.clarityProxy(m) +
		s.complianceProxy() +
		s.solutionPricingProxy(m)

	total -= math.Min(maxDeadAirPenalty, float64(m.DeadAirCount))

	return clamp(total, 0, maxObjective)
}

// hygiene covers conversational mechanics: balance, curiosity, interrupts,
// and filler density. Max 20.
func (s *Scaler) hygiene(m models.ObjectiveMetrics) float64 {
	offCenter := math.Abs(m.TalkRatioRep-talkRatioCenter) / talkRatioSlack
	talk := 8.0 * (1.0 - math.Min(1.0, offCenter))

	questions := 0.0
	switch {
	case m.QuestionRate >= questionRampHigh:
		questions = 5.0
	case m.QuestionRate > questionRampLow:
		questions = 5.0 * (m.QuestionRate - questionRampLow) / (questionRampHigh - questionRampLow)
	}

	unapologized := m.Interrupts - m.InterruptsApologized
	if unapologized < 0 {
		unapologized = 0
	}
	interrupts := math.Max(0, 4.0-float64(unapologized))

	fillers := math.Max(0, 3.0-m.FillersPer100/3.0)

	return talk + questions + interrupts + fillers
}

// discovery rewards running an actual discovery phase. Max 20.
func (s *Scaler) discovery(m models.ObjectiveMetrics) float64 {
	base := 0.0
	if m.StepCoverage.Discovery {
		base = 10.0
	}
	questions := math.Min(6.0, m.QuestionRate*10.0)
	balance := math.Min(4.0, (1.0-math.Abs(m.TalkRatioRep-talkRatioCenter))*8.0)
	return base + questions + balance
}

// objectionProxy approximates objection-handling quality from keyword
// coverage alone; the LLM rubric supersedes it when available. Max 20.
func (s *Scaler) objectionProxy(m models.ObjectiveMetrics) float64 {
	total := 0.0
	if m.StepCoverage.Value {
		total += 8.0
	}
	if m.CloseAttempts > 0 {
		total += 6.0
	}
	if m.StepCoverage.Price {
		total += 6.0
	}
	return math.Min(20.0, total)
}

// clarityProxy covers pace and filler rate. Max 10.
func (s *Scaler) clarityProxy(m models.ObjectiveMetrics) float64 {
	total := 0.0
	if m.WPMRep >= wpmLow && m.WPMRep <= wpmHigh {
		total += 6.0
	}
	total += math.Max(0, 4.0-m.FillersPer100/2.5)
	return total
}

// complianceProxy is a flat baseline; real enforcement happens through
// LLM-detected violations as aggregator penalties.
func (s *Scaler) complianceProxy() float64 {
	return 8.0
}

// solutionPricingProxy rewards framing value, discussing price, and asking
// for the sale.
func (s *Scaler) solutionPricingProxy(m models.ObjectiveMetrics) float64 {
	total := 0.0
	if m.StepCoverage.Value {
		total += 6.0
	}
	if m.StepCoverage.Price {
		total += 4.0
	}
	if m.CloseAttempts > 0 {
		total += math.Min(10.0, 4.0+3.0*float64(m.CloseAttempts))
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
