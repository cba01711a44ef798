// Package enrich turns a finished GradePacket plus its transcript into flat
// persistence fields. Every detector is total: it returns its documented
// default instead of failing, so a degenerate transcript still yields a
// complete record.
package enrich

import (
	"fmt"
	"strings"

	"github.com/pitchlab/callgrader/internal/models"
)

// Enrich runs every detector. Detectors are independent; none reads another's
// output.
func Enrich(t models.Transcript, p models.GradePacket) FlatRecord {
	repRaw := rawSpeakerText(t, models.SpeakerRep)
	rep := strings.ToLower(repRaw)
	homeowner := speakerText(t, models.SpeakerHomeowner)
	outcome := finalOutcome(t, p.Scores.Final)

	return FlatRecord{
		SessionID:  p.SessionID,
		FinalScore: p.Scores.Final,
		Letter:     letterGrade(p.Scores.Final),
		Band:       string(p.Scores.Band),

		Outcome:    outcome,
		SaleClosed: saleClosed(t),
		Summary:    summaryLine(p, outcome),

		EnergyLevel:    energyLevel(repRaw, p.Metrics.WPMRep),
		CloseTechnique: closeTechnique(rep),

		PricingDeflections: pricingDeflections(t),
		PressureTactics:    pressureTactics(rep),
		Rudeness:           rudeness(rep),

		ObjectionCount:     len(p.Spans),
		ObjectionLabels:    objectionLabels(p.Spans),
		ObjectionsResolved: objectionsResolved(p.Cases),

		CompetitorMentioned: competitorMentioned(homeowner),
		DecisionMakerCheck:  decisionMakerCheck(rep),
		DiscountOffered:     discountOffered(rep),
		FinancingDiscussed:  financingDiscussed(rep),
		WarrantyMentioned:   warrantyMentioned(rep),
		AppointmentSet:      appointmentSet(t),
		FollowUpScheduled:   followUpScheduled(rep),

		HomeownerQuestions:   homeownerQuestions(t),
		EmpathyPhrases:       empathyPhrases(rep),
		ComplianceViolations: complianceViolations(p.Rubric),
		TalkRatioRep:         p.Metrics.TalkRatioRep,
		InterruptsPerMinute:  interruptsPerMinute(t, p.Metrics.Interrupts),
		CallDurationMs:       callDurationMs(t),
	}
}

func speakerText(t models.Transcript, s models.Speaker) string {
	return strings.ToLower(rawSpeakerText(t, s))
}

func rawSpeakerText(t models.Transcript, s models.Speaker) string {
	var b strings.Builder
	for _, turn := range t.Turns {
		if turn.Speaker == s {
			b.WriteString(turn.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// letterGrade maps the numeric score onto a report-card letter. Default "F".
func letterGrade(final int) string {
	switch {
	case final >= 90:
		return "A"
	case final >= 80:
		return "B"
	case final >= 70:
		return "C"
	case final >= 60:
		return "D"
	default:
		return "F"
	}
}

// energyLevel scores pace, exclamations, and shouted words. Runs on raw rep
// text so all-caps words survive. Default "low".
func energyLevel(raw string, wpm float64) string {
	signals := 0
	if wpm > 170 {
		signals++
	}
	if strings.Count(raw, "!") >= 2 {
		signals++
	}
	if capsWords.FindAllString(raw, -1) != nil {
		signals++
	}
	switch {
	case signals >= 2:
		return "high"
	case signals == 1:
		return "medium"
	default:
		return "low"
	}
}

// closeTechnique picks the dominant closing style by priority order.
// Default is the empty string (no recognizable close).
func closeTechnique(rep string) string {
	for _, ct := range closeTechniques {
		if ct.pattern.MatchString(rep) {
			return ct.name
		}
	}
	return ""
}

// pricingDeflections counts rep turns that dodge a pricing question instead
// of answering it. Default 0.
func pricingDeflections(t models.Transcript) int {
	count := 0
	for _, turn := range t.Turns {
		if turn.Speaker == models.SpeakerRep && deflection.MatchString(strings.ToLower(turn.Text)) {
			count++
		}
	}
	return count
}

// pressureTactics flags high-pressure language in rep turns. Default false.
func pressureTactics(rep string) bool {
	return pressure.MatchString(rep)
}

// rudeness flags hostile rep language. Default false.
func rudeness(rep string) bool {
	return rude.MatchString(rep)
}

// finalOutcome classifies how the call ended, reading the homeowner's last
// few utterances first and falling back to the numeric score only when no
// lexical signal matches. Default "PARTIAL".
func finalOutcome(t models.Transcript, final int) string {
	for _, text := range lastHomeownerUtterances(t, 3) {
		lower := strings.ToLower(text)
		if positiveClose.MatchString(lower) {
			return "SUCCESS"
		}
		if negativeClose.MatchString(lower) {
			return "FAILURE"
		}
	}
	switch {
	case final >= 85:
		return "SUCCESS"
	case final < 50:
		return "FAILURE"
	default:
		return "PARTIAL"
	}
}

// saleClosed is true only on an explicit homeowner agreement. Default false.
func saleClosed(t models.Transcript) bool {
	for _, text := range lastHomeownerUtterances(t, 3) {
		if positiveClose.MatchString(strings.ToLower(text)) {
			return true
		}
	}
	return false
}

// summaryLine generates a one-line textual recap of the call.
func summaryLine(p models.GradePacket, outcome string) string {
	return fmt.Sprintf("Scored %d (%s), %d objection(s), %s outcome, rep talk ratio %.0f%%.",
		p.Scores.Final, p.Scores.Band, len(p.Spans), outcome, p.Metrics.TalkRatioRep*100)
}

func objectionLabels(spans []models.ObjectionSpan) string {
	if len(spans) == 0 {
		return ""
	}
	labels := make([]string, 0, len(spans))
	for _, s := range spans {
		labels = append(labels, string(s.Label))
	}
	return strings.Join(labels, ",")
}

// objectionsResolved counts cases where all four handling steps landed.
func objectionsResolved(cases []models.ObjectionCaseScore) int {
	count := 0
	for _, c := range cases {
		if c.Steps.Ack+c.Steps.Clarify+c.Steps.Address+c.Steps.Confirm == 4 {
			count++
		}
	}
	return count
}

func competitorMentioned(homeowner string) bool {
	return competitor.MatchString(homeowner)
}

// decisionMakerCheck is true when the rep asked who makes the decision.
func decisionMakerCheck(rep string) bool {
	return decisionMaker.MatchString(rep)
}

func discountOffered(rep string) bool {
	return discount.MatchString(rep)
}

func financingDiscussed(rep string) bool {
	return financing.MatchString(rep)
}

func warrantyMentioned(rep string) bool {
	return warranty.MatchString(rep)
}

// appointmentSet requires the rep proposing a time and the homeowner not
// shutting it down in their remaining turns. Default false.
func appointmentSet(t models.Transcript) bool {
	proposed := false
	for _, turn := range t.Turns {
		lower := strings.ToLower(turn.Text)
		if turn.Speaker == models.SpeakerRep && appointment.MatchString(lower) {
			proposed = true
			continue
		}
		if proposed && turn.Speaker == models.SpeakerHomeowner && positiveClose.MatchString(lower) {
			return true
		}
	}
	return false
}

func followUpScheduled(rep string) bool {
	return followUp.MatchString(rep)
}

func homeownerQuestions(t models.Transcript) int {
	count := 0
	for _, turn := range t.Turns {
		if turn.Speaker == models.SpeakerHomeowner && strings.HasSuffix(strings.TrimSpace(turn.Text), "?") {
			count++
		}
	}
	return count
}

func empathyPhrases(rep string) int {
	return len(empathy.FindAllString(rep, -1))
}

// complianceViolations reads the rubric when present. Default 0.
func complianceViolations(r *models.RubricOutput) int {
	if r == nil {
		return 0
	}
	return len(r.Compliance.Violations)
}

func interruptsPerMinute(t models.Transcript, interrupts int) float64 {
	duration := callDurationMs(t)
	if duration <= 0 {
		return 0
	}
	minutes := float64(duration) / 60000.0
	return float64(interrupts) / minutes
}

func callDurationMs(t models.Transcript) int64 {
	if len(t.Turns) == 0 {
		return 0
	}
	duration := t.Turns[len(t.Turns)-1].EndMs - t.Turns[0].StartMs
	if duration < 0 {
		return 0
	}
	return duration
}

func lastHomeownerUtterances(t models.Transcript, n int) []string {
	var out []string
	for i := len(t.Turns) - 1; i >= 0 && len(out) < n; i-- {
		if t.Turns[i].Speaker == models.SpeakerHomeowner {
			out = append(out, t.Turns[i].Text)
		}
	}
	return out
}
