package metrics

import (
	"regexp"
	"strings"

	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/models"
)

const (
	// OverlapMs above which a rep turn counts as an interrupt.
	interruptOverlapMs = 400
	// Gap between consecutive turns that counts as dead air.
	deadAirGapMs = 2500
	// How many turns ahead to look for a rep apology after an interrupt.
	apologyLookahead = 5
	// Floor on rep speaking minutes so WPM never divides by zero.
	speakingMinutesFloor = 0.01
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9']+`)

// Extractor derives ObjectiveMetrics from a transcript in one forward pass.
// It never fails: degenerate transcripts produce zero/neutral metrics.
type Extractor struct {
	lex *lexicon.Lexicon
}

func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

func (e *Extractor) Extract(t models.Transcript) models.ObjectiveMetrics {
	m := models.ObjectiveMetrics{TotalTurns: len(t.Turns)}

	var (
		repDurationMs   int64
		totalDurationMs int64
		fillerHits      int
		repText         strings.Builder
	)

	for i, turn := range t.Turns {
		words := len(wordPattern.FindAllString(turn.Text, -1))
		m.TotalWords += words

		duration := turn.EndMs - turn.StartMs
		if duration < 0 {
			duration = 0
		}
		totalDurationMs += duration

		if i > 0 && turn.StartMs-t.Turns[i-1].EndMs > deadAirGapMs {
			m.DeadAirCount++
		}

		if turn.Speaker != models.SpeakerRep {
			continue
		}

		m.RepTurns++
		m.RepWords += words
		repDurationMs += duration
		repText.WriteString(turn.Text)
		repText.WriteString("\n")
		fillerHits += lexicon.CountHits(turn.Text, e.lex.Fillers)

		if isQuestion(turn.Text, e.lex.Interrogatives) {
			m.RepQuestionTurns++
		}

		if turn.OverlapMs > interruptOverlapMs {
			m.Interrupts++
			if e.apologyFollows(t.Turns, i) {
				m.InterruptsApologized++
			}
		}

		if e.lex.Close.MatchString(turn.Text) {
			m.CloseAttempts++
		}
	}

	if totalDurationMs > 0 {
		m.TalkRatioRep = float64(repDurationMs) / float64(totalDurationMs)
	}
	if m.RepTurns > 0 {
		m.QuestionRate = float64(m.RepQuestionTurns) / float64(m.RepTurns)
	}

	repMinutes := float64(repDurationMs) / 60000.0
	if repMinutes < speakingMinutesFloor {
		repMinutes = speakingMinutesFloor
	}
	m.WPMRep = float64(m.RepWords) / repMinutes

	if m.RepWords > 0 {
		m.FillersPer100 = float64(fillerHits) / float64(m.RepWords) * 100.0
	}

	rep := repText.String()
	if len(t.Turns) > 0 {
		m.StepCoverage.Opener = e.lex.Opener.MatchString(t.Turns[0].Text)
	}
	m.StepCoverage.Discovery = e.lex.Discovery.MatchString(rep)
	m.StepCoverage.Value = e.lex.Value.MatchString(rep)
	m.StepCoverage.Price = e.lex.Price.MatchString(rep)
	m.StepCoverage.Close = m.CloseAttempts > 0

	return m
}

// apologyFollows scans up to apologyLookahead turns after an interrupt for a
// rep turn containing an apology phrase.
func (e *Extractor) apologyFollows(turns []models.Turn, from int) bool {
	for j := from + 1; j <= from+apologyLookahead && j < len(turns); j++ {
		if turns[j].Speaker != models.SpeakerRep {
			continue
		}
		if lexicon.ContainsAny(turns[j].Text, e.lex.Apologies) {
			return true
		}
	}
	return false
}

// isQuestion flags a turn that ends with "?" or opens with an interrogative
// or auxiliary word.
func isQuestion(text string, interrogatives []string) bool {
	trimmed := strings.TrimSpace(text)
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	normalized := lexicon.Normalize(trimmed)
	first, _, _ := strings.Cut(normalized, " ")
	for _, w := range interrogatives {
		if first == w {
			return true
		}
	}
	return false
}
