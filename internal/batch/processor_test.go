package batch

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/pitchlab/callgrader/internal/aggregator"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/metrics"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/pitchlab/callgrader/internal/objection"
	"github.com/pitchlab/callgrader/internal/scaler"
	"github.com/rs/zerolog"
)

type nilRunner struct{}

func (nilRunner) Run(ctx context.Context, t models.Transcript, spans []models.ObjectionSpan, policy []string) *models.RubricOutput {
	return nil
}

func newTestGrader() *grader.Grader {
	logger := zerolog.Nop()
	lex := lexicon.Default()
	return grader.New(
		metrics.NewExtractor(lex),
		objection.NewDetector(lex),
		objection.NewCaseScorer(lex),
		nilRunner{},
		scaler.New(),
		aggregator.New(&logger),
		&logger,
	)
}

func TestProcess_MixedRecords(t *testing.T) {
	logger := zerolog.Nop()
	p := NewProcessor(newTestGrader(), 4, &logger)

	records := []InputRecord{
		{Line: 1, Request: models.GradeRequest{SessionID: "s1", Turns: []models.Turn{
			{ID: 0, Speaker: models.SpeakerRep, StartMs: 0, EndMs: 2000, Text: "Hi, my name is Dave."},
		}}},
		{Line: 2, Error: errors.New("line 2: invalid character 'n'")},
		{Line: 3, Request: models.GradeRequest{SessionID: "s3"}},
	}

	out := p.Process(context.Background(), records)
	if len(out) != 3 {
		t.Fatalf("results = %d, want 3", len(out))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })

	if out[0].Packet.SessionID != "s1" || out[0].Error != "" {
		t.Errorf("line 1 = %+v", out[0])
	}
	if out[0].Record.SessionID != "s1" {
		t.Errorf("line 1 record not enriched: %+v", out[0].Record)
	}
	if out[1].Error == "" {
		t.Error("line 2 must carry the parse error")
	}
	if out[2].Packet.SessionID != "s3" {
		t.Errorf("line 3 = %+v", out[2])
	}
}

func TestProcess_WorkerFloor(t *testing.T) {
	logger := zerolog.Nop()
	p := NewProcessor(newTestGrader(), 0, &logger)

	out := p.Process(context.Background(), []InputRecord{
		{Line: 1, Request: models.GradeRequest{SessionID: "only"}},
	})
	if len(out) != 1 || out[0].Packet.SessionID != "only" {
		t.Errorf("results = %+v", out)
	}
}
