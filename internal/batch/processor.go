package batch

import (
	"context"
	"sync"

	"github.com/pitchlab/callgrader/internal/enrich"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/rs/zerolog"
)

// OutputRecord is the result of grading one input line.
type OutputRecord struct {
	Line   int                `json:"line"`
	Packet models.GradePacket `json:"packet"`
	Record enrich.FlatRecord  `json:"record"`
	Error  string             `json:"error,omitempty"`
}

// Processor fans input records over a fixed worker pool. Grading calls are
// independent, so concurrency is bounded only by the worker count.
type Processor struct {
	grader  *grader.Grader
	workers int
	logger  *zerolog.Logger
}

func NewProcessor(g *grader.Grader, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		grader:  g,
		workers: workers,
		logger:  logger,
	}
}

func (p *Processor) Process(ctx context.Context, records []InputRecord) []OutputRecord {
	jobs := make(chan InputRecord)
	results := make(chan OutputRecord, len(records))

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				results <- p.processOne(ctx, record)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]OutputRecord, 0, len(records))
	for result := range results {
		out = append(out, result)
	}
	return out
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) OutputRecord {
	if record.Error != nil {
		return OutputRecord{Line: record.Line, Error: record.Error.Error()}
	}

	transcript := models.Transcript{
		SessionID: record.Request.SessionID,
		Turns:     record.Request.Turns,
	}

	packet := p.grader.Grade(ctx, transcript, record.Request.PolicySnippets)

	return OutputRecord{
		Line:   record.Line,
		Packet: packet,
		Record: enrich.Enrich(transcript, packet),
	}
}
