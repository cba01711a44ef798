package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits batch results either as one JSON object per line or as an
// aggregate summary written on Close.
type Writer struct {
	dest    io.Writer
	format  string
	logger  *zerolog.Logger
	results []OutputRecord
}

func NewWriter(dest io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Writer{
		dest:   dest,
		format: format,
		logger: logger,
	}, nil
}

func (w *Writer) Write(record OutputRecord) error {
	if w.format == FormatSummary {
		w.results = append(w.results, record)
		return nil
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if _, err := fmt.Fprintln(w.dest, string(body)); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	summary := buildSummary(w.results)
	body, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if _, err := fmt.Fprintln(w.dest, string(body)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

type Summary struct {
	Total    int            `json:"total"`
	Errors   int            `json:"errors"`
	AvgFinal float64        `json:"avg_final"`
	Bands    map[string]int `json:"bands"`
}

func buildSummary(results []OutputRecord) Summary {
	summary := Summary{Bands: map[string]int{}}

	graded := 0
	totalFinal := 0
	for _, r := range results {
		summary.Total++
		if r.Error != "" {
			summary.Errors++
			continue
		}
		graded++
		totalFinal += r.Packet.Scores.Final
		summary.Bands[string(r.Packet.Scores.Band)]++
	}

	if graded > 0 {
		summary.AvgFinal = float64(totalFinal) / float64(graded)
	}
	return summary
}
