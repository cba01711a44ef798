package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pitchlab/callgrader/internal/models"
	"github.com/rs/zerolog"
)

// InputRecord is one JSONL line from the input file. A bad line carries its
// parse error instead of stopping the run.
type InputRecord struct {
	Line    int
	Request models.GradeRequest
	Error   error
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams parsed records over a channel, one per non-empty line.
// The channel closes when the input is exhausted or the context is done.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

		line := 0
		for scanner.Scan() {
			line++

			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			record := InputRecord{Line: line}
			if err := json.Unmarshal([]byte(text), &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: %w", line, err)
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed to read input")
		}
	}()

	return out
}
