package rubric

import (
	"context"
	"time"

	"github.com/pitchlab/callgrader/internal/llm"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/rs/zerolog"
)

const (
	defaultMaxTokens = 1024
	defaultTimeout   = 45 * time.Second
)

// Runner executes the one asynchronous stage of the pipeline: build the
// prompt, call the injected LLM client, parse defensively. A nil result
// means the LLM was unreachable; the caller scores that component as zero.
type Runner struct {
	builder   *PromptBuilder
	client    llm.LLMClient
	maxTokens int
	timeout   time.Duration
	logger    *zerolog.Logger
}

func NewRunner(client llm.LLMClient, logger *zerolog.Logger) *Runner {
	return &Runner{
		builder:   NewPromptBuilder(),
		client:    client,
		maxTokens: defaultMaxTokens,
		timeout:   defaultTimeout,
		logger:    logger,
	}
}

// Run grades the transcript through the LLM rubric. Temperature is pinned to
// zero so repeated runs stay comparable.
func (r *Runner) Run(ctx context.Context, t models.Transcript, spans []models.ObjectionSpan, policy []string) *models.RubricOutput {
	prompt, err := r.builder.Build(t, spans, policy)
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", t.SessionID).Msg("failed to build rubric prompt")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   r.maxTokens,
		Temperature: 0.0,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", t.SessionID).Msg("rubric LLM call failed")
		return nil
	}

	out, err := Parse(resp.Content)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("session_id", t.SessionID).
			Msg("rubric reply was not valid JSON, falling back to zeroed rubric")
	}

	r.logger.Info().
		Str("session_id", t.SessionID).
		Int("discovery", out.Discovery).
		Int("objection_overall", out.ObjectionHandling.Overall).
		Int("compliance", out.Compliance.Score).
		Msg("rubric stage complete")

	return &out
}
