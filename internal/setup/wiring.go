package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pitchlab/callgrader/internal/aggregator"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/lexicon"
	"github.com/pitchlab/callgrader/internal/llm/bedrock"
	"github.com/pitchlab/callgrader/internal/metrics"
	"github.com/pitchlab/callgrader/internal/objection"
	"github.com/pitchlab/callgrader/internal/rubric"
	"github.com/pitchlab/callgrader/internal/scaler"
	"github.com/rs/zerolog"
)

type Config struct {
	AWSRegion     string
	ClaudeModelID string
}

type Dependencies struct {
	Grader *grader.Grader
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
	}
}

// Wire builds the full grading pipeline: lexicon tables, the four
// deterministic stages, the Bedrock-backed rubric runner, and the
// aggregator, assembled into one Grader.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	lex, err := lexicon.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	g := grader.New(
		metrics.NewExtractor(lex),
		objection.NewDetector(lex),
		objection.NewCaseScorer(lex),
		rubric.NewRunner(llmClient, logger),
		scaler.New(),
		aggregator.New(logger),
		logger,
	)

	return &Dependencies{
		Grader: g,
		Logger: logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
