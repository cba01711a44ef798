package llm

import (
	"context"
)

// LLMClient is the grader's only external boundary. The scoring pipeline
// never does network I/O itself; it receives one of these injected, which
// also makes the rubric stage mockable in tests.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
