package consultant

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TokenUsage reports token counts for one completion.
type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// LLMRequest carries the system instruction, the prior conversation turns
// in order, and the new user message.
type LLMRequest struct {
	System      string
	History     []Message
	UserMessage string
	MaxTokens   int32
	Temperature float32
}

// LLMResponse is the model's reply.
type LLMResponse struct {
	Text       string
	StopReason string
	Usage      TokenUsage
}

// LLMClient abstracts the generative-text backend. The gateway treats the
// backend as opaque and unversioned.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}

// DisabledLLMClient always fails with the configured reason. It stands in
// for a real backend when no API key is configured, so callers still get
// the normal fallback behavior.
type DisabledLLMClient struct {
	reason error
}

// NewDisabledClient creates an LLM client that fails every completion.
func NewDisabledClient(reason error) *DisabledLLMClient {
	return &DisabledLLMClient{reason: reason}
}

// Complete always returns the configured error.
func (c *DisabledLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	return LLMResponse{}, c.reason
}
