package llm

import "context"

// Completion is one LLM response plus the token usage it consumed. Token
// counts are zero when the vendor did not report usage.
type Completion struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Client is a single-prompt completion client for one LLM vendor.
type Client interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
	Provider() string
	Model() string
}
