package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a prompt and returns the generated completion
	Complete(ctx context.Context, prompt string) (*Result, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Result represents a normalized LLM completion result
type Result struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
