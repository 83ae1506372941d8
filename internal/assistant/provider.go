package assistant

import "context"

// Request carries one chat turn to a provider.
type Request struct {
	Model       string
	Instruction string
	UserMessage string
	Temperature float64
}

// Provider defines the interface for generative-language backends.
type Provider interface {
	// Complete sends a single-turn completion and returns the reply text.
	Complete(ctx context.Context, req Request) (string, error)
	// Name returns the name of this provider.
	Name() string
}
