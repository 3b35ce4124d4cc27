package llm

import (
	"context"
	"errors"
)

// Client abstracts the language-model capability. Complete sends a single-turn
// prompt and returns the raw text response with no structural guarantee.
type Client interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	_ = ctx
	_ = prompt
	_ = temperature
	return "", ErrNotConfigured
}
