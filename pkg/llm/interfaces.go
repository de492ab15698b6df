// Package llm provides clients for the chat-completion endpoints used by the
// extraction pipeline.
package llm

import (
	"context"
)

// Client defines the interface for chat-completion calls.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// GenerateResponse generates a chat completion response.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string
}
