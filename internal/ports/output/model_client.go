package output

import (
	"context"

	"booleana-backend/internal/domain"
)

// ModelClient interface - Output port
// Defines what the application needs from an OpenAI-compatible chat
// completions API: an ordered message list in, one generated message out.
type ModelClient interface {
	// ChatCompletion sends a non-streaming chat completion request.
	// It accepts a ChatCompletionRequest containing messages and optional
	// generation parameters, and returns a ChatCompletionResponse with the
	// generated content and usage statistics.
	// Returns an error if the request fails or the response cannot be parsed.
	ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)
}
