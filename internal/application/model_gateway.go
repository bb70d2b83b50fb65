package application

import (
	"context"
	"fmt"

	"booleana-backend/internal/domain"
	"booleana-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Generation parameters of the persona contract. Conversation runs warm
// with a short reply budget; evaluation runs cold with room for the full
// JSON report. The stop markers keep the model from fabricating the next
// candidate turn.
const (
	conversationTemperature = 0.7
	conversationMaxTokens   = 256

	evaluationTemperature = 0.2
	evaluationMaxTokens   = 512
)

var conversationStop = []string{"\nCandidate:", "\nSeeker:"}

// ModelGateway struct - wraps the model provider with the persona-specific
// generation parameters and collapses every provider failure to a single
// domain.ErrModelUnavailable classification.
type ModelGateway struct {
	client output.ModelClient
}

// NewModelGateway func - Creates new model gateway
func NewModelGateway(client output.ModelClient) *ModelGateway {
	return &ModelGateway{
		client: client,
	}
}

// Converse drives one interviewer turn over the full transcript.
// The conversational path is masked: on any provider failure a fixed
// user-safe fallback message is returned instead of an error, so the
// candidate-facing turn never fails outright.
func (g *ModelGateway) Converse(ctx context.Context, sessionID string, history []domain.Message) string {
	temperature := conversationTemperature
	maxTokens := conversationMaxTokens

	request := domain.ChatCompletionRequest{
		Messages:    toChatMessages(history),
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Stop:        conversationStop,
	}

	content, err := g.complete(ctx, request)
	if err != nil {
		logrus.Errorf("Model call failed for conversation turn, sessionID=%s, substituting fallback: %v", sessionID, err)
		return domain.ConversationFallbackMessage
	}

	return content
}

// Evaluate runs the low-temperature evaluation pass over an already
// role-mapped message list. Unlike Converse, failures propagate so the
// evaluation engine can apply its own fallback.
func (g *ModelGateway) Evaluate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	temperature := evaluationTemperature
	maxTokens := evaluationMaxTokens

	request := domain.ChatCompletionRequest{
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	return g.complete(ctx, request)
}

// complete performs the provider call and collapses transport errors,
// malformed responses and empty content into domain.ErrModelUnavailable.
func (g *ModelGateway) complete(ctx context.Context, request domain.ChatCompletionRequest) (string, error) {
	response, err := g.client.ChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	if response == nil || response.Content == "" {
		return "", fmt.Errorf("%w: empty completion content", domain.ErrModelUnavailable)
	}
	return response.Content, nil
}

// toChatMessages maps transcript roles onto the wire role set; records
// with any other role tag are silently dropped.
func toChatMessages(history []domain.Message) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(history))
	for _, msg := range history {
		chatMsg, ok := msg.ToChatMessage()
		if !ok {
			continue
		}
		messages = append(messages, chatMsg)
	}
	return messages
}
