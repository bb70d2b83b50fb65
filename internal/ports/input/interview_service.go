package input

import (
	"context"

	"booleana-backend/internal/domain"
)

// InterviewService interface - Input port (use case)
// Defines the session lifecycle operations the application exposes.
type InterviewService interface {
	// StartSession creates a new session seeded with the persona instruction,
	// obtains the interviewer's opening line and persists the session.
	StartSession(ctx context.Context) (*domain.StartSessionResponse, error)

	// Converse appends the candidate message, drives one interviewer turn
	// through the model and persists the grown transcript. Calls for the
	// same session id are serialized to preserve append ordering.
	Converse(ctx context.Context, request domain.ConverseRequest) (*domain.ConverseResponse, error)

	// EndSession finalizes the session: evaluates the transcript, performs
	// the one-way active -> completed transition and persists the result.
	// Ending an already completed session returns the stored report.
	EndSession(ctx context.Context, sessionID string) (*domain.EndSessionResponse, error)

	// GetSession returns the full session projection without mutating it.
	GetSession(ctx context.Context, sessionID string) (*domain.SessionProjection, error)
}
