package output

import (
	"context"

	"booleana-backend/internal/domain"
)

// SessionRepository interface - Output port
// Durable document store: one document per session, keyed by session id.
// The store layer sets createdAt/updatedAt/endedAt on each write path.
type SessionRepository interface {
	// Create persists a newly started session document.
	Create(ctx context.Context, session *domain.InterviewSession) error

	// Update overwrites the stored transcript after a conversational turn.
	Update(ctx context.Context, session *domain.InterviewSession) error

	// Finalize persists the completed state: transcript, evaluation,
	// status and the completion timestamp.
	Finalize(ctx context.Context, session *domain.InterviewSession) error

	// FindByID loads the stored session document.
	// Returns domain.ErrSessionNotFound when no document exists for the id.
	FindByID(ctx context.Context, sessionID string) (*domain.InterviewSession, error)
}
