package output

import "booleana-backend/internal/domain"

// SessionCache interface - Output port
// Authoritative in-memory tier of the two-tier session store. Entries live
// for the process lifetime; durability is a separate repository concern.
// Implementations must be safe for concurrent access.
type SessionCache interface {
	// Get retrieves a cached session by id.
	// Returns nil (and no error) when the id is not cached; a miss is not
	// an error, the caller falls through to the durable repository.
	Get(sessionID string) (*domain.InterviewSession, error)

	// Put unconditionally overwrites the in-memory entry for the session id.
	// The cache is not responsible for durable persistence.
	Put(session *domain.InterviewSession) error
}
