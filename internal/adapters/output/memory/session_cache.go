package memory

import (
	"sync"

	"booleana-backend/internal/domain"
	"booleana-backend/internal/ports/output"
)

// Compile-time check to ensure SessionCache implements the output port
var _ output.SessionCache = (*SessionCache)(nil)

// SessionCache struct - Output adapter for the in-memory session tier.
// Uses sync.Map for thread-safe concurrent access. Entries live for the
// process lifetime: there is no eviction, which is acceptable only while
// session volume stays small.
type SessionCache struct {
	sessions sync.Map
}

// NewSessionCache creates a new in-memory session cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{}
}

// Get retrieves a session by id. A miss returns nil without error so the
// caller can fall through to durable storage.
func (c *SessionCache) Get(sessionID string) (*domain.InterviewSession, error) {
	value, exists := c.sessions.Load(sessionID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.InterviewSession)
	if !ok {
		// If data is malformed, delete and treat as a miss
		c.sessions.Delete(sessionID)
		return nil, nil
	}

	return session, nil
}

// Put unconditionally overwrites the entry for the session id.
func (c *SessionCache) Put(session *domain.InterviewSession) error {
	c.sessions.Store(session.ID, session)
	return nil
}
