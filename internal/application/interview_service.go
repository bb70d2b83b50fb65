package application

import (
	"context"
	"strings"
	"sync"

	"booleana-backend/internal/domain"
	"booleana-backend/internal/ports/input"
	"booleana-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure InterviewService implements the input port
var _ input.InterviewService = (*InterviewService)(nil)

// InterviewService struct - Application service owning the session state
// machine: start, converse, end, get. It resolves sessions through the
// two-tier store (memory cache, durable repository hydration on miss) and
// serializes all mutations per session id with a keyed mutex, so appends
// within one transcript can never interleave or be lost.
type InterviewService struct {
	gateway *ModelGateway
	engine  *EvaluationEngine
	cache   output.SessionCache
	repo    output.SessionRepository

	// one mutex per session id, created on first use, never evicted
	locks sync.Map
}

// NewInterviewService func - Creates new interview service
func NewInterviewService(gateway *ModelGateway, engine *EvaluationEngine, cache output.SessionCache, repo output.SessionRepository) *InterviewService {
	return &InterviewService{
		gateway: gateway,
		engine:  engine,
		cache:   cache,
		repo:    repo,
	}
}

// StartSession func - Use case: create a session, obtain the interviewer's
// opening line and persist the seeded transcript.
func (s *InterviewService) StartSession(ctx context.Context) (*domain.StartSessionResponse, error) {
	sessionID := uuid.NewString()
	session := domain.NewInterviewSession(sessionID, domain.PersonaInstruction)

	// Masked path: a provider failure yields the fallback opening line,
	// the session still starts.
	opening := s.gateway.Converse(ctx, sessionID, session.History)
	if err := session.AppendMessage(domain.MessageRoleInterviewer, opening); err != nil {
		return nil, err
	}

	if err := s.cache.Put(session); err != nil {
		logrus.Errorf("Failed to cache new session, sessionID=%s: %v", sessionID, err)
		return nil, err
	}

	// Durable write happens only after a usable opening line; if it fails
	// no session id is handed to the caller.
	if err := s.repo.Create(ctx, session); err != nil {
		logrus.Errorf("Failed to persist new session, sessionID=%s: %v", sessionID, err)
		return nil, err
	}

	logrus.Infof("Session started, sessionID=%s", sessionID)

	return &domain.StartSessionResponse{
		SessionID: sessionID,
		Message:   opening,
		Status:    session.Status,
	}, nil
}

// Converse func - Use case: one conversational turn. Serialized per
// session id; the candidate append, model call and interviewer append
// happen under the session lock so history order equals arrival order.
func (s *InterviewService) Converse(ctx context.Context, request domain.ConverseRequest) (*domain.ConverseResponse, error) {
	if request.SessionID == "" || strings.TrimSpace(request.Message) == "" {
		return nil, domain.ErrInvalidRequest
	}

	lock := s.lockFor(request.SessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.resolve(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.AppendMessage(domain.MessageRoleCandidate, request.Message); err != nil {
		return nil, err
	}

	// Full history, no windowing: wire-compatible with the original
	// behavior, bounded only by the model-call timeout.
	reply := s.gateway.Converse(ctx, session.ID, session.History)
	if err := session.AppendMessage(domain.MessageRoleInterviewer, reply); err != nil {
		return nil, err
	}

	if err := s.cache.Put(session); err != nil {
		logrus.Errorf("Failed to cache session after turn, sessionID=%s: %v", session.ID, err)
		return nil, err
	}

	if err := s.repo.Update(ctx, session); err != nil {
		logrus.Errorf("Failed to persist session after turn, sessionID=%s: %v", session.ID, err)
		return nil, err
	}

	return &domain.ConverseResponse{
		Message: reply,
		Status:  session.Status,
	}, nil
}

// EndSession func - Use case: finalize the session. Idempotent: ending an
// already completed session returns the stored report without
// re-evaluating. The evaluation itself always yields a well-formed report.
func (s *InterviewService) EndSession(ctx context.Context, sessionID string) (*domain.EndSessionResponse, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}

	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsCompleted() {
		logrus.Infof("End requested for already completed session, sessionID=%s", sessionID)
		return &domain.EndSessionResponse{
			Status:     session.Status,
			Evaluation: session.Evaluation,
		}, nil
	}

	report := s.engine.Evaluate(ctx, sessionID, session.HistoryCopy())

	session.Complete(report)

	if err := s.cache.Put(session); err != nil {
		logrus.Errorf("Failed to cache completed session, sessionID=%s: %v", sessionID, err)
		return nil, err
	}

	if err := s.repo.Finalize(ctx, session); err != nil {
		logrus.Errorf("Failed to persist completed session, sessionID=%s: %v", sessionID, err)
		return nil, err
	}

	logrus.Infof("Session completed, sessionID=%s", sessionID)

	return &domain.EndSessionResponse{
		Status:     session.Status,
		Evaluation: session.Evaluation,
	}, nil
}

// GetSession func - Use case: pure read of the full session projection.
func (s *InterviewService) GetSession(ctx context.Context, sessionID string) (*domain.SessionProjection, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}

	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &domain.SessionProjection{
		SessionID:  session.ID,
		History:    session.HistoryCopy(),
		Status:     session.Status,
		Evaluation: session.Evaluation,
	}, nil
}

// resolve implements the two-tier lookup: memory cache hit, otherwise
// hydrate from the durable repository and insert into the cache. Callers
// hold the session lock, so a cold-cache first access reconstructs the
// session exactly once.
func (s *InterviewService) resolve(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	session, err := s.cache.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session, err = s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(session); err != nil {
		return nil, err
	}

	logrus.Infof("Session hydrated from durable store, sessionID=%s, messages=%d", sessionID, len(session.History))

	return session, nil
}

// lockFor returns the mutex serializing all operations on one session id.
func (s *InterviewService) lockFor(sessionID string) *sync.Mutex {
	value, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return value.(*sync.Mutex)
}
