package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"booleana-backend/internal/domain"
	"booleana-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure SessionRepository implements the output port
var _ output.SessionRepository = (*SessionRepository)(nil)

// SessionRecord struct - durable document for one interview session,
// keyed by session id. History and evaluation are stored as JSON text so
// the document round-trips without schema coupling to the transcript.
type SessionRecord struct {
	ID         string     `gorm:"type:uuid;primary_key"`
	History    string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(16);not null"`
	Evaluation *string    `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"type:timestamp"`
	UpdatedAt  *time.Time `gorm:"type:timestamp"`
	EndedAt    *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *SessionRecord) TableName() string {
	return "interview_sessions"
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&SessionRecord{})
	if err != nil {
		panic(err)
	}
}

// storedMessage is the JSON shape of one history entry: {role, content}.
type storedMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionRepository struct - Output adapter persisting session documents
// in PostgreSQL. Timestamps are set here on each write path.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository func - Creates new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

// Create persists a newly started session with its creation timestamp.
func (r *SessionRepository) Create(ctx context.Context, session *domain.InterviewSession) error {
	history, err := marshalHistory(session.History)
	if err != nil {
		return err
	}

	record := SessionRecord{
		ID:        session.ID,
		History:   history,
		Status:    string(session.Status),
		CreatedAt: time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("%w: create session %s: %v", domain.ErrStoreUnavailable, session.ID, err)
	}
	return nil
}

// Update overwrites the stored transcript and bumps updatedAt.
func (r *SessionRepository) Update(ctx context.Context, session *domain.InterviewSession) error {
	history, err := marshalHistory(session.History)
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"history":    history,
		"updated_at": &now,
	}

	if err := r.applyUpdates(ctx, session.ID, updates); err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// Finalize persists the completed state: transcript, evaluation, status
// and the completion timestamp.
func (r *SessionRepository) Finalize(ctx context.Context, session *domain.InterviewSession) error {
	history, err := marshalHistory(session.History)
	if err != nil {
		return err
	}

	evaluation, err := marshalEvaluation(session.Evaluation)
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"history":    history,
		"evaluation": evaluation,
		"status":     string(session.Status),
		"updated_at": &now,
		"ended_at":   &now,
	}

	if err := r.applyUpdates(ctx, session.ID, updates); err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// FindByID loads the stored document and reconstructs the session,
// role-normalizing each stored record into a transcript message.
func (r *SessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	var record SessionRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		logrus.Errorln(err)
		return nil, fmt.Errorf("%w: find session %s: %v", domain.ErrStoreUnavailable, sessionID, err)
	}

	var stored []storedMessage
	if err := json.Unmarshal([]byte(record.History), &stored); err != nil {
		return nil, fmt.Errorf("%w: corrupt history for session %s: %v", domain.ErrStoreUnavailable, sessionID, err)
	}

	history := make([]domain.Message, 0, len(stored))
	for _, msg := range stored {
		history = append(history, domain.Message{
			Role:    domain.FromChatRole(msg.Role),
			Content: msg.Content,
		})
	}

	status := domain.SessionStatus(record.Status)
	if status == "" {
		status = domain.SessionStatusActive
	}

	session := &domain.InterviewSession{
		ID:      record.ID,
		History: history,
		Status:  status,
	}

	if record.Evaluation != nil && *record.Evaluation != "" {
		var report domain.EvaluationReport
		if err := json.Unmarshal([]byte(*record.Evaluation), &report); err != nil {
			return nil, fmt.Errorf("%w: corrupt evaluation for session %s: %v", domain.ErrStoreUnavailable, sessionID, err)
		}
		session.Evaluation = &report
	}

	return session, nil
}

// applyUpdates runs a keyed update and maps a missing row to not-found.
func (r *SessionRepository) applyUpdates(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&SessionRecord{}).Where("id = ?", sessionID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("%w: update session %s: %v", domain.ErrStoreUnavailable, sessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func marshalHistory(history []domain.Message) (string, error) {
	stored := make([]storedMessage, 0, len(history))
	for _, msg := range history {
		stored = append(stored, storedMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("%w: marshal history: %v", domain.ErrStoreUnavailable, err)
	}
	return string(data), nil
}

func marshalEvaluation(report *domain.EvaluationReport) (*string, error) {
	if report == nil {
		return nil, nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal evaluation: %v", domain.ErrStoreUnavailable, err)
	}
	text := string(data)
	return &text, nil
}
