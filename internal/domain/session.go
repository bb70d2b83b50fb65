package domain

// SessionStatus type
type SessionStatus string

const (
	// SessionStatusActive const - session accepts new conversation turns
	SessionStatusActive SessionStatus = "active"
	// SessionStatusCompleted const - session is finalized, history is frozen
	SessionStatusCompleted SessionStatus = "completed"
)

// MessageRole type - role tag of a transcript message
type MessageRole string

const (
	// MessageRoleSystem const - the persona instruction seeded at creation
	MessageRoleSystem MessageRole = "system"
	// MessageRoleInterviewer const - messages generated by the interviewer persona
	MessageRoleInterviewer MessageRole = "interviewer"
	// MessageRoleCandidate const - messages sent by the candidate
	MessageRoleCandidate MessageRole = "candidate"
)

// Message represents one entry of an interview transcript.
// Messages are immutable once appended; ordering is chronological and must
// never be reordered or deduplicated.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// InterviewSession is the aggregate for one interview: identifier,
// ordered transcript, lifecycle status and the optional final report.
type InterviewSession struct {
	ID         string
	History    []Message
	Status     SessionStatus
	Evaluation *EvaluationReport
}

// NewInterviewSession creates an active session whose transcript starts
// with the persona instruction. History[0] is never altered afterwards.
func NewInterviewSession(id, personaInstruction string) *InterviewSession {
	return &InterviewSession{
		ID: id,
		History: []Message{
			{Role: MessageRoleSystem, Content: personaInstruction},
		},
		Status: SessionStatusActive,
	}
}

// AppendMessage adds a message at the end of the transcript.
// Appends are rejected once the session has been completed.
func (s *InterviewSession) AppendMessage(role MessageRole, content string) error {
	if s.Status == SessionStatusCompleted {
		return ErrSessionCompleted
	}
	s.History = append(s.History, Message{Role: role, Content: content})
	return nil
}

// Complete transitions the session to completed and attaches the report.
// The transition is one-way: a completed session stays completed and its
// evaluation stays fixed.
func (s *InterviewSession) Complete(report *EvaluationReport) {
	if s.Status == SessionStatusCompleted {
		return
	}
	s.Status = SessionStatusCompleted
	s.Evaluation = report
}

// IsCompleted reports whether the session has been finalized.
func (s *InterviewSession) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// HistoryCopy returns a copy of the transcript to prevent external modification.
func (s *InterviewSession) HistoryCopy() []Message {
	if len(s.History) == 0 {
		return []Message{}
	}
	history := make([]Message, len(s.History))
	copy(history, s.History)
	return history
}
