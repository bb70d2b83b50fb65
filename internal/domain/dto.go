package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// StartSessionResponse struct - Domain response DTO for session creation
	StartSessionResponse struct {
		SessionID string
		Message   string
		Status    SessionStatus
	}

	// ConverseRequest struct - Domain request DTO for one conversational turn
	ConverseRequest struct {
		SessionID string
		Message   string
	}

	// ConverseResponse struct - Domain response DTO for one conversational turn
	ConverseResponse struct {
		Message string
		Status  SessionStatus
	}

	// EndSessionResponse struct - Domain response DTO for session finalization
	EndSessionResponse struct {
		Status     SessionStatus
		Evaluation *EvaluationReport
	}

	// SessionProjection struct - Domain read-only projection of a full session
	SessionProjection struct {
		SessionID  string
		History    []Message
		Status     SessionStatus
		Evaluation *EvaluationReport
	}
)
