package http

type (
	// InterviewRequest struct - HTTP request DTO for one conversational turn
	InterviewRequest struct {
		SessionID string `json:"sessionId" validate:"required"`
		Message   string `json:"message" validate:"required"`
	}
)
