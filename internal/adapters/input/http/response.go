package http

import (
	"errors"

	"booleana-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	// StartSessionResponse struct - HTTP response DTO for session creation
	StartSessionResponse struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Status    string `json:"status"`
	}

	// InterviewResponse struct - HTTP response DTO for one conversational turn
	InterviewResponse struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}

	// EndSessionResponse struct - HTTP response DTO for session finalization
	EndSessionResponse struct {
		Status     string                   `json:"status"`
		Evaluation *domain.EvaluationReport `json:"evaluation"`
	}

	// SessionResponse struct - HTTP response DTO for the full session projection
	SessionResponse struct {
		SessionID  string                   `json:"sessionId"`
		History    []domain.Message         `json:"history"`
		Status     string                   `json:"status"`
		Evaluation *domain.EvaluationReport `json:"evaluation,omitempty"`
	}

	// StatusResponse struct - HTTP response DTO for the liveness probe
	StatusResponse struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}

	// ErrorResponse struct - HTTP error body with a short message
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

// errorStatusCode maps domain error sentinels onto the HTTP contract:
// missing fields 400, unknown session 404, completed session 409,
// everything else 500.
func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrSessionCompleted):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorMessage keeps outbound error bodies short and free of internals.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "sessionId and message are required"
	case errors.Is(err, domain.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, domain.ErrSessionCompleted):
		return "Session already completed"
	default:
		return "Internal server error"
	}
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatusCode(err)).JSON(ErrorResponse{Error: errorMessage(err)})
}
