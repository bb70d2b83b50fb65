package http

import (
	"booleana-backend/internal/domain"
	"booleana-backend/internal/ports/input"
	"booleana-backend/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// InterviewHandler struct - Primary/Driving adapter for HTTP
type InterviewHandler struct {
	srv       input.InterviewService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.InterviewService, db *gorm.DB) *InterviewHandler {
	return &InterviewHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *InterviewHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db != nil {
		sqlDB, err := hdl.db.DB()
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal server error"})
		}

		if err := sqlDB.Ping(); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal server error"})
		}
	}
	return c.Status(fiber.StatusOK).JSON(StatusResponse{Status: "ok", Service: "Booleana AI"})
}

// Status func
/* liveness probe */
// Status godoc
// @Summary Service status
// @Description Liveness probe
// @Tags INTERVIEW
// @Success 200 {object} StatusResponse
// @Router /status [get]
// @Produce json
func (hdl *InterviewHandler) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(StatusResponse{
		Status:  "Backend is running",
		Service: "Booleana AI",
	})
}

// StartSession func
/* start interview session */
// StartSession godoc
// @Summary Start session
// @Description Creates an interview session and returns the interviewer's opening message
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} StartSessionResponse
// @Router /session [post]
// @Produce json
func (hdl *InterviewHandler) StartSession(c *fiber.Ctx) error {
	response, err := hdl.srv.StartSession(c.Context())
	if err != nil {
		logrus.Errorf("Error starting session: %v", err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(StartSessionResponse{
		SessionID: response.SessionID,
		Message:   response.Message,
		Status:    string(response.Status),
	})
}

// HandleMessage func
/* one conversational turn */
// HandleMessage godoc
// @Summary Send candidate message
// @Description Appends a candidate message and returns the interviewer's reply
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} InterviewResponse
// @Router /interview [post]
// @Produce json
// @param HandleMessage body InterviewRequest true "HandleMessage"
func (hdl *InterviewHandler) HandleMessage(c *fiber.Ctx) error {
	var request InterviewRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return writeError(c, domain.ErrInvalidRequest)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, domain.ErrInvalidRequest)
	}

	response, err := hdl.srv.Converse(c.Context(), domain.ConverseRequest{
		SessionID: request.SessionID,
		Message:   request.Message,
	})
	if err != nil {
		logrus.Errorf("Error handling message, sessionID=%s: %v", request.SessionID, err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(InterviewResponse{
		Message: response.Message,
		Status:  string(response.Status),
	})
}

// EndSession func
/* finalize interview session */
// EndSession godoc
// @Summary End session
// @Description Finalizes the session and returns the structured evaluation report
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} EndSessionResponse
// @Router /session/{id}/end [post]
// @Produce json
// @param id path string true "session id"
func (hdl *InterviewHandler) EndSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return writeError(c, domain.ErrInvalidRequest)
	}

	response, err := hdl.srv.EndSession(c.Context(), sessionID)
	if err != nil {
		logrus.Errorf("Error ending session, sessionID=%s: %v", sessionID, err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(EndSessionResponse{
		Status:     string(response.Status),
		Evaluation: response.Evaluation,
	})
}

// GetSession func
/* full session projection */
// GetSession godoc
// @Summary Get session
// @Description Returns the transcript, status and evaluation of a session
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} SessionResponse
// @Router /session/{id} [get]
// @Produce json
// @param id path string true "session id"
func (hdl *InterviewHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return writeError(c, domain.ErrInvalidRequest)
	}

	response, err := hdl.srv.GetSession(c.Context(), sessionID)
	if err != nil {
		logrus.Errorf("Error getting session, sessionID=%s: %v", sessionID, err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(SessionResponse{
		SessionID:  response.SessionID,
		History:    response.History,
		Status:     string(response.Status),
		Evaluation: response.Evaluation,
	})
}
