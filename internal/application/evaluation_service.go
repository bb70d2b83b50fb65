package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"booleana-backend/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxReportLabels = 3

// EvaluationEngine struct - converts a completed transcript into a
// structured score report through a second, differently-instructed model
// pass. The contract is "always succeeds": any failure in the call or in
// parsing degrades to the neutral zero-valued report so evaluation never
// blocks session termination.
type EvaluationEngine struct {
	gateway *ModelGateway
}

// NewEvaluationEngine func - Creates new evaluation engine
func NewEvaluationEngine(gateway *ModelGateway) *EvaluationEngine {
	return &EvaluationEngine{
		gateway: gateway,
	}
}

// Evaluate scores the transcript. The returned report is always
// well-formed; a degraded result is logged distinctly so telemetry can
// tell it apart from a genuinely low score.
func (e *EvaluationEngine) Evaluate(ctx context.Context, sessionID string, history []domain.Message) *domain.EvaluationReport {
	messages := toChatMessages(history)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.ChatRoleSystem,
		Content: domain.EvaluationRubricInstruction,
	})

	content, err := e.gateway.Evaluate(ctx, messages)
	if err != nil {
		logrus.Errorf("Evaluation degraded to fallback report, sessionID=%s: %v", sessionID, err)
		return domain.NewFallbackEvaluationReport()
	}

	report, err := parseEvaluationReport(content)
	if err != nil {
		logrus.Errorf("Evaluation degraded to fallback report, sessionID=%s: %v", sessionID, err)
		return domain.NewFallbackEvaluationReport()
	}

	logrus.Infof("Evaluation completed, sessionID=%s, technical=%.1f, communication=%.1f", sessionID, report.TechnicalScore, report.CommunicationScore)

	return report
}

// parseEvaluationReport parses the model output strictly as the report
// shape: valid JSON, both scores present and inside [1,5].
func parseEvaluationReport(content string) (*domain.EvaluationReport, error) {
	var report domain.EvaluationReport
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &report); err != nil {
		return nil, fmt.Errorf("malformed evaluation JSON: %w", err)
	}

	if report.TechnicalScore < 1 || report.TechnicalScore > 5 {
		return nil, fmt.Errorf("technicalScore %.2f outside [1,5]", report.TechnicalScore)
	}
	if report.CommunicationScore < 1 || report.CommunicationScore > 5 {
		return nil, fmt.Errorf("communicationScore %.2f outside [1,5]", report.CommunicationScore)
	}

	report.Strengths = clampLabels(report.Strengths)
	report.AreasForImprovement = clampLabels(report.AreasForImprovement)
	if report.Keywords == nil {
		report.Keywords = []string{}
	}

	return &report, nil
}

// clampLabels caps a label list at maxReportLabels and never returns nil.
func clampLabels(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	if len(labels) > maxReportLabels {
		return labels[:maxReportLabels]
	}
	return labels
}

// stripCodeFence unwraps a ```json ... ``` fenced block if the model
// wrapped its report in one.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
