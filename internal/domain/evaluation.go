package domain

// EvaluationFallbackSummary is the summary attached to the zero-valued
// report produced when the evaluation call or its parsing fails.
const EvaluationFallbackSummary = "Error en evaluación"

// EvaluationReport struct - structured post-interview scoring artifact.
// Scores are in [1,5]; the zero-valued report is the degraded fallback.
type EvaluationReport struct {
	TechnicalScore      float64  `json:"technicalScore"`
	CommunicationScore  float64  `json:"communicationScore"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Keywords            []string `json:"keywords"`
	Summary             string   `json:"summary"`
}

// NewFallbackEvaluationReport returns the neutral zero-valued report.
// Session termination must never block on evaluation, so any evaluation
// failure degrades to this well-formed shape instead of an error.
func NewFallbackEvaluationReport() *EvaluationReport {
	return &EvaluationReport{
		TechnicalScore:      0,
		CommunicationScore:  0,
		Strengths:           []string{},
		AreasForImprovement: []string{},
		Keywords:            []string{},
		Summary:             EvaluationFallbackSummary,
	}
}
