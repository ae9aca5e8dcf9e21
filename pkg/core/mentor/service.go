// ============================================================================
// MENTOR SERVICE - AI feedback collaborator for the academy missions
// ============================================================================

package mentor

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"adm_academy/pkg/core/agent"
	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/core/indicators"
	"adm_academy/pkg/core/utils"
	"adm_academy/pkg/models"
)

const agentName = "mentor"

// Response wraps a mentor reply. RequestID lets clients discard responses
// that arrive after the user has already navigated away. Degraded is set
// when the markdown is a fixed fallback message instead of model output.
type Response struct {
	RequestID string `json:"request_id"`
	Markdown  string `json:"markdown"`
	Degraded  bool   `json:"degraded"`
}

// MissionScore is one entry of the AI performance summary.
type MissionScore struct {
	MissionID int    `json:"mission_id"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

// Summary is the structured performance review generated after the
// final report is unlocked.
type Summary struct {
	OverallComment string         `json:"overall_comment"`
	Missions       []MissionScore `json:"missions"`
}

// Service generates pedagogical feedback through the configured LLM
// provider. Every public method degrades to a fixed pt-BR message on
// failure; callers never see raw provider errors.
type Service struct {
	manager *agent.Manager
	log     zerolog.Logger
}

func NewService(manager *agent.Manager, log zerolog.Logger) *Service {
	return &Service{manager: manager, log: log.With().Str("component", "mentor").Logger()}
}

// ExplainIndicator produces a 3-paragraph senior-analyst reading of one
// calculated indicator for one company.
func (s *Service) ExplainIndicator(ctx context.Context, company models.Company, ind indicators.Indicator, value float64) Response {
	system, user := indicatorPrompt(company, ind, value)
	return s.generate(ctx, "indicator", system, user, MsgIndicatorFailed)
}

// EvaluateDiagnosis reviews the student's written diagnosis of the
// InovaTech turnaround case.
func (s *Service) EvaluateDiagnosis(ctx context.Context, userDiagnosis string) Response {
	system, user := diagnosisPrompt(catalog.InovaTechCaseText, userDiagnosis)
	return s.generate(ctx, "diagnosis", system, user, MsgDiagnosisFailed)
}

// EvaluateAllocation reviews the investment rationale behind the final
// portfolio allocation.
func (s *Service) EvaluateAllocation(ctx context.Context, chosen, rationale string) Response {
	system, user := allocationPrompt(catalog.Companies(), chosen, rationale)
	return s.generate(ctx, "allocation", system, user, MsgAllocationFailed)
}

// SummarizePerformance asks the model for a structured score sheet over
// all submitted answers. The model reply is decoded leniently since
// LLMs routinely emit slightly malformed JSON.
func (s *Service) SummarizePerformance(ctx context.Context, answers map[int]string) (Summary, Response) {
	reqID := uuid.New().String()
	system, user := summaryPrompt(catalog.Missions(), answers)

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	raw, err := s.manager.ExecutePrompt(ctx, agentName, user, system, options)
	if err != nil {
		s.log.Warn().Err(err).Str("request_id", reqID).Msg("performance summary failed")
		return Summary{}, Response{RequestID: reqID, Markdown: s.degradeMessage(err, MsgSummaryFailed), Degraded: true}
	}

	var summary Summary
	if err := utils.DecodeLenientJSON(raw, &summary); err != nil {
		s.log.Warn().Err(err).Str("request_id", reqID).Msg("performance summary returned undecodable JSON")
		return Summary{}, Response{RequestID: reqID, Markdown: MsgSummaryFailed, Degraded: true}
	}
	return summary, Response{RequestID: reqID, Markdown: summary.OverallComment}
}

func (s *Service) generate(ctx context.Context, kind, system, user, fallback string) Response {
	reqID := uuid.New().String()
	raw, err := s.manager.ExecutePrompt(ctx, agentName, user, system, nil)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Str("request_id", reqID).Msg("mentor generation failed")
		return Response{RequestID: reqID, Markdown: s.degradeMessage(err, fallback), Degraded: true}
	}
	return Response{RequestID: reqID, Markdown: utils.CleanMarkdown(raw)}
}

// degradeMessage distinguishes a missing API key from a transient
// provider failure so the UI can tell the user which one happened.
func (s *Service) degradeMessage(err error, fallback string) string {
	if strings.Contains(err.Error(), "not set") {
		return MsgUnavailable
	}
	return fallback
}
