// ============================================================================
// MENTOR HANDLER - AI feedback endpoints
// ============================================================================

package mentor

import (
	"encoding/json"
	"net/http"
	"strings"

	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/core/indicators"
	"adm_academy/pkg/core/mentor"
	"adm_academy/pkg/models"
)

// StateSource provides the current session state, for the summary endpoint.
type StateSource interface {
	State() models.ProgressState
}

type IndicatorRequest struct {
	Company   string `json:"company"`
	Indicator string `json:"indicator"`
}

type DiagnosisRequest struct {
	Diagnosis string `json:"diagnosis"`
}

type AllocationRequest struct {
	Chosen    string `json:"chosen"`
	Rationale string `json:"rationale"`
}

type SummaryResponse struct {
	mentor.Response
	Summary *mentor.Summary `json:"summary,omitempty"`
}

// Handler exposes the mentor service. Responses are always 200 with a
// markdown body; degraded replies carry the fixed fallback message.
type Handler struct {
	service *mentor.Service
	source  StateSource
}

func NewHandler(service *mentor.Service, source StateSource) *Handler {
	return &Handler{service: service, source: source}
}

// HandleIndicator serves POST /api/mentor/indicator.
func (h *Handler) HandleIndicator(w http.ResponseWriter, r *http.Request) {
	var req IndicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	company, ok := catalog.CompanyByName(req.Company)
	if !ok {
		http.Error(w, "Company not found", http.StatusNotFound)
		return
	}
	ind, ok := indicators.ByKey(req.Indicator)
	if !ok {
		http.Error(w, "Indicator not found", http.StatusNotFound)
		return
	}
	value := ind.Calculate(company.Data)
	writeJSON(w, h.service.ExplainIndicator(r.Context(), company, ind, value))
}

// HandleDiagnosis serves POST /api/mentor/diagnosis.
func (h *Handler) HandleDiagnosis(w http.ResponseWriter, r *http.Request) {
	var req DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		http.Error(w, "Diagnosis is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.service.EvaluateDiagnosis(r.Context(), req.Diagnosis))
}

// HandleAllocation serves POST /api/mentor/allocation.
func (h *Handler) HandleAllocation(w http.ResponseWriter, r *http.Request) {
	var req AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Chosen == "" || strings.TrimSpace(req.Rationale) == "" {
		http.Error(w, "Chosen company and rationale are required", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.service.EvaluateAllocation(r.Context(), req.Chosen, req.Rationale))
}

// HandleSummary serves POST /api/mentor/summary, scoring the answers of the
// current session.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	state := h.source.State()
	if len(state.Answers) == 0 {
		http.Error(w, "No answers submitted yet", http.StatusConflict)
		return
	}
	summary, resp := h.service.SummarizePerformance(r.Context(), state.Answers)
	out := SummaryResponse{Response: resp}
	if !resp.Degraded {
		out.Summary = &summary
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
