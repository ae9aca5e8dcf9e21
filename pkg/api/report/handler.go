// ============================================================================
// REPORT HANDLER - final learning report export
// ============================================================================

package report

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"adm_academy/pkg/core/mentor"
	"adm_academy/pkg/core/progress"
	"adm_academy/pkg/core/report"
	"adm_academy/pkg/models"
)

// StateSource provides the current session state.
type StateSource interface {
	State() models.ProgressState
}

// Handler exports the final report, as JSON or as a standalone HTML page.
// The export is only available once every mission is completed.
type Handler struct {
	source  StateSource
	service *mentor.Service
	log     zerolog.Logger
}

func NewHandler(source StateSource, service *mentor.Service, log zerolog.Logger) *Handler {
	return &Handler{
		source:  source,
		service: service,
		log:     log.With().Str("component", "report").Logger(),
	}
}

// HandleReport serves GET /api/report. With summary=true the AI score sheet
// is attached when the mentor can produce one; a degraded mentor never
// blocks the export.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.build(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// HandleReportHTML serves GET /api/report/html.
func (h *Handler) HandleReportHTML(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.build(w, r)
	if !ok {
		return
	}
	html, err := rep.RenderHTML()
	if err != nil {
		h.log.Error().Err(err).Msg("report rendering failed")
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) (report.Report, bool) {
	state := h.source.State()
	if !progress.AllCompleted(state) {
		http.Error(w, "Report requires all missions completed", http.StatusConflict)
		return report.Report{}, false
	}

	rep := report.Build(state)
	if r.URL.Query().Get("summary") == "true" {
		summary, resp := h.service.SummarizePerformance(r.Context(), state.Answers)
		if resp.Degraded {
			h.log.Warn().Str("request_id", resp.RequestID).Msg("report summary degraded, exporting without it")
		} else {
			rep.Summary = &summary
		}
	}
	return rep, true
}
