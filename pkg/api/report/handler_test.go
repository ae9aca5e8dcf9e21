package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"adm_academy/pkg/core/agent"
	"adm_academy/pkg/core/mentor"
	corereport "adm_academy/pkg/core/report"
	"adm_academy/pkg/models"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) AdaptInstructions(raw string) string { return raw }

type stubState struct {
	state models.ProgressState
}

func (s *stubState) State() models.ProgressState { return s.state }

func completedSession() models.ProgressState {
	state := models.NewProgressState()
	state.View = models.ViewDashboard
	for id := 1; id <= 4; id++ {
		state.Completed[id] = true
		state.Answers[id] = "resposta da missão"
	}
	return state
}

func newTestHandler(state models.ProgressState, stub *stubProvider) *Handler {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "stub"})
	mgr.RegisterProvider("stub", stub)
	svc := mentor.NewService(mgr, zerolog.Nop())
	return NewHandler(&stubState{state: state}, svc, zerolog.Nop())
}

func TestReportRequiresCompletion(t *testing.T) {
	h := newTestHandler(models.NewProgressState(), &stubProvider{})

	w := httptest.NewRecorder()
	h.HandleReport(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 before completion, got %d", w.Code)
	}
}

func TestReportJSON(t *testing.T) {
	h := newTestHandler(completedSession(), &stubProvider{})

	w := httptest.NewRecorder()
	h.HandleReport(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var rep corereport.Report
	json.Unmarshal(w.Body.Bytes(), &rep)
	if len(rep.Entries) != 4 || rep.Summary != nil {
		t.Errorf("Expected 4 entries without summary, got %+v", rep)
	}
}

func TestReportWithSummary(t *testing.T) {
	stub := &stubProvider{reply: `{"overall_comment": "Excelente", "missions": []}`}
	h := newTestHandler(completedSession(), stub)

	w := httptest.NewRecorder()
	h.HandleReport(w, httptest.NewRequest(http.MethodGet, "/api/report?summary=true", nil))

	var rep corereport.Report
	json.Unmarshal(w.Body.Bytes(), &rep)
	if rep.Summary == nil || rep.Summary.OverallComment != "Excelente" {
		t.Errorf("Expected the AI summary attached, got %+v", rep.Summary)
	}
}

func TestDegradedSummaryDoesNotBlockExport(t *testing.T) {
	stub := &stubProvider{err: errors.New("provider down")}
	h := newTestHandler(completedSession(), stub)

	w := httptest.NewRecorder()
	h.HandleReport(w, httptest.NewRequest(http.MethodGet, "/api/report?summary=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 despite a degraded mentor, got %d", w.Code)
	}
	var rep corereport.Report
	json.Unmarshal(w.Body.Bytes(), &rep)
	if rep.Summary != nil {
		t.Errorf("Expected no summary when degraded, got %+v", rep.Summary)
	}
}

func TestReportHTML(t *testing.T) {
	h := newTestHandler(completedSession(), &stubProvider{})

	w := httptest.NewRecorder()
	h.HandleReportHTML(w, httptest.NewRequest(http.MethodGet, "/api/report/html", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), "Relatório de Aprendizagem") {
		t.Error("Expected the report title in the HTML")
	}
}
