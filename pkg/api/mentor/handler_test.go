package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"adm_academy/pkg/core/agent"
	coreMentor "adm_academy/pkg/core/mentor"
	"adm_academy/pkg/models"
)

type stubProvider struct {
	reply string
}

func (s *stubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return s.reply, nil
}

func (s *stubProvider) AdaptInstructions(raw string) string { return raw }

type stubState struct {
	state models.ProgressState
}

func (s *stubState) State() models.ProgressState { return s.state }

func newTestHandler(reply string, state models.ProgressState) *Handler {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "stub"})
	mgr.RegisterProvider("stub", &stubProvider{reply: reply})
	svc := coreMentor.NewService(mgr, zerolog.Nop())
	return NewHandler(svc, &stubState{state: state})
}

func post(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data)))
	return w
}

func TestIndicatorEndpoint(t *testing.T) {
	h := newTestHandler("**Análise** pronta.", models.NewProgressState())

	w := post(t, h.HandleIndicator, IndicatorRequest{Company: "Magazine Luiza", Indicator: "roe"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp coreMentor.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Degraded || resp.Markdown != "**Análise** pronta." {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestIndicatorEndpointValidation(t *testing.T) {
	h := newTestHandler("x", models.NewProgressState())

	if w := post(t, h.HandleIndicator, IndicatorRequest{Company: "Petrobras", Indicator: "roe"}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown company, got %d", w.Code)
	}
	if w := post(t, h.HandleIndicator, IndicatorRequest{Company: "Ambev", Indicator: "ebitda"}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown indicator, got %d", w.Code)
	}
}

func TestDiagnosisEndpointRequiresText(t *testing.T) {
	h := newTestHandler("x", models.NewProgressState())
	if w := post(t, h.HandleDiagnosis, DiagnosisRequest{Diagnosis: "   "}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an empty diagnosis, got %d", w.Code)
	}
}

func TestAllocationEndpoint(t *testing.T) {
	h := newTestHandler("Boa tese.", models.NewProgressState())
	w := post(t, h.HandleAllocation, AllocationRequest{Chosen: "Ambev", Rationale: "fundamentos sólidos"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	state := models.NewProgressState()
	state.Answers[1] = "resposta um"
	h := newTestHandler(`{"overall_comment": "Boa evolução", "missions": [{"mission_id": 1, "score": 7, "comment": "ok"}]}`, state)

	w := post(t, h.HandleSummary, struct{}{})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var resp SummaryResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Summary == nil || resp.Summary.OverallComment != "Boa evolução" {
		t.Errorf("Expected a decoded summary, got %+v", resp)
	}
}

func TestSummaryEndpointWithoutAnswers(t *testing.T) {
	h := newTestHandler("x", models.NewProgressState())
	if w := post(t, h.HandleSummary, struct{}{}); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 without answers, got %d", w.Code)
	}
}
