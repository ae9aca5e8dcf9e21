package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"adm_academy/pkg/core/agent"
	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/core/indicators"
)

// stubProvider cans a single reply and records the last request.
type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
	lastSystem string
}

func (s *stubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	s.lastPrompt = prompt
	s.lastSystem = systemPrompt
	return s.reply, s.err
}

func (s *stubProvider) AdaptInstructions(raw string) string { return raw }

func newTestService(stub *stubProvider) *Service {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "stub"})
	mgr.RegisterProvider("stub", stub)
	return NewService(mgr, zerolog.Nop())
}

func TestExplainIndicator(t *testing.T) {
	stub := &stubProvider{reply: "```markdown\n**Análise** da liquidez.\n```"}
	svc := newTestService(stub)

	company, _ := catalog.CompanyByName("Magazine Luiza")
	ind, _ := indicators.ByKey("liquidezCorrente")
	resp := svc.ExplainIndicator(context.Background(), company, ind, 1.27)

	if resp.Degraded {
		t.Fatalf("Expected a live reply, got degraded %q", resp.Markdown)
	}
	// Code fences are stripped before the markdown reaches the client.
	if strings.Contains(resp.Markdown, "```") {
		t.Errorf("Expected fences stripped, got %q", resp.Markdown)
	}
	if resp.RequestID == "" {
		t.Error("Expected a request id")
	}
	// The prompt carries the company context and the calculated value.
	if !strings.Contains(stub.lastPrompt, "Magazine Luiza") || !strings.Contains(stub.lastPrompt, "1.27") {
		t.Errorf("Expected prompt with company and value, got %q", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastSystem, "analista financeiro") {
		t.Errorf("Expected the mentor persona in the system prompt, got %q", stub.lastSystem)
	}
}

func TestDiagnosisPromptCarriesCase(t *testing.T) {
	stub := &stubProvider{reply: "Bom diagnóstico."}
	svc := newTestService(stub)

	svc.EvaluateDiagnosis(context.Background(), "O problema é capital de giro.")

	if !strings.Contains(stub.lastPrompt, "InovaTech") {
		t.Errorf("Expected the case text in the prompt, got %q", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "capital de giro") {
		t.Errorf("Expected the student diagnosis in the prompt, got %q", stub.lastPrompt)
	}
}

func TestProviderFailureDegrades(t *testing.T) {
	stub := &stubProvider{err: errors.New("rate limited")}
	svc := newTestService(stub)

	resp := svc.EvaluateDiagnosis(context.Background(), "diagnóstico qualquer")

	if !resp.Degraded {
		t.Fatal("Expected a degraded response")
	}
	if resp.Markdown != MsgDiagnosisFailed {
		t.Errorf("Expected the fixed fallback message, got %q", resp.Markdown)
	}
	if resp.RequestID == "" {
		t.Error("Expected a request id even when degraded")
	}
}

func TestMissingAPIKeyMessage(t *testing.T) {
	stub := &stubProvider{err: errors.New("GEMINI_API_KEY environment variable not set")}
	svc := newTestService(stub)

	resp := svc.EvaluateAllocation(context.Background(), "Ambev", "fundamentos sólidos")
	if resp.Markdown != MsgUnavailable {
		t.Errorf("Expected the unavailable message, got %q", resp.Markdown)
	}
}

func TestSummarizePerformanceLenientDecode(t *testing.T) {
	// Trailing comma and fences: typical LLM JSON that strict decoding rejects.
	stub := &stubProvider{reply: "```json\n{\"overall_comment\": \"Boa evolução\", \"missions\": [{\"mission_id\": 1, \"score\": 8, \"comment\": \"sólido\"},]}\n```"}
	svc := newTestService(stub)

	summary, resp := svc.SummarizePerformance(context.Background(), map[int]string{1: "resposta"})
	if resp.Degraded {
		t.Fatalf("Expected a decoded summary, got degraded %q", resp.Markdown)
	}
	if summary.OverallComment != "Boa evolução" {
		t.Errorf("Expected overall comment, got %q", summary.OverallComment)
	}
	if len(summary.Missions) != 1 || summary.Missions[0].Score != 8 {
		t.Errorf("Expected one scored mission, got %+v", summary.Missions)
	}
}

func TestSummaryPromptMarksUnanswered(t *testing.T) {
	stub := &stubProvider{reply: "{\"overall_comment\": \"ok\", \"missions\": []}"}
	svc := newTestService(stub)

	svc.SummarizePerformance(context.Background(), map[int]string{1: "só a primeira"})
	if !strings.Contains(stub.lastPrompt, "(não respondida)") {
		t.Errorf("Expected unanswered missions marked, got %q", stub.lastPrompt)
	}
}
