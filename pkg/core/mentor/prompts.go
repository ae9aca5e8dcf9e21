package mentor

import (
	"fmt"
	"strings"

	"adm_academy/pkg/core/indicators"
	"adm_academy/pkg/core/prompt"
	"adm_academy/pkg/models"
)

// Prompt template ids, resolved against resources/prompts/mentor/*.json.
const (
	promptIndicator  = "mentor.indicator"
	promptDiagnosis  = "mentor.diagnosis"
	promptAllocation = "mentor.allocation"
	promptSummary    = "mentor.summary"
)

// Fixed user-facing strings. The mentor never surfaces raw provider errors.
const (
	MsgUnavailable      = "O serviço de IA não está disponível. Verifique a configuração da API_KEY."
	MsgIndicatorFailed  = "Ocorreu um erro ao gerar a análise. Tente novamente mais tarde."
	MsgDiagnosisFailed  = "Ocorreu um erro ao avaliar o diagnóstico. Tente novamente mais tarde."
	MsgAllocationFailed = "Ocorreu um erro ao avaliar a justificativa. Tente novamente mais tarde."
	MsgSummaryFailed    = "Ocorreu um erro ao gerar o resumo de desempenho. Tente novamente mais tarde."
)

// renderOrFallback resolves a prompt from the library; when the library is
// not loaded (or the template is missing) it uses the built-in wording.
func renderOrFallback(id string, vars map[string]interface{}, fallback func() (string, string)) (system, user string) {
	system, user, err := prompt.Get().Render(id, vars)
	if err == nil {
		return system, user
	}
	return fallback()
}

func indicatorPrompt(company models.Company, ind indicators.Indicator, value float64) (string, string) {
	vars := map[string]interface{}{
		"Company":   company.Name,
		"Sector":    company.Sector,
		"Indicator": ind.Name,
		"Value":     fmt.Sprintf("%.2f%s", value, ind.Unit),
		"Formula":   ind.Formula,
	}
	return renderOrFallback(promptIndicator, vars, func() (string, string) {
		system := "Você é um analista financeiro sênior (CFA) fazendo mentoring de um analista júnior. Responda sempre em markdown, em português."
		user := fmt.Sprintf(`A empresa em análise é a %s, do setor de %s.

O analista júnior calculou o seguinte indicador:
- **Indicador:** %s
- **Valor Calculado:** %.2f%s
- **Fórmula:** %s

Forneça uma análise em 3 parágrafos concisos (formato markdown):
1. **Contextualização:** o que este indicador mede e sua importância para o setor de %s.
2. **Diagnóstico:** sua interpretação inicial do valor, comparando qualitativamente com benchmarks gerais do setor.
3. **Próximo Passo:** qual pergunta estratégica este indicador levanta e que outro indicador deveria ser investigado.`,
			company.Name, company.Sector, ind.Name, value, ind.Unit, ind.Formula, company.Sector)
		return system, user
	})
}

func diagnosisPrompt(caseText, userDiagnosis string) (string, string) {
	vars := map[string]interface{}{
		"CaseText":  caseText,
		"Diagnosis": userDiagnosis,
	}
	return renderOrFallback(promptDiagnosis, vars, func() (string, string) {
		system := "Você é um professor PhD em Finanças Corporativas, avaliando o trabalho de um aluno de graduação em Administração. Seja encorajador, mas rigoroso: o objetivo é desenvolver o pensamento crítico do aluno, não apenas dar a resposta certa."
		user := fmt.Sprintf(`O aluno recebeu o seguinte estudo de caso: "%s"

O aluno submeteu o seguinte diagnóstico:
---
%s
---

Forneça um feedback construtivo e detalhado em 3 seções, formatado em markdown:

1. **Nível Procedimental (Análise):** o aluno identificou os problemas centrais? Os indicadores implícitos no texto foram corretamente interpretados e conectados?
2. **Nível Atitudinal (Avaliação):** o diagnóstico é coerente e bem fundamentado? As recomendações derivam diretamente da análise?
3. **Plano de Desenvolvimento:** ofereça 2 sugestões claras para o aluno aprimorar sua capacidade analítica.`,
			caseText, userDiagnosis)
		return system, user
	})
}

func allocationPrompt(companies []models.Company, chosen, rationale string) (string, string) {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	sector := ""
	if len(companies) > 0 {
		sector = companies[0].Sector
	}
	vars := map[string]interface{}{
		"Companies": strings.Join(names, ", "),
		"Sector":    sector,
		"Chosen":    chosen,
		"Rationale": rationale,
	}
	return renderOrFallback(promptAllocation, vars, func() (string, string) {
		system := "Você é um gestor de portfólio experiente avaliando a tese de investimento de um analista. Use uma abordagem socrática e responda em markdown."
		user := fmt.Sprintf(`O analista teve que escolher uma empresa para investir entre as seguintes opções: %s.

Ele escolheu a **%s** e apresentou a seguinte justificativa:
---
%s
---

Avalie esta justificativa, focando no raciocínio estratégico:
- **Pontos Fortes da Análise:** 1-2 pontos onde o analista demonstrou bom raciocínio.
- **Contrapontos e Riscos:** 1-2 riscos que o analista pode ter negligenciado.
- **Sugestão de Aprofundamento:** uma área de investigação adicional que fortaleceria a tese.`,
			strings.Join(names, ", "), chosen, rationale)
		return system, user
	})
}

func summaryPrompt(missions []models.Mission, answers map[int]string) (string, string) {
	var b strings.Builder
	for _, m := range missions {
		answer := answers[m.ID]
		if answer == "" {
			answer = "(não respondida)"
		}
		fmt.Fprintf(&b, "Missão %d - %s:\n%s\n\n", m.ID, m.Title, answer)
	}
	vars := map[string]interface{}{
		"Answers": b.String(),
	}
	return renderOrFallback(promptSummary, vars, func() (string, string) {
		system := `Você é o coordenador do programa Adm Academy, consolidando o desempenho de um aluno. Responda APENAS com JSON válido no formato:
{"overall_comment": "...", "missions": [{"mission_id": 1, "score": 0, "comment": "..."}]}
Scores vão de 0 a 10. Comentários em português, curtos e específicos.`
		user := "Atividades submetidas pelo aluno:\n\n" + b.String()
		return system, user
	})
}
