// Package report assembles the final learning report: each mission paired
// with the learner's answer and the expert model answer.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/core/mentor"
	"adm_academy/pkg/core/utils"
	"adm_academy/pkg/models"
)

// NoAnswer is shown for a mission without a recorded answer. With the
// completion gating in place this only happens on tampered session files,
// but the report renders it instead of failing.
const NoAnswer = "Não respondida."

// Entry is one mission row of the report.
type Entry struct {
	MissionID   int                 `json:"mission_id"`
	Icon        string              `json:"icon"`
	Title       string              `json:"title"`
	Level       models.MissionLevel `json:"level"`
	Answer      string              `json:"answer"`
	ModelAnswer string              `json:"model_answer"`
	Answered    bool                `json:"answered"`
}

// Report is the full export, optionally enriched with the AI summary.
type Report struct {
	Title   string          `json:"title"`
	Entries []Entry         `json:"entries"`
	Summary *mentor.Summary `json:"summary,omitempty"`
}

// Build assembles the report from the progression state, in mission order.
func Build(state models.ProgressState) Report {
	r := Report{Title: "Relatório de Aprendizagem - Adm Academy"}
	for _, m := range catalog.Missions() {
		answer, ok := state.Answers[m.ID]
		if !ok || strings.TrimSpace(answer) == "" {
			answer = NoAnswer
			ok = false
		}
		r.Entries = append(r.Entries, Entry{
			MissionID:   m.ID,
			Icon:        m.Icon,
			Title:       m.Title,
			Level:       m.Level,
			Answer:      answer,
			ModelAnswer: m.ModelAnswer,
			Answered:    ok,
		})
	}
	return r
}

// RenderHTML renders the report as a standalone HTML document. Answers and
// model answers are markdown and go through the markdown renderer.
func (r Report) RenderHTML() (string, error) {
	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n</head>\n<body>\n", r.Title)
	fmt.Fprintf(&b, "<h1>%s</h1>\n", r.Title)

	for _, e := range r.Entries {
		fmt.Fprintf(&b, "<section>\n<h2>%s Missão %d: %s</h2>\n<p><em>%s</em></p>\n", e.Icon, e.MissionID, e.Title, e.Level)

		b.WriteString("<h3>Sua Resposta</h3>\n")
		answer, err := utils.RenderMarkdown(e.Answer)
		if err != nil {
			return "", fmt.Errorf("rendering answer for mission %d: %w", e.MissionID, err)
		}
		b.WriteString(answer)

		b.WriteString("<h3>Resposta Modelo</h3>\n")
		model, err := utils.RenderMarkdown(e.ModelAnswer)
		if err != nil {
			return "", fmt.Errorf("rendering model answer for mission %d: %w", e.MissionID, err)
		}
		b.WriteString(model)
		b.WriteString("</section>\n")
	}

	if r.Summary != nil {
		b.WriteString("<section>\n<h2>Resumo de Desempenho</h2>\n")
		overall, err := utils.RenderMarkdown(r.Summary.OverallComment)
		if err != nil {
			return "", fmt.Errorf("rendering summary: %w", err)
		}
		b.WriteString(overall)
		b.WriteString("<ul>\n")
		for _, s := range r.Summary.Missions {
			fmt.Fprintf(&b, "<li>Missão %d: %d/10 - %s</li>\n", s.MissionID, s.Score, s.Comment)
		}
		b.WriteString("</ul>\n</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
