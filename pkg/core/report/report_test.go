package report

import (
	"strings"
	"testing"

	"adm_academy/pkg/core/mentor"
	"adm_academy/pkg/models"
)

func TestBuildPairsAnswersWithModelAnswers(t *testing.T) {
	state := models.NewProgressState()
	state.Answers[1] = "Minha análise comparativa."
	state.Answers[3] = "**Alocação do Portfólio:**\nAmbev: R$ 1.000.000"

	rep := Build(state)

	if len(rep.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(rep.Entries))
	}
	if rep.Entries[0].Answer != "Minha análise comparativa." || !rep.Entries[0].Answered {
		t.Errorf("Expected the recorded answer for mission 1, got %+v", rep.Entries[0])
	}
	// Missions without an answer render the placeholder.
	if rep.Entries[1].Answer != NoAnswer || rep.Entries[1].Answered {
		t.Errorf("Expected placeholder for mission 2, got %+v", rep.Entries[1])
	}
	for _, e := range rep.Entries {
		if e.ModelAnswer == "" {
			t.Errorf("Expected model answer for mission %d", e.MissionID)
		}
	}
}

func TestBuildTreatsBlankAnswerAsMissing(t *testing.T) {
	state := models.NewProgressState()
	state.Answers[2] = "   "

	rep := Build(state)
	if rep.Entries[1].Answer != NoAnswer {
		t.Errorf("Expected whitespace answer treated as missing, got %q", rep.Entries[1].Answer)
	}
}

func TestRenderHTML(t *testing.T) {
	state := models.NewProgressState()
	state.Answers[1] = "Análise com **negrito**."

	rep := Build(state)
	rep.Summary = &mentor.Summary{
		OverallComment: "Boa evolução geral.",
		Missions:       []mentor.MissionScore{{MissionID: 1, Score: 8, Comment: "sólido"}},
	}

	html, err := rep.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "<h1>Relatório de Aprendizagem - Adm Academy</h1>") {
		t.Error("Expected the report title")
	}
	// Markdown answers render to HTML.
	if !strings.Contains(html, "<strong>negrito</strong>") {
		t.Error("Expected markdown rendered to HTML")
	}
	if !strings.Contains(html, NoAnswer) {
		t.Error("Expected the placeholder for unanswered missions")
	}
	if !strings.Contains(html, "Missão 1: 8/10 - sólido") {
		t.Error("Expected the summary score line")
	}
}
