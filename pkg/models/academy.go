// Package models defines the shared value objects for the Adm Academy
// learning program: company financial snapshots, missions and the learner's
// progression state.
package models

// BalanceDetails is the optional line-item breakdown of a balance sheet.
// Values are in thousands of BRL, matching the seed dataset.
type BalanceDetails struct {
	Caixa                float64 `json:"caixa"`
	ContasAReceber       float64 `json:"contas_a_receber"`
	Estoques             float64 `json:"estoques"`
	AtivoNaoCirculante   float64 `json:"ativo_nao_circulante"`
	ContasAPagar         float64 `json:"contas_a_pagar"`
	EmprestimosCP        float64 `json:"emprestimos_cp"` // short-term loans
	PassivoNaoCirculante float64 `json:"passivo_nao_circulante"`
}

// DREDetails is the optional income statement breakdown.
type DREDetails struct {
	ReceitaBruta         float64 `json:"receita_bruta"`
	Custos               float64 `json:"custos"`
	DespesasOperacionais float64 `json:"despesas_operacionais"`
	Juros                float64 `json:"juros"`
	Impostos             float64 `json:"impostos"`
}

// FinancialDetails groups the optional detailed statements of a company.
// Consistency with the summary totals is NOT enforced: the seed data carries
// the breakdown as published and the program treats it as display material.
type FinancialDetails struct {
	Balanco BalanceDetails `json:"balanco"`
	DRE     DREDetails     `json:"dre"`
}

// CompanyFinancials is an immutable snapshot of a company's summarized
// statements. Optional fields are pointers: a nil Estoques means the company
// does not report inventory, which matters for the quick liquidity ratio.
// All monetary fields are non-negative by construction of the seed dataset.
type CompanyFinancials struct {
	AtivoCirculante   float64  `json:"ativo_circulante"`
	Estoques          *float64 `json:"estoques,omitempty"`
	PassivoCirculante float64  `json:"passivo_circulante"`
	AtivoTotal        float64  `json:"ativo_total"`
	PassivoTotal      float64  `json:"passivo_total"`
	PatrimonioLiquido float64  `json:"patrimonio_liquido"`
	ReceitaLiquida    float64  `json:"receita_liquida"`
	LucroLiquido      float64  `json:"lucro_liquido"`
	LucroBruto        *float64 `json:"lucro_bruto,omitempty"`

	Detalhes *FinancialDetails `json:"detalhes,omitempty"`
}

// Company is an entry of the static dataset.
type Company struct {
	Name        string            `json:"name"`
	Sector      string            `json:"sector"`
	Data        CompanyFinancials `json:"data"`
	AnalystNote string            `json:"analyst_note"`
}

// MissionLevel tags the pedagogical difficulty of a mission.
type MissionLevel string

const (
	LevelProcedural  MissionLevel = "PROCEDURAL"
	LevelAnalitico   MissionLevel = "ANALÍTICO"
	LevelEstrategico MissionLevel = "ESTRATÉGICO"
	LevelCriativo    MissionLevel = "CRIATIVO"
)

// Mission is a learning exercise with prerequisite gating and a fixed
// expert-authored model answer. Prerequisite 0 means no prerequisite.
type Mission struct {
	ID           int          `json:"id"`
	Icon         string       `json:"icon"`
	Title        string       `json:"title"`
	Level        MissionLevel `json:"level"`
	Description  string       `json:"description"`
	Prerequisite int          `json:"prerequisite,omitempty"`
	ModelAnswer  string       `json:"model_answer"`
}

// MissionStatus is derived from the completed set on every read, never stored.
type MissionStatus string

const (
	StatusLocked    MissionStatus = "LOCKED"
	StatusAvailable MissionStatus = "AVAILABLE"
	StatusCompleted MissionStatus = "COMPLETED"
)

// View identifies the top-level screen the learner is on.
type View string

const (
	ViewWelcome   View = "welcome"
	ViewDashboard View = "dashboard"
	ViewMission   View = "mission"
	ViewFeedback  View = "feedback"
	ViewReport    View = "report"
)

// ProgressState is the only mutable entity of the core: which missions were
// completed, what the learner answered, and where in the flow they are.
// CurrentMission and FeedbackMission are 0 when no mission is open.
type ProgressState struct {
	Completed       map[int]bool   `json:"completed"`
	Answers         map[int]string `json:"answers"`
	View            View           `json:"view"`
	CurrentMission  int            `json:"current_mission"`
	FeedbackMission int            `json:"feedback_mission"`
}

// NewProgressState returns the initial welcome-screen state of a fresh session.
func NewProgressState() ProgressState {
	return ProgressState{
		Completed: make(map[int]bool),
		Answers:   make(map[int]string),
		View:      ViewWelcome,
	}
}

// Clone returns a deep copy so reducers can stay non-mutating.
func (s ProgressState) Clone() ProgressState {
	out := s
	out.Completed = make(map[int]bool, len(s.Completed))
	for id := range s.Completed {
		out.Completed[id] = true
	}
	out.Answers = make(map[int]string, len(s.Answers))
	for id, a := range s.Answers {
		out.Answers[id] = a
	}
	return out
}
