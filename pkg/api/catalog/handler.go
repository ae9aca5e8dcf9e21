// ============================================================================
// CATALOG HANDLER - static dataset: companies, missions, indicators, case
// ============================================================================

package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/core/indicators"
	"adm_academy/pkg/models"
)

// IndicatorValue is one computed indicator for one company.
type IndicatorValue struct {
	Key      string              `json:"key"`
	Name     string              `json:"name"`
	Category indicators.Category `json:"category"`
	Formula  string              `json:"formula"`
	Unit     indicators.Unit     `json:"unit"`
	Value    float64             `json:"value"`
}

// StatementsResponse is the detailed statement view of a company.
type StatementsResponse struct {
	Company         string                  `json:"company"`
	BalanceSheet    []catalog.StatementLine `json:"balance_sheet"`
	IncomeStatement []catalog.StatementLine `json:"income_statement"`
}

// CaseResponse bundles the turnaround case material of mission 2.
type CaseResponse struct {
	Company  models.Company `json:"company"`
	CaseText string         `json:"case_text"`
}

// BoardroomResponse bundles the mission 4 briefing.
type BoardroomResponse struct {
	Brief   string                   `json:"brief"`
	Metrics catalog.BoardroomMetrics `json:"metrics"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleCompanies serves GET /api/catalog/companies.
func (h *Handler) HandleCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Companies())
}

// HandleCompanyIndicators serves GET /api/catalog/companies/{name}/indicators.
// An optional keys query parameter (comma-separated) restricts the registry.
func (h *Handler) HandleCompanyIndicators(w http.ResponseWriter, r *http.Request) {
	company, ok := h.lookupCompany(r)
	if !ok {
		http.Error(w, "Company not found", http.StatusNotFound)
		return
	}

	inds := indicators.All()
	if keys := queryKeys(r); len(keys) > 0 {
		inds = indicators.Filter(keys)
	}
	out := make([]IndicatorValue, 0, len(inds))
	for _, ind := range inds {
		out = append(out, IndicatorValue{
			Key:      ind.Key,
			Name:     ind.Name,
			Category: ind.Category,
			Formula:  ind.Formula,
			Unit:     ind.Unit,
			Value:    ind.Calculate(company.Data),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleStatements serves GET /api/catalog/companies/{name}/statements.
// Only the case company carries a detailed breakdown; others return 404.
func (h *Handler) HandleStatements(w http.ResponseWriter, r *http.Request) {
	company, ok := h.lookupCompany(r)
	if !ok {
		http.Error(w, "Company not found", http.StatusNotFound)
		return
	}
	balance := catalog.BalanceSheetLines(company)
	income := catalog.IncomeStatementLines(company)
	if balance == nil && income == nil {
		http.Error(w, "Company has no detailed statements", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, StatementsResponse{
		Company:         company.Name,
		BalanceSheet:    balance,
		IncomeStatement: income,
	})
}

// HandleComparison serves GET /api/catalog/comparison, the comparison-lab
// table across the whole dataset.
func (h *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.ComparisonTable(queryKeys(r)))
}

// HandleMissions serves GET /api/catalog/missions.
func (h *Handler) HandleMissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Missions())
}

// HandleCase serves GET /api/catalog/case, the mission 2 study material.
func (h *Handler) HandleCase(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CaseResponse{
		Company:  catalog.InovaTechCase(),
		CaseText: catalog.InovaTechCaseText,
	})
}

// HandleBoardroom serves GET /api/catalog/boardroom, the mission 4 briefing.
func (h *Handler) HandleBoardroom(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BoardroomResponse{
		Brief:   catalog.BoardroomBriefText,
		Metrics: catalog.BoardroomBriefMetrics(),
	})
}

// lookupCompany resolves {name} against the dataset, then the case company.
func (h *Handler) lookupCompany(r *http.Request) (models.Company, bool) {
	name := chi.URLParam(r, "name")
	if c, ok := catalog.CompanyByName(name); ok {
		return c, true
	}
	if c := catalog.InovaTechCase(); c.Name == name {
		return c, true
	}
	return models.Company{}, false
}

func queryKeys(r *http.Request) []string {
	raw := strings.TrimSpace(r.URL.Query().Get("keys"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
