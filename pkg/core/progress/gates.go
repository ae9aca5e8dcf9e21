package progress

import (
	"fmt"
	"strings"

	"adm_academy/pkg/core/catalog"
)

// Submission gates are enablement predicates, not a rejection path: the form
// keeps its submit button disabled until the gate passes, and the API mirrors
// the same check. Minimum answer lengths are per mission.
const (
	minAnswerLen       = 50
	minNarrativeLen    = 100 // boardroom mission asks for a full presentation
	minRationaleLen    = 50
	boardroomMissionID = 4
)

// AllocationMissionID is the portfolio mission; its submissions carry an
// allocation map plus rationale instead of free text.
const AllocationMissionID = 3

// Gate is the result of evaluating a submission gate, surfaced to the client
// so it can enable or disable the submit affordance.
type Gate struct {
	Satisfied bool   `json:"satisfied"`
	Reason    string `json:"reason,omitempty"`
}

// AnswerGate checks the free-text gate of missions 1, 2 and 4.
func AnswerGate(missionID int, answer string) Gate {
	min := minAnswerLen
	if missionID == boardroomMissionID {
		min = minNarrativeLen
	}
	if len([]rune(answer)) < min {
		return Gate{Reason: fmt.Sprintf("resposta com menos de %d caracteres", min)}
	}
	return Gate{Satisfied: true}
}

// AllocationGate checks the portfolio mission: every amount must be
// non-negative, the full fund must be allocated (sum exactly equal to the
// total) and the rationale must meet the minimum length.
func AllocationGate(allocations map[string]int, rationale string) Gate {
	total := 0
	for name, v := range allocations {
		if v < 0 {
			return Gate{Reason: fmt.Sprintf("alocação negativa para %s", name)}
		}
		total += v
	}
	if total != catalog.TotalFund {
		return Gate{Reason: fmt.Sprintf("alocado R$ %s de R$ %s", formatBRL(total), formatBRL(catalog.TotalFund))}
	}
	if len([]rune(rationale)) < minRationaleLen {
		return Gate{Reason: fmt.Sprintf("justificativa com menos de %d caracteres", minRationaleLen)}
	}
	return Gate{Satisfied: true}
}

// ComposeAllocationAnswer builds the stored answer of the portfolio mission:
// the per-company allocation summary followed by the strategic rationale, in
// dataset order. Companies missing from the map show as zero.
func ComposeAllocationAnswer(allocations map[string]int, rationale string) string {
	var b strings.Builder
	b.WriteString("**Alocação do Portfólio:**\n")
	for _, c := range catalog.Companies() {
		fmt.Fprintf(&b, "%s: R$ %s\n", c.Name, formatBRL(allocations[c.Name]))
	}
	b.WriteString("\n**Justificativa Estratégica:**\n")
	b.WriteString(rationale)
	return b.String()
}

// SectorSlice is one sector's share of the allocated portfolio.
type SectorSlice struct {
	Sector  string  `json:"sector"`
	Amount  int     `json:"amount"`
	Percent float64 `json:"percent"`
}

// SectorAllocation summarizes the allocation by company sector, in dataset
// order. Zero allocations are skipped; percentages are over the allocated
// total, not the fund.
func SectorAllocation(allocations map[string]int) []SectorSlice {
	total := 0
	for _, v := range allocations {
		total += v
	}
	if total == 0 {
		return nil
	}
	amounts := make(map[string]int)
	var order []string
	for _, c := range catalog.Companies() {
		amount := allocations[c.Name]
		if amount <= 0 {
			continue
		}
		if _, seen := amounts[c.Sector]; !seen {
			order = append(order, c.Sector)
		}
		amounts[c.Sector] += amount
	}
	out := make([]SectorSlice, 0, len(order))
	for _, sector := range order {
		out = append(out, SectorSlice{
			Sector:  sector,
			Amount:  amounts[sector],
			Percent: float64(amounts[sector]) / float64(total) * 100,
		})
	}
	return out
}

// formatBRL renders an integer amount with pt-BR thousand separators.
func formatBRL(v int) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ".")
}
