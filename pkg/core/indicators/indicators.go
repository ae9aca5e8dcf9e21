// Package indicators implements the financial indicator engine: pure, total
// functions from a company snapshot to a named ratio.
package indicators

import (
	"adm_academy/pkg/models"
)

// Category groups indicators for the comparison lab selector.
type Category string

const (
	CategoryLiquidez      Category = "Liquidez"
	CategoryEndividamento Category = "Endividamento"
	CategoryRentabilidade Category = "Rentabilidade"
	CategoryAtividade     Category = "Atividade"
)

// Unit is the display unit of an indicator value.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPercent Unit = "%"
)

// Indicator is a named ratio over a financial snapshot. Calculate is total:
// it never fails and never divides by zero.
type Indicator struct {
	Key       string                                 `json:"key"`
	Name      string                                 `json:"name"`
	Category  Category                               `json:"category"`
	Formula   string                                 `json:"formula"`
	Unit      Unit                                   `json:"unit"`
	Calculate func(models.CompanyFinancials) float64 `json:"-"`
}

// =============================================================================
// ZERO-DIVIDE POLICY
// A zero or absent denominator yields 0, not an error or infinity. The engine
// therefore cannot distinguish "ratio is zero" from "ratio is undefined";
// display code stays trivial in exchange.
// =============================================================================

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// =============================================================================
// REGISTRY
// The set of indicators is fixed at load time. Callers filter by key for
// display; the engine exposes no selection logic of its own.
// =============================================================================

var registry = []Indicator{
	// Liquidez
	{
		Key:      "liquidezCorrente",
		Name:     "Liquidez Corrente",
		Category: CategoryLiquidez,
		Formula:  "Ativo Circulante / Passivo Circulante",
		Unit:     UnitNone,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.AtivoCirculante, d.PassivoCirculante)
		},
	},
	{
		Key:      "liquidezSeca",
		Name:     "Liquidez Seca",
		Category: CategoryLiquidez,
		Formula:  "(Ativo Circulante - Estoques) / Passivo Circulante",
		Unit:     UnitNone,
		Calculate: func(d models.CompanyFinancials) float64 {
			if d.Estoques == nil {
				return 0
			}
			return safeDiv(d.AtivoCirculante-*d.Estoques, d.PassivoCirculante)
		},
	},
	// Endividamento
	{
		Key:      "endividamentoGeral",
		Name:     "Endividamento Geral",
		Category: CategoryEndividamento,
		Formula:  "(Passivo Total / Ativo Total) * 100",
		Unit:     UnitPercent,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.PassivoTotal, d.AtivoTotal) * 100
		},
	},
	{
		Key:      "endividamentoPL",
		Name:     "Endividamento sobre PL",
		Category: CategoryEndividamento,
		Formula:  "Passivo Total / Patrimônio Líquido",
		Unit:     UnitNone,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.PassivoTotal, d.PatrimonioLiquido)
		},
	},
	// Rentabilidade
	{
		Key:      "margemLiquida",
		Name:     "Margem Líquida",
		Category: CategoryRentabilidade,
		Formula:  "(Lucro Líquido / Receita Líquida) * 100",
		Unit:     UnitPercent,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.LucroLiquido, d.ReceitaLiquida) * 100
		},
	},
	{
		Key:      "roe",
		Name:     "ROE (Retorno sobre PL)",
		Category: CategoryRentabilidade,
		Formula:  "(Lucro Líquido / Patrimônio Líquido) * 100",
		Unit:     UnitPercent,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.LucroLiquido, d.PatrimonioLiquido) * 100
		},
	},
	{
		Key:      "roa",
		Name:     "ROA (Retorno sobre Ativo)",
		Category: CategoryRentabilidade,
		Formula:  "(Lucro Líquido / Ativo Total) * 100",
		Unit:     UnitPercent,
		Calculate: func(d models.CompanyFinancials) float64 {
			return safeDiv(d.LucroLiquido, d.AtivoTotal) * 100
		},
	},
}

// All returns the fixed indicator registry in display order.
func All() []Indicator {
	out := make([]Indicator, len(registry))
	copy(out, registry)
	return out
}

// ByKey returns the indicator with the given key, or false when unknown.
func ByKey(key string) (Indicator, bool) {
	for _, ind := range registry {
		if ind.Key == key {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Filter returns the indicators whose keys are in the given set, preserving
// registry order. Unknown keys are ignored.
func Filter(keys []string) []Indicator {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	var out []Indicator
	for _, ind := range registry {
		if wanted[ind.Key] {
			out = append(out, ind)
		}
	}
	return out
}

// =============================================================================
// ACTIVITY HELPERS
// Not part of the selectable registry; used by the boardroom briefing.
// =============================================================================

// ReceivableDays is the average collection period in days
// (Contas a Receber / Receita Líquida * 365). Requires the detailed breakdown;
// returns 0 when it is absent, per the zero-divide policy.
func ReceivableDays(d models.CompanyFinancials) float64 {
	if d.Detalhes == nil {
		return 0
	}
	return safeDiv(d.Detalhes.Balanco.ContasAReceber, d.ReceitaLiquida) * 365
}
