package catalog

import (
	"adm_academy/pkg/core/indicators"
	"adm_academy/pkg/models"
)

// StatementLine is one labelled row of a rendered financial statement.
// Expense lines carry negative values, as printed in the DRE.
type StatementLine struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BalanceSheetLines renders the InovaTech balance sheet in presentation order,
// mixing the detailed breakdown with the summary totals. Returns nil when the
// company has no detailed breakdown.
func BalanceSheetLines(c models.Company) []StatementLine {
	det := c.Data.Detalhes
	if det == nil {
		return nil
	}
	b := det.Balanco
	return []StatementLine{
		{Label: "Caixa", Value: b.Caixa},
		{Label: "Contas a Receber", Value: b.ContasAReceber},
		{Label: "Estoques", Value: b.Estoques},
		{Label: "Ativo Não Circulante", Value: b.AtivoNaoCirculante},
		{Label: "Total Ativo", Value: c.Data.AtivoTotal},
		{Label: "Contas a Pagar", Value: b.ContasAPagar},
		{Label: "Empréstimos CP", Value: b.EmprestimosCP},
		{Label: "Passivo Não Circulante", Value: b.PassivoNaoCirculante},
		{Label: "Patrimônio Líquido", Value: c.Data.PatrimonioLiquido},
		{Label: "Total Passivo + PL", Value: c.Data.PassivoTotal + c.Data.PatrimonioLiquido},
	}
}

// IncomeStatementLines renders the InovaTech DRE with the intermediate
// results computed from the breakdown. Returns nil without a breakdown.
func IncomeStatementLines(c models.Company) []StatementLine {
	det := c.Data.Detalhes
	if det == nil {
		return nil
	}
	dre := det.DRE
	ebit := dre.ReceitaBruta - dre.Custos - dre.DespesasOperacionais
	return []StatementLine{
		{Label: "Receita Bruta", Value: dre.ReceitaBruta},
		{Label: "Custos (CMV)", Value: -dre.Custos},
		{Label: "Lucro Bruto", Value: dre.ReceitaBruta - dre.Custos},
		{Label: "Despesas Operacionais", Value: -dre.DespesasOperacionais},
		{Label: "EBIT (Lucro Operacional)", Value: ebit},
		{Label: "Despesas Financeiras", Value: -dre.Juros},
		{Label: "Lucro Antes Impostos", Value: ebit - dre.Juros},
		{Label: "Impostos", Value: -dre.Impostos},
		{Label: "Lucro Líquido", Value: c.Data.LucroLiquido},
	}
}

// BoardroomMetrics are the three red-flag figures shown with the
// financial-storytelling brief.
type BoardroomMetrics struct {
	LiquidezCorrente float64 `json:"liquidez_corrente"`
	PrazoRecebimento float64 `json:"prazo_recebimento_dias"`
	Caixa            float64 `json:"caixa"`
}

// BoardroomBriefMetrics computes the InovaTech key metrics for mission 4.
func BoardroomBriefMetrics() BoardroomMetrics {
	c := InovaTechCase()
	m := BoardroomMetrics{
		PrazoRecebimento: indicators.ReceivableDays(c.Data),
	}
	if ind, ok := indicators.ByKey("liquidezCorrente"); ok {
		m.LiquidezCorrente = ind.Calculate(c.Data)
	}
	if c.Data.Detalhes != nil {
		m.Caixa = c.Data.Detalhes.Balanco.Caixa
	}
	return m
}

// ComparisonCell is one computed indicator value for one company.
type ComparisonCell struct {
	Company string  `json:"company"`
	Value   float64 `json:"value"`
}

// ComparisonRow is one indicator across all dataset companies.
type ComparisonRow struct {
	Indicator indicators.Indicator `json:"indicator"`
	Cells     []ComparisonCell     `json:"cells"`
}

// ComparisonTable computes the comparison-lab table for the given indicator
// keys. An empty key list yields the full registry.
func ComparisonTable(keys []string) []ComparisonRow {
	inds := indicators.All()
	if len(keys) > 0 {
		inds = indicators.Filter(keys)
	}
	rows := make([]ComparisonRow, 0, len(inds))
	for _, ind := range inds {
		row := ComparisonRow{Indicator: ind}
		for _, c := range companies {
			row.Cells = append(row.Cells, ComparisonCell{
				Company: c.Name,
				Value:   ind.Calculate(c.Data),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
