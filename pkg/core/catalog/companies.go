// Package catalog holds the static dataset of the program: the comparison
// companies, the InovaTech case study and the four missions. Everything here
// is read-only after load; values are in thousands of BRL.
package catalog

import (
	"adm_academy/pkg/models"
)

// TotalFund is the simulated capital of the portfolio mission, in BRL.
const TotalFund = 1_000_000

func ptr(v float64) *float64 { return &v }

var companies = []models.Company{
	{
		Name:   "Magazine Luiza",
		Sector: "Varejo",
		Data: models.CompanyFinancials{
			AtivoCirculante:   28000,
			Estoques:          ptr(13000),
			PassivoCirculante: 22000,
			AtivoTotal:        45000,
			PassivoTotal:      30000,
			PatrimonioLiquido: 15000,
			ReceitaLiquida:    35000,
			LucroLiquido:      500,
			LucroBruto:        ptr(8750),
		},
		AnalystNote: "Forte presença no e-commerce e ecossistema em expansão, mas enfrenta alta competição e margens pressionadas. O endividamento elevado é um ponto de atenção.",
	},
	{
		Name:   "Ambev",
		Sector: "Bebidas",
		Data: models.CompanyFinancials{
			AtivoCirculante:   40000,
			Estoques:          ptr(8000),
			PassivoCirculante: 32000,
			AtivoTotal:        180000,
			PassivoTotal:      70000,
			PatrimonioLiquido: 110000,
			ReceitaLiquida:    75000,
			LucroLiquido:      15000,
			LucroBruto:        ptr(41250),
		},
		AnalystNote: "Líder de mercado com forte geração de caixa e rentabilidade consistente. Considerada uma ação mais defensiva, porém com menor potencial de crescimento explosivo.",
	},
	{
		// Localiza reports no inventory; the quick liquidity ratio degrades to 0.
		Name:   "Localiza",
		Sector: "Serviços (Aluguel de Veículos)",
		Data: models.CompanyFinancials{
			AtivoCirculante:   15000,
			PassivoCirculante: 10000,
			AtivoTotal:        50000,
			PassivoTotal:      35000,
			PatrimonioLiquido: 15000,
			ReceitaLiquida:    12000,
			LucroLiquido:      2000,
			LucroBruto:        ptr(4800),
		},
		AnalystNote: "Atuação dominante no setor de aluguel e gestão de frotas. Modelo de negócio intensivo em capital, sensível a taxas de juros, mas com histórico de crescimento sólido.",
	},
}

var innoTech = models.Company{
	Name:   "InovaTech Soluções",
	Sector: "Software",
	Data: models.CompanyFinancials{
		AtivoCirculante:   180,
		Estoques:          ptr(30),
		PassivoCirculante: 150,
		AtivoTotal:        300,
		PassivoTotal:      220,
		PatrimonioLiquido: 80,
		ReceitaLiquida:    500,
		LucroLiquido:      25,
		Detalhes: &models.FinancialDetails{
			Balanco: models.BalanceDetails{
				Caixa:                10,
				ContasAReceber:       140,
				Estoques:             30,
				AtivoNaoCirculante:   120,
				ContasAPagar:         90,
				EmprestimosCP:        60,
				PassivoNaoCirculante: 70,
			},
			DRE: models.DREDetails{
				ReceitaBruta:         500,
				Custos:               300,
				DespesasOperacionais: 150,
				Juros:                20,
				Impostos:             5,
			},
		},
	},
}

// InovaTechCaseText is the situation-room narrative presented with the case.
const InovaTechCaseText = "A 'InovaTech Soluções', uma empresa de software em crescimento, dobrou sua receita no último ano. No entanto, o CEO está preocupado com o 'caos financeiro'. As contas a pagar estão se acumulando mais rápido que as contas a receber, e a equipe de vendas oferece prazos de pagamento muito longos para fechar novos contratos. O caixa parece sempre apertado, apesar do lucro reportado no DRE."

// BoardroomBriefText is the scenario of the financial-storytelling mission.
const BoardroomBriefText = "Você é o consultor financeiro da 'InovaTech Soluções' (da Missão 2). A diretoria está impressionada com seu diagnóstico inicial e agora solicita um plano estratégico. Prepare uma breve apresentação (em texto) para a diretoria. Sua apresentação deve: 1) Resumir o diagnóstico em uma frase impactante. 2) Apresentar suas duas recomendações principais com justificativas claras. 3) Concluir com o impacto esperado dessas ações nos indicadores financeiros em 6 meses."

// Companies returns the comparison dataset.
func Companies() []models.Company {
	out := make([]models.Company, len(companies))
	copy(out, companies)
	return out
}

// CompanyByName looks a dataset company up by exact name.
func CompanyByName(name string) (models.Company, bool) {
	for _, c := range companies {
		if c.Name == name {
			return c, true
		}
	}
	return models.Company{}, false
}

// InovaTechCase returns the fictitious patient company of missions 2 and 4.
func InovaTechCase() models.Company {
	return innoTech
}
