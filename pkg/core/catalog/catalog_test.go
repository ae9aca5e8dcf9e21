package catalog

import (
	"math"
	"testing"

	"adm_academy/pkg/models"
)

func TestDatasetShape(t *testing.T) {
	cs := Companies()
	if len(cs) != 3 {
		t.Fatalf("Expected 3 comparison companies, got %d", len(cs))
	}
	expected := []string{"Magazine Luiza", "Ambev", "Localiza"}
	for i, name := range expected {
		if cs[i].Name != name {
			t.Errorf("Expected company %d to be %s, got %s", i, name, cs[i].Name)
		}
	}
	// Localiza reports no inventory.
	if cs[2].Data.Estoques != nil {
		t.Error("Expected Localiza without inventory")
	}
}

func TestCompanyByName(t *testing.T) {
	c, ok := CompanyByName("Ambev")
	if !ok || c.Sector != "Bebidas" {
		t.Errorf("Expected Ambev in the dataset, got %+v (%v)", c, ok)
	}
	if _, ok := CompanyByName("Petrobras"); ok {
		t.Error("Expected unknown company to report not found")
	}
}

func TestMissionChain(t *testing.T) {
	if MissionCount() != 4 {
		t.Fatalf("Expected 4 missions, got %d", MissionCount())
	}
	prereqs := map[int]int{1: 0, 2: 1, 3: 2, 4: 3}
	levels := map[int]models.MissionLevel{
		1: models.LevelProcedural,
		2: models.LevelAnalitico,
		3: models.LevelEstrategico,
		4: models.LevelCriativo,
	}
	for _, m := range Missions() {
		if m.Prerequisite != prereqs[m.ID] {
			t.Errorf("Expected mission %d prerequisite %d, got %d", m.ID, prereqs[m.ID], m.Prerequisite)
		}
		if m.Level != levels[m.ID] {
			t.Errorf("Expected mission %d level %s, got %s", m.ID, levels[m.ID], m.Level)
		}
		if m.ModelAnswer == "" {
			t.Errorf("Expected mission %d to carry a model answer", m.ID)
		}
	}
}

func TestBalanceSheetBalances(t *testing.T) {
	lines := BalanceSheetLines(InovaTechCase())
	if lines == nil {
		t.Fatal("Expected detailed balance sheet for the case company")
	}

	byLabel := make(map[string]float64, len(lines))
	for _, l := range lines {
		byLabel[l.Label] = l.Value
	}
	assets := byLabel["Caixa"] + byLabel["Contas a Receber"] + byLabel["Estoques"] + byLabel["Ativo Não Circulante"]
	if math.Abs(assets-byLabel["Total Ativo"]) > 0.0001 {
		t.Errorf("Expected asset lines (%v) to sum to Total Ativo (%v)", assets, byLabel["Total Ativo"])
	}
	if math.Abs(byLabel["Total Ativo"]-byLabel["Total Passivo + PL"]) > 0.0001 {
		t.Errorf("Expected the balance sheet to balance: %v vs %v",
			byLabel["Total Ativo"], byLabel["Total Passivo + PL"])
	}
}

func TestIncomeStatementDerivedLines(t *testing.T) {
	c := InovaTechCase()
	lines := IncomeStatementLines(c)
	if lines == nil {
		t.Fatal("Expected detailed income statement for the case company")
	}

	byLabel := make(map[string]float64, len(lines))
	for _, l := range lines {
		byLabel[l.Label] = l.Value
	}
	// 500 - 300 - 150 = 50
	if byLabel["EBIT (Lucro Operacional)"] != 50 {
		t.Errorf("Expected EBIT 50, got %v", byLabel["EBIT (Lucro Operacional)"])
	}
	// Expense lines print negative.
	if byLabel["Custos (CMV)"] != -300 {
		t.Errorf("Expected Custos -300, got %v", byLabel["Custos (CMV)"])
	}
	if byLabel["Lucro Líquido"] != c.Data.LucroLiquido {
		t.Errorf("Expected bottom line %v, got %v", c.Data.LucroLiquido, byLabel["Lucro Líquido"])
	}
}

func TestStatementsRequireBreakdown(t *testing.T) {
	c, _ := CompanyByName("Ambev")
	if BalanceSheetLines(c) != nil || IncomeStatementLines(c) != nil {
		t.Error("Expected no detailed statements without a breakdown")
	}
}

func TestBoardroomBriefMetrics(t *testing.T) {
	m := BoardroomBriefMetrics()
	if math.Abs(m.LiquidezCorrente-1.2) > 0.0001 {
		t.Errorf("Expected liquidez corrente 1.2, got %v", m.LiquidezCorrente)
	}
	// 140 / 500 * 365 = 102.2 days
	if math.Abs(m.PrazoRecebimento-102.2) > 0.0001 {
		t.Errorf("Expected prazo de recebimento 102.2, got %v", m.PrazoRecebimento)
	}
	if m.Caixa != 10 {
		t.Errorf("Expected caixa 10, got %v", m.Caixa)
	}
}

func TestComparisonTable(t *testing.T) {
	rows := ComparisonTable(nil)
	if len(rows) != 7 {
		t.Fatalf("Expected 7 indicator rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row.Cells) != 3 {
			t.Errorf("Expected 3 cells for %s, got %d", row.Indicator.Key, len(row.Cells))
		}
	}

	filtered := ComparisonTable([]string{"roe"})
	if len(filtered) != 1 || filtered[0].Indicator.Key != "roe" {
		t.Fatalf("Expected only the roe row, got %+v", filtered)
	}
	// ROE MagLu: 500/15000*100
	if math.Abs(filtered[0].Cells[0].Value-500.0/15000.0*100) > 0.0001 {
		t.Errorf("Expected Magazine Luiza ROE 3.33, got %v", filtered[0].Cells[0].Value)
	}
}
