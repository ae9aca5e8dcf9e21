package indicators

import (
	"math"
	"testing"

	"adm_academy/pkg/models"
)

func ptr(v float64) *float64 { return &v }

// Retail-like snapshot: high current liabilities, thin margin.
func retailSnapshot() models.CompanyFinancials {
	return models.CompanyFinancials{
		AtivoCirculante:   28000,
		Estoques:          ptr(13000),
		PassivoCirculante: 22000,
		AtivoTotal:        45000,
		PassivoTotal:      30000,
		PatrimonioLiquido: 15000,
		ReceitaLiquida:    35000,
		LucroLiquido:      500,
	}
}

func calc(t *testing.T, key string, d models.CompanyFinancials) float64 {
	t.Helper()
	ind, ok := ByKey(key)
	if !ok {
		t.Fatalf("Indicator %s not registered", key)
	}
	return ind.Calculate(d)
}

func TestIndicatorValues(t *testing.T) {
	d := retailSnapshot()

	cases := []struct {
		key      string
		expected float64
	}{
		{"liquidezCorrente", 28000.0 / 22000.0},         // 1.2727
		{"liquidezSeca", (28000.0 - 13000.0) / 22000.0}, // 0.6818
		{"endividamentoGeral", 30000.0 / 45000.0 * 100}, // 66.67%
		{"endividamentoPL", 30000.0 / 15000.0},          // 2.0
		{"margemLiquida", 500.0 / 35000.0 * 100},        // 1.43%
		{"roe", 500.0 / 15000.0 * 100},                  // 3.33%
		{"roa", 500.0 / 45000.0 * 100},                  // 1.11%
	}
	for _, c := range cases {
		got := calc(t, c.key, d)
		if math.Abs(got-c.expected) > 0.0001 {
			t.Errorf("Expected %s %.4f, got %.4f", c.key, c.expected, got)
		}
	}
}

func TestZeroDenominatorYieldsZero(t *testing.T) {
	// Every ratio over an all-zero snapshot is 0, never NaN or Inf.
	var empty models.CompanyFinancials
	empty.Estoques = ptr(0)

	for _, ind := range All() {
		got := ind.Calculate(empty)
		if got != 0 {
			t.Errorf("Expected %s to be 0 on zero denominators, got %f", ind.Key, got)
		}
	}
}

func TestQuickRatioWithoutInventory(t *testing.T) {
	// A company that does not report inventory gets 0, not the current ratio.
	d := retailSnapshot()
	d.Estoques = nil

	if got := calc(t, "liquidezSeca", d); got != 0 {
		t.Errorf("Expected liquidezSeca 0 without inventory, got %f", got)
	}
	// The current ratio is unaffected.
	if got := calc(t, "liquidezCorrente", d); math.Abs(got-28000.0/22000.0) > 0.0001 {
		t.Errorf("Expected liquidezCorrente unchanged, got %f", got)
	}
}

func TestLeverageIsExact(t *testing.T) {
	d := models.CompanyFinancials{PassivoTotal: 30000, PatrimonioLiquido: 15000}
	if got := calc(t, "endividamentoPL", d); got != 2.0 {
		t.Errorf("Expected endividamentoPL exactly 2.0, got %v", got)
	}
}

func TestByKeyUnknown(t *testing.T) {
	if _, ok := ByKey("ebitda"); ok {
		t.Error("Expected unknown key to report not found")
	}
}

func TestFilterPreservesRegistryOrder(t *testing.T) {
	got := Filter([]string{"roe", "liquidezCorrente", "nonsense"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 indicators, got %d", len(got))
	}
	if got[0].Key != "liquidezCorrente" || got[1].Key != "roe" {
		t.Errorf("Expected registry order [liquidezCorrente roe], got [%s %s]", got[0].Key, got[1].Key)
	}
}

func TestReceivableDays(t *testing.T) {
	d := models.CompanyFinancials{
		ReceitaLiquida: 500,
		Detalhes: &models.FinancialDetails{
			Balanco: models.BalanceDetails{ContasAReceber: 140},
		},
	}
	expected := 140.0 / 500.0 * 365 // 102.2 days
	if got := ReceivableDays(d); math.Abs(got-expected) > 0.0001 {
		t.Errorf("Expected %.1f days, got %.1f", expected, got)
	}

	d.Detalhes = nil
	if got := ReceivableDays(d); got != 0 {
		t.Errorf("Expected 0 without detailed breakdown, got %f", got)
	}
}
