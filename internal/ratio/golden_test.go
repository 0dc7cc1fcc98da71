package ratio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finalyzer/internal/catalog"
	"finalyzer/pkg/contracts/domain"
)

// Golden tests evaluate the full default ratio catalog against a fixed
// two-year statement and pin every cell to a hand-checked value, so any
// change to a formula, scale, or rounding rule shows up as a diff here.

// goldenStatement returns a fully populated 2024 plus a 2023 that omits
// capex, leaving exactly one non-computable cell in the grid.
func goldenStatement() *domain.CanonicalStatement {
	cs := domain.NewCanonicalStatement()

	fixture := map[domain.FieldID]map[int]float64{
		"revenue":             {2023: 8000, 2024: 10000},
		"gross_profit":        {2023: 2800, 2024: 4000},
		"operating_income":    {2023: 1200, 2024: 1500},
		"net_income":          {2023: 400, 2024: 800},
		"ebitda":              {2023: 1600, 2024: 2000},
		"interest_expense":    {2023: 480, 2024: 400},
		"total_assets":        {2023: 16000, 2024: 20000},
		"total_equity":        {2023: 6400, 2024: 8000},
		"current_assets":      {2023: 4500, 2024: 6000},
		"current_liabilities": {2023: 3000, 2024: 3000},
		"cash":                {2023: 900, 2024: 1500},
		"working_capital":     {2023: 1500, 2024: 3000},
		"total_debt":          {2023: 4800, 2024: 5200},
		"operating_cash_flow": {2023: 900, 2024: 1200},
		"capex":               {2024: 700},
	}
	for field, byYear := range fixture {
		for year, value := range byYear {
			cs.Set(field, year, value)
		}
	}
	return cs
}

func TestGoldenDefaultCatalog(t *testing.T) {
	e, err := NewEngine(catalog.DefaultRatioCatalog(), Config{}, nil)
	require.NoError(t, err)

	table, err := e.Evaluate(context.Background(), goldenStatement())
	require.NoError(t, err)

	require.Equal(t, []int{2023, 2024}, table.Years())

	golden := []struct {
		ratioID string
		year    int
		value   float64
		display string
	}{
		{"asset_turnover", 2023, 0.5, "0.50x"},
		{"asset_turnover", 2024, 0.5, "0.50x"},
		{"cash_flow_margin", 2023, 11.25, "11.25%"},
		{"cash_flow_margin", 2024, 12.0, "12.00%"},
		{"cash_ratio", 2023, 0.3, "0.30x"},
		{"cash_ratio", 2024, 0.5, "0.50x"},
		{"current_ratio", 2023, 1.5, "1.50x"},
		{"current_ratio", 2024, 2.0, "2.00x"},
		{"debt_to_assets", 2023, 0.3, "0.30x"},
		{"debt_to_assets", 2024, 0.26, "0.26x"},
		{"debt_to_equity", 2023, 0.75, "0.75x"},
		{"debt_to_equity", 2024, 0.65, "0.65x"},
		{"ebitda_margin", 2023, 20.0, "20.00%"},
		{"ebitda_margin", 2024, 20.0, "20.00%"},
		{"equity_ratio", 2023, 40.0, "40.00%"},
		{"equity_ratio", 2024, 40.0, "40.00%"},
		{"free_cash_flow", 2024, 500.0, "500.00"},
		{"gross_margin", 2023, 35.0, "35.00%"},
		{"gross_margin", 2024, 40.0, "40.00%"},
		{"interest_coverage", 2023, 2.5, "2.50x"},
		{"interest_coverage", 2024, 3.75, "3.75x"},
		{"net_margin", 2023, 5.0, "5.00%"},
		{"net_margin", 2024, 8.0, "8.00%"},
		{"operating_cf_ratio", 2023, 0.3, "0.30x"},
		{"operating_cf_ratio", 2024, 0.4, "0.40x"},
		{"operating_margin", 2023, 15.0, "15.00%"},
		{"operating_margin", 2024, 15.0, "15.00%"},
		{"return_on_assets", 2023, 2.5, "2.50%"},
		{"return_on_assets", 2024, 4.0, "4.00%"},
		{"return_on_equity", 2023, 6.25, "6.25%"},
		{"return_on_equity", 2024, 10.0, "10.00%"},
		{"working_capital_ratio", 2023, 0.09375, "0.09x"},
		{"working_capital_ratio", 2024, 0.15, "0.15x"},
	}
	for _, g := range golden {
		r, ok := table.Result(g.ratioID, g.year)
		require.True(t, ok, "missing cell for %s/%d", g.ratioID, g.year)
		require.True(t, r.Computable, "%s/%d should be computable", g.ratioID, g.year)
		assert.InDelta(t, g.value, r.Value, 1e-9, "%s/%d value", g.ratioID, g.year)
		assert.Equal(t, g.display, table.Display(g.ratioID, g.year), "%s/%d display", g.ratioID, g.year)
	}

	// The 2023 fixture carries no capex, so free cash flow is the single
	// non-computable cell in the grid.
	fcf, ok := table.Result("free_cash_flow", 2023)
	require.True(t, ok)
	assert.False(t, fcf.Computable)
	assert.Equal(t, ReasonMissingField, fcf.Reason)
	assert.Equal(t, domain.FieldID("capex"), fcf.Missing)
	assert.Equal(t, "N/A", table.Display("free_cash_flow", 2023))

	assert.Equal(t, len(golden), table.ComputableCount())
}

func TestGoldenCategoryGrouping(t *testing.T) {
	e, err := NewEngine(catalog.DefaultRatioCatalog(), Config{}, nil)
	require.NoError(t, err)

	table, err := e.Evaluate(context.Background(), goldenStatement())
	require.NoError(t, err)

	groups := table.ByCategory()
	assert.Len(t, groups[catalog.CategoryProfitability], 6)
	assert.Len(t, groups[catalog.CategoryLiquidity], 3)
	assert.Len(t, groups[catalog.CategoryLeverage], 4)
	assert.Len(t, groups[catalog.CategoryEfficiency], 1)
	assert.Len(t, groups[catalog.CategoryCashFlow], 3)

	total := 0
	for _, rs := range groups {
		total += len(rs)
	}
	assert.Equal(t, len(table.Ratios()), total)
}
