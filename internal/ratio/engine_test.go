package ratio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finalyzer/internal/catalog"
	"finalyzer/pkg/contracts/domain"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(catalog.DefaultRatioCatalog(), cfg, nil)
	require.NoError(t, err)
	return e
}

func TestNewEngineValidation(t *testing.T) {
	_, err := NewEngine(nil, Config{}, nil)
	assert.ErrorIs(t, err, catalog.ErrEmptyRatioCatalog)

	_, err = NewEngine(catalog.DefaultRatioCatalog(), Config{Precision: -1}, nil)
	assert.Error(t, err)

	e, err := NewEngine(catalog.DefaultRatioCatalog(), Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrecision, e.precision)
	assert.Equal(t, DefaultEpsilon, e.epsilon)
	assert.Equal(t, DefaultMaxConcurrency, e.maxConcurrency)
}

func TestEvaluateComputesRatios(t *testing.T) {
	e := newTestEngine(t, Config{})

	cs := domain.NewCanonicalStatement()
	cs.Set("revenue", 2024, 1000)
	cs.Set("net_income", 2024, 120)
	cs.Set("total_assets", 2024, 5000)
	cs.Set("total_equity", 2024, 2000)

	table, err := e.Evaluate(context.Background(), cs)
	require.NoError(t, err)

	tests := []struct {
		ratioID string
		want    float64
	}{
		{"net_margin", 12.0},        // 120/1000 as percent
		{"return_on_assets", 2.4},   // 120/5000 as percent
		{"return_on_equity", 6.0},   // 120/2000 as percent
		{"equity_ratio", 40.0},      // 2000/5000 as percent
		{"asset_turnover", 0.2},     // 1000/5000
	}
	for _, tt := range tests {
		r, ok := table.Result(tt.ratioID, 2024)
		require.True(t, ok, "missing cell for %s", tt.ratioID)
		require.True(t, r.Computable, "%s should be computable", tt.ratioID)
		assert.InDelta(t, tt.want, r.Value, 1e-9, tt.ratioID)
	}
}

func TestEvaluateMissingFieldIsPerCell(t *testing.T) {
	e := newTestEngine(t, Config{})

	// total_equity absent in 2020: ROE degrades, current_ratio does not.
	cs := domain.NewCanonicalStatement()
	cs.Set("net_income", 2020, 120)
	cs.Set("current_assets", 2020, 700)
	cs.Set("current_liabilities", 2020, 400)

	table, err := e.Evaluate(context.Background(), cs)
	require.NoError(t, err)

	roe, ok := table.Result("return_on_equity", 2020)
	require.True(t, ok)
	assert.False(t, roe.Computable)
	assert.Equal(t, ReasonMissingField, roe.Reason)
	assert.Equal(t, domain.FieldID("total_equity"), roe.Missing)
	assert.Equal(t, "not computable: missing field total_equity", roe.Explain())

	current, ok := table.Result("current_ratio", 2020)
	require.True(t, ok)
	require.True(t, current.Computable)
	assert.InDelta(t, 1.75, current.Value, 1e-9)
}

func TestEvaluateSafeDivision(t *testing.T) {
	e := newTestEngine(t, Config{})

	cs := domain.NewCanonicalStatement()
	cs.Set("net_income", 2024, 120)
	cs.Set("total_equity", 2024, 0)
	cs.Set("revenue", 2024, 1000)
	cs.Set("total_assets", 2024, 1e-12) // within epsilon of zero

	table, err := e.Evaluate(context.Background(), cs)
	require.NoError(t, err)

	for _, id := range []string{"return_on_equity", "asset_turnover"} {
		r, ok := table.Result(id, 2024)
		require.True(t, ok)
		assert.False(t, r.Computable, "%s must not divide by zero", id)
		assert.Equal(t, ReasonDivisionByZero, r.Reason)
		assert.Equal(t, "not computable: division by zero", r.Explain())
	}
}

func TestEvaluateFreeCashFlow(t *testing.T) {
	e := newTestEngine(t, Config{})

	t.Run("difference with currency scale", func(t *testing.T) {
		cs := domain.NewCanonicalStatement()
		cs.Set("operating_cash_flow", 2024, 300)
		cs.Set("capex", 2024, 80)

		table, err := e.Evaluate(context.Background(), cs)
		require.NoError(t, err)

		fcf, ok := table.Result("free_cash_flow", 2024)
		require.True(t, ok)
		require.True(t, fcf.Computable)
		assert.InDelta(t, 220.0, fcf.Value, 1e-9)
		assert.Equal(t, "220.00", fcf.Display(2))
	})

	t.Run("missing capex is not computable", func(t *testing.T) {
		cs := domain.NewCanonicalStatement()
		cs.Set("operating_cash_flow", 2024, 300)

		table, err := e.Evaluate(context.Background(), cs)
		require.NoError(t, err)

		fcf, ok := table.Result("free_cash_flow", 2024)
		require.True(t, ok)
		assert.False(t, fcf.Computable)
		assert.Equal(t, domain.FieldID("capex"), fcf.Missing)
	})
}

func TestEvaluateCanonicalOrder(t *testing.T) {
	e := newTestEngine(t, Config{MaxConcurrency: 8})

	cs := domain.NewCanonicalStatement()
	cs.Set("revenue", 2022, 800)
	cs.Set("revenue", 2023, 900)
	cs.Set("revenue", 2024, 1000)
	cs.Set("net_income", 2023, 90)

	table, err := e.Evaluate(context.Background(), cs)
	require.NoError(t, err)

	results := table.Results()
	require.Len(t, results, len(table.Ratios())*3)

	// Results iterate in (ratio id, ascending year) order.
	idx := 0
	for _, r := range table.Ratios() {
		for _, y := range []int{2022, 2023, 2024} {
			assert.Equal(t, r.ID, results[idx].RatioID)
			assert.Equal(t, y, results[idx].Year)
			idx++
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	e := newTestEngine(t, Config{MaxConcurrency: 8})

	cs := domain.NewCanonicalStatement()
	cs.Set("revenue", 2023, 900)
	cs.Set("revenue", 2024, 1000)
	cs.Set("net_income", 2023, 90)
	cs.Set("net_income", 2024, 120)
	cs.Set("total_assets", 2024, 5000)

	first, err := e.Evaluate(context.Background(), cs)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := e.Evaluate(context.Background(), cs)
		require.NoError(t, err)
		assert.Equal(t, first.Results(), again.Results())
	}
}

func TestEvaluateDegenerateInputs(t *testing.T) {
	e := newTestEngine(t, Config{})

	t.Run("nil statement is a config error", func(t *testing.T) {
		_, err := e.Evaluate(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("empty statement yields empty table", func(t *testing.T) {
		table, err := e.Evaluate(context.Background(), domain.NewCanonicalStatement())
		require.NoError(t, err)
		assert.Empty(t, table.Years())
		assert.Empty(t, table.Results())
		assert.Zero(t, table.ComputableCount())
	})

	t.Run("all cells uncomputable is a valid result", func(t *testing.T) {
		cs := domain.NewCanonicalStatement()
		cs.Set("tax_expense", 2024, 30) // feeds no ratio

		table, err := e.Evaluate(context.Background(), cs)
		require.NoError(t, err)
		assert.Zero(t, table.ComputableCount())
		assert.Len(t, table.Results(), len(table.Ratios()))
	})
}
