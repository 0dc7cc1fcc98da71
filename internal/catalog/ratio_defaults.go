package catalog

// DefaultRatios returns the built-in ratio registry: seventeen definitions
// across the five reporting categories. Every formula is a quotient or a
// difference over two canonical fields; the output scale decides whether the
// engine reports a multiple, a percentage, or a currency amount.
func DefaultRatios() []Ratio {
	return []Ratio{
		// Profitability
		{
			ID: "gross_margin", Name: "Gross Profit Margin", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "gross_profit", Right: "revenue"}, Scale: ScalePercent,
		},
		{
			ID: "operating_margin", Name: "Operating Profit Margin", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "operating_income", Right: "revenue"}, Scale: ScalePercent,
		},
		{
			ID: "net_margin", Name: "Net Profit Margin", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "net_income", Right: "revenue"}, Scale: ScalePercent,
		},
		{
			ID: "ebitda_margin", Name: "EBITDA Margin", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "ebitda", Right: "revenue"}, Scale: ScalePercent,
		},
		{
			ID: "return_on_assets", Name: "Return on Assets", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "net_income", Right: "total_assets"}, Scale: ScalePercent,
		},
		{
			ID: "return_on_equity", Name: "Return on Equity", Category: CategoryProfitability,
			Formula: Formula{Op: OpQuotient, Left: "net_income", Right: "total_equity"}, Scale: ScalePercent,
		},

		// Liquidity
		{
			ID: "current_ratio", Name: "Current Ratio", Category: CategoryLiquidity,
			Formula: Formula{Op: OpQuotient, Left: "current_assets", Right: "current_liabilities"}, Scale: ScaleRatio,
		},
		{
			ID: "cash_ratio", Name: "Cash Ratio", Category: CategoryLiquidity,
			Formula: Formula{Op: OpQuotient, Left: "cash", Right: "current_liabilities"}, Scale: ScaleRatio,
		},
		{
			ID: "working_capital_ratio", Name: "Working Capital Ratio", Category: CategoryLiquidity,
			Formula: Formula{Op: OpQuotient, Left: "working_capital", Right: "total_assets"}, Scale: ScaleRatio,
		},

		// Leverage
		{
			ID: "debt_to_equity", Name: "Debt to Equity", Category: CategoryLeverage,
			Formula: Formula{Op: OpQuotient, Left: "total_debt", Right: "total_equity"}, Scale: ScaleRatio,
		},
		{
			ID: "debt_to_assets", Name: "Debt to Assets", Category: CategoryLeverage,
			Formula: Formula{Op: OpQuotient, Left: "total_debt", Right: "total_assets"}, Scale: ScaleRatio,
		},
		{
			ID: "equity_ratio", Name: "Equity Ratio", Category: CategoryLeverage,
			Formula: Formula{Op: OpQuotient, Left: "total_equity", Right: "total_assets"}, Scale: ScalePercent,
		},
		{
			ID: "interest_coverage", Name: "Interest Coverage", Category: CategoryLeverage,
			Formula: Formula{Op: OpQuotient, Left: "operating_income", Right: "interest_expense"}, Scale: ScaleRatio,
		},

		// Efficiency
		{
			ID: "asset_turnover", Name: "Asset Turnover", Category: CategoryEfficiency,
			Formula: Formula{Op: OpQuotient, Left: "revenue", Right: "total_assets"}, Scale: ScaleRatio,
		},

		// Cash flow
		{
			ID: "operating_cf_ratio", Name: "Operating Cash Flow Ratio", Category: CategoryCashFlow,
			Formula: Formula{Op: OpQuotient, Left: "operating_cash_flow", Right: "current_liabilities"}, Scale: ScaleRatio,
		},
		{
			ID: "cash_flow_margin", Name: "Cash Flow Margin", Category: CategoryCashFlow,
			Formula: Formula{Op: OpQuotient, Left: "operating_cash_flow", Right: "revenue"}, Scale: ScalePercent,
		},
		{
			ID: "free_cash_flow", Name: "Free Cash Flow", Category: CategoryCashFlow,
			Formula: Formula{Op: OpDifference, Left: "operating_cash_flow", Right: "capex"}, Scale: ScaleCurrency,
		},
	}
}

// DefaultRatioCatalog returns the built-in ratio catalog.
func DefaultRatioCatalog() *RatioCatalog {
	rc, err := NewRatioCatalog(DefaultRatios())
	if err != nil {
		panic(err)
	}
	return rc
}
