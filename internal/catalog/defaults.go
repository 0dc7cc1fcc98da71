package catalog

import "finalyzer/pkg/contracts/domain"

// aliases builds a weighted alias list. Texts are stored as written in real
// statements; the matcher normalizes both sides before comparing, so a single
// spelling covers its punctuation and casing variants.
func aliases(texts ...string) []Alias {
	out := make([]Alias, 0, len(texts))
	for _, t := range texts {
		out = append(out, Alias{Text: t})
	}
	return out
}

func weighted(text string, weight float64) Alias {
	return Alias{Text: text, Weight: weight}
}

// DefaultFields returns the built-in canonical field registry. Alias lists
// come from line items observed across Indian, US, and IFRS-style statements.
// Ambiguous aliases carry a reduced weight so an exact hit on a specific
// field always beats a fuzzy hit on a generic one.
func DefaultFields() []Field {
	return []Field{
		// Profit & loss
		{
			ID: "revenue", Name: "Revenue", Statement: domain.StatementProfitLoss,
			Aliases: append(aliases(
				"revenue", "total revenue", "net revenue", "sales", "net sales",
				"total sales", "turnover", "net turnover", "revenue from operations",
				"gross sales",
			), weighted("income from operations", 0.85)),
		},
		{
			ID: "cogs", Name: "Cost of Goods Sold", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"cost of goods sold", "cogs", "cost of sales", "cost of revenue",
				"direct costs", "cost of materials", "raw materials consumed",
			),
		},
		{
			ID: "gross_profit", Name: "Gross Profit", Statement: domain.StatementProfitLoss,
			Aliases: append(aliases("gross profit", "gross income"), weighted("gross margin", 0.9)),
		},
		{
			ID: "operating_expenses", Name: "Operating Expenses", Statement: domain.StatementProfitLoss,
			Aliases: append(aliases(
				"operating expenses", "operating costs", "total operating expenses",
			), weighted("selling general and administrative expenses", 0.9)),
		},
		{
			ID: "ebitda", Name: "EBITDA", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"ebitda", "operating profit before depreciation", "pbdt",
				"profit before depreciation and tax",
			),
		},
		{
			ID: "depreciation_amortization", Name: "Depreciation & Amortization", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"depreciation and amortization", "depreciation and amortisation",
				"depreciation", "amortization",
			),
		},
		{
			ID: "operating_income", Name: "Operating Income", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"ebit", "operating profit", "operating income", "profit from operations",
				"earnings before interest and tax",
			),
		},
		{
			ID: "interest_expense", Name: "Interest Expense", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"interest expense", "finance costs", "interest cost",
				"financial expenses", "borrowing costs",
			),
		},
		{
			ID: "profit_before_tax", Name: "Profit Before Tax", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"profit before tax", "pbt", "earnings before tax", "income before tax",
				"profit before income tax",
			),
		},
		{
			ID: "tax_expense", Name: "Tax Expense", Statement: domain.StatementProfitLoss,
			Aliases: aliases(
				"tax expense", "income tax", "provision for tax", "current tax",
				"tax provision",
			),
		},
		{
			ID: "net_income", Name: "Net Income", Statement: domain.StatementProfitLoss,
			Aliases: append(aliases(
				"net profit", "net income", "profit after tax", "pat", "net earnings",
				"profit for the year", "profit attributable to shareholders",
				"net profit after tax",
			), weighted("total comprehensive income", 0.8)),
		},

		// Balance sheet
		{
			ID: "current_assets", Name: "Current Assets", Statement: domain.StatementBalanceSheet,
			Aliases: aliases("current assets", "total current assets"),
		},
		{
			ID: "non_current_assets", Name: "Non-Current Assets", Statement: domain.StatementBalanceSheet,
			Aliases: aliases("non-current assets", "fixed assets", "total non-current assets"),
		},
		{
			ID: "total_assets", Name: "Total Assets", Statement: domain.StatementBalanceSheet,
			Aliases: append(aliases("total assets", "total asset"), weighted("assets", 0.9)),
		},
		{
			ID: "current_liabilities", Name: "Current Liabilities", Statement: domain.StatementBalanceSheet,
			Aliases: aliases("current liabilities", "total current liabilities"),
		},
		{
			ID: "non_current_liabilities", Name: "Non-Current Liabilities", Statement: domain.StatementBalanceSheet,
			Aliases: aliases(
				"non-current liabilities", "total non-current liabilities",
				"long term liabilities",
			),
		},
		{
			ID: "total_liabilities", Name: "Total Liabilities", Statement: domain.StatementBalanceSheet,
			Aliases: append(aliases("total liabilities", "total liability"), weighted("liabilities", 0.9)),
		},
		{
			ID: "share_capital", Name: "Share Capital", Statement: domain.StatementBalanceSheet,
			Aliases: aliases(
				"share capital", "equity share capital", "common stock",
				"paid up capital", "capital stock",
			),
		},
		{
			ID: "reserves_surplus", Name: "Reserves & Surplus", Statement: domain.StatementBalanceSheet,
			Aliases: aliases(
				"reserves and surplus", "retained earnings", "accumulated surplus",
				"other reserves",
			),
		},
		{
			ID: "total_equity", Name: "Total Equity", Statement: domain.StatementBalanceSheet,
			Aliases: append(aliases(
				"shareholders equity", "total equity", "net worth",
				"stockholders equity", "equity attributable to shareholders",
				"shareholders funds", "total shareholders funds",
			), weighted("equity", 0.9)),
		},
		{
			ID: "short_term_debt", Name: "Short-Term Debt", Statement: domain.StatementBalanceSheet,
			Aliases: aliases(
				"short-term debt", "current borrowings", "short-term borrowings",
				"current debt",
			),
		},
		{
			ID: "long_term_debt", Name: "Long-Term Debt", Statement: domain.StatementBalanceSheet,
			Aliases: append(aliases(
				"long-term debt", "non-current borrowings", "long-term borrowings",
			), weighted("secured loans", 0.8), weighted("unsecured loans", 0.8)),
		},
		{
			ID: "total_debt", Name: "Total Debt", Statement: domain.StatementBalanceSheet,
			Aliases: append(aliases("total debt", "total borrowings"),
				weighted("borrowings", 0.9), weighted("debt", 0.9)),
		},
		{
			ID: "cash", Name: "Cash & Equivalents", Statement: domain.StatementBalanceSheet,
			Aliases: aliases(
				"cash and cash equivalents", "cash at end", "closing cash",
				"cash and bank balances", "cash balance", "cash and bank",
			),
		},
		{
			ID: "working_capital", Name: "Working Capital", Statement: domain.StatementBalanceSheet,
			Aliases: aliases("working capital", "net working capital"),
		},

		// Cash flow
		{
			ID: "operating_cash_flow", Name: "Operating Cash Flow", Statement: domain.StatementCashFlow,
			Aliases: aliases(
				"cash flow from operating activities", "operating cash flow",
				"net cash from operating activities", "cash from operations",
				"cash generated from operations",
			),
		},
		{
			ID: "investing_cash_flow", Name: "Investing Cash Flow", Statement: domain.StatementCashFlow,
			Aliases: aliases(
				"cash flow from investing activities", "investing cash flow",
				"net cash from investing activities", "cash used in investing activities",
			),
		},
		{
			ID: "financing_cash_flow", Name: "Financing Cash Flow", Statement: domain.StatementCashFlow,
			Aliases: aliases(
				"cash flow from financing activities", "financing cash flow",
				"net cash from financing activities", "cash used in financing activities",
			),
		},
		{
			ID: "net_cash_flow", Name: "Net Cash Flow", Statement: domain.StatementCashFlow,
			Aliases: aliases(
				"net cash flow", "net increase in cash",
				"net increase in cash and cash equivalents", "net change in cash",
			),
		},
		{
			ID: "capex", Name: "Capital Expenditure", Statement: domain.StatementCashFlow,
			Aliases: aliases(
				"capital expenditure", "capex", "purchase of fixed assets",
				"additions to fixed assets", "purchase of property plant and equipment",
			),
		},
	}
}

// Default returns the built-in field catalog. It panics on a defect in the
// compiled-in defaults, which only a broken build can produce.
func Default() *Catalog {
	c, err := New(DefaultFields())
	if err != nil {
		panic(err)
	}
	return c
}
