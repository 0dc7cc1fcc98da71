package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finalyzer/pkg/contracts/domain"
)

func TestSummarize(t *testing.T) {
	audit := []FieldMapping{
		{Label: "Net Sales", Statement: domain.StatementProfitLoss, Outcome: OutcomeMapped, Field: "revenue", Confidence: 1.0},
		{Label: "Net Profit", Statement: domain.StatementProfitLoss, Outcome: OutcomeMapped, Field: "net_income", Confidence: 1.0},
		{Label: "Sundry Provisions", Statement: domain.StatementProfitLoss, Outcome: OutcomeUnmapped},
		{Label: "Total Assets", Statement: domain.StatementBalanceSheet, Outcome: OutcomeMapped, Field: "total_assets", Confidence: 1.0},
		{Label: "Profit After Tax", Statement: domain.StatementProfitLoss, Outcome: OutcomeSuperseded, Field: "net_income"},
		{Outcome: OutcomeDerived, Field: "working_capital"},
	}

	cs := domain.NewCanonicalStatement()
	cs.Set("revenue", 2024, 1000)
	cs.Set("net_income", 2024, 100)
	cs.Set("total_assets", 2024, 5000)

	s := Summarize(audit, cs)

	pl := s.ByStatement[domain.StatementProfitLoss]
	assert.Equal(t, StatementCounts{Mapped: 2, Unmapped: 1, Superseded: 1}, pl)
	bs := s.ByStatement[domain.StatementBalanceSheet]
	assert.Equal(t, StatementCounts{Mapped: 1}, bs)
	assert.Equal(t, 1, s.Derived)

	require.Len(t, s.UnmappedLabels, 1)
	assert.Equal(t, "P&L: Sundry Provisions", s.UnmappedLabels[0])

	// total_equity and operating_cash_flow never got a value.
	assert.Contains(t, s.Warnings, "no value in any year for total_equity")
	assert.Contains(t, s.Warnings, "no value in any year for operating_cash_flow")
	assert.NotContains(t, s.Warnings, "no value in any year for revenue")
}

func TestSummarizeEmptyRun(t *testing.T) {
	s := Summarize(nil, domain.NewCanonicalStatement())
	assert.Empty(t, s.ByStatement)
	assert.Len(t, s.Warnings, len(criticalFields))
}
