package domain

import (
	"fmt"
	"sort"
)

// StatementType identifies one of the three financial statement types the
// analyzer understands. The set is closed; anything else is a configuration
// error, never bad input data.
type StatementType string

const (
	StatementProfitLoss   StatementType = "profit_loss"
	StatementBalanceSheet StatementType = "balance_sheet"
	StatementCashFlow     StatementType = "cash_flow"

	// StatementAny marks catalog fields that may appear on any statement.
	// It is never a valid input statement type.
	StatementAny StatementType = "any"
)

// ErrUnknownStatement is returned when an input statement type falls outside
// the closed set.
var ErrUnknownStatement = fmt.Errorf("unknown statement type")

// Statements lists the valid input statement types in merge precedence order:
// a field claimed by an earlier statement wins a cross-statement conflict.
func Statements() []StatementType {
	return []StatementType{StatementProfitLoss, StatementBalanceSheet, StatementCashFlow}
}

// IsValid reports whether st is a valid input statement type.
func (st StatementType) IsValid() bool {
	switch st {
	case StatementProfitLoss, StatementBalanceSheet, StatementCashFlow:
		return true
	default:
		return false
	}
}

// Precedence returns the merge precedence of the statement type. Lower values
// win cross-statement conflicts. Unknown types sort last.
func (st StatementType) Precedence() int {
	switch st {
	case StatementProfitLoss:
		return 0
	case StatementBalanceSheet:
		return 1
	case StatementCashFlow:
		return 2
	default:
		return 3
	}
}

// String returns the human-readable statement name.
func (st StatementType) String() string {
	switch st {
	case StatementProfitLoss:
		return "P&L"
	case StatementBalanceSheet:
		return "Balance Sheet"
	case StatementCashFlow:
		return "Cash Flow"
	case StatementAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Matches reports whether a catalog field declared for st may claim a line
// item from input statement other. Type-agnostic fields match everything.
func (st StatementType) Matches(other StatementType) bool {
	return st == StatementAny || st == other
}

// FieldID identifies a canonical financial concept (e.g. "revenue",
// "total_equity") independent of any company's reporting vocabulary.
type FieldID string

// RawLineItem is one row of a cleaned statement table as supplied by the
// ingestion collaborator: a free-text label and a sparse mapping from fiscal
// year to a currency-normalized value. The core treats values as unitless.
type RawLineItem struct {
	Label  string          `json:"label"`
	Values map[int]float64 `json:"values"`
}

// Years returns the fiscal years carrying a value, ascending.
func (li RawLineItem) Years() []int {
	years := make([]int, 0, len(li.Values))
	for y := range li.Values {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// IsEmpty reports whether the line item carries no values at all.
func (li RawLineItem) IsEmpty() bool {
	return len(li.Values) == 0
}

// StatementSet groups the cleaned line items of one company by statement
// type. Any of the three statements may be absent.
type StatementSet struct {
	ProfitLoss   []RawLineItem `json:"profit_loss"`
	BalanceSheet []RawLineItem `json:"balance_sheet"`
	CashFlow     []RawLineItem `json:"cash_flow"`
}

// Items returns the line items for the given statement type.
func (ss StatementSet) Items(st StatementType) []RawLineItem {
	switch st {
	case StatementProfitLoss:
		return ss.ProfitLoss
	case StatementBalanceSheet:
		return ss.BalanceSheet
	case StatementCashFlow:
		return ss.CashFlow
	default:
		return nil
	}
}

// IsEmpty reports whether the set carries no line items at all.
func (ss StatementSet) IsEmpty() bool {
	return len(ss.ProfitLoss) == 0 && len(ss.BalanceSheet) == 0 && len(ss.CashFlow) == 0
}
