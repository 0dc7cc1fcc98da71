package mapper

import (
	"fmt"

	"finalyzer/pkg/contracts/domain"
)

// derivedRule fills one canonical field from two others when the field
// itself was not reported. Rules only ever combine values the statements
// actually carry; nothing is approximated or defaulted.
type derivedRule struct {
	target   domain.FieldID
	left     domain.FieldID
	right    domain.FieldID
	subtract bool
}

func (r derivedRule) note() string {
	op := "+"
	if r.subtract {
		op = "-"
	}
	return fmt.Sprintf("%s %s %s", r.left, op, r.right)
}

// derivedRules lists the fills in a fixed application order. No rule's
// target feeds another rule, so the order only pins down audit-trail
// ordering.
var derivedRules = []derivedRule{
	{target: "gross_profit", left: "revenue", right: "cogs", subtract: true},
	{target: "operating_income", left: "ebitda", right: "depreciation_amortization", subtract: true},
	{target: "total_equity", left: "share_capital", right: "reserves_surplus"},
	{target: "total_assets", left: "current_assets", right: "non_current_assets"},
	{target: "total_liabilities", left: "current_liabilities", right: "non_current_liabilities"},
	{target: "total_debt", left: "short_term_debt", right: "long_term_debt"},
	{target: "working_capital", left: "current_assets", right: "current_liabilities", subtract: true},
}

// fillDerived completes the merged statement with derivable cells. Mapped
// values always win: a rule never overwrites an occupied cell. Each fill is
// recorded in the audit trail so reviewers can tell reported from computed.
func fillDerived(cs *domain.CanonicalStatement) []FieldMapping {
	var audit []FieldMapping
	years := cs.Years()

	for _, rule := range derivedRules {
		for _, year := range years {
			if cs.Has(rule.target, year) {
				continue
			}
			left, okL := cs.Value(rule.left, year)
			right, okR := cs.Value(rule.right, year)
			if !okL || !okR {
				continue
			}

			value := left + right
			if rule.subtract {
				value = left - right
			}
			cs.Set(rule.target, year, value)
			audit = append(audit, FieldMapping{
				Outcome: OutcomeDerived,
				Field:   rule.target,
				Note:    fmt.Sprintf("year %d: %s", year, rule.note()),
			})
		}
	}
	return audit
}
