package mapper

import (
	"fmt"

	"finalyzer/pkg/contracts/domain"
)

// StatementCounts aggregates audit outcomes for one statement type.
type StatementCounts struct {
	Mapped     int `json:"mapped"`
	Unmapped   int `json:"unmapped"`
	Superseded int `json:"superseded"`
}

// Summary condenses a run's audit trail for diagnostics: how much of each
// statement mapped, which labels did not, and which critical canonical
// fields ended up with no value in any year.
type Summary struct {
	ByStatement    map[domain.StatementType]StatementCounts `json:"by_statement"`
	Derived        int                                      `json:"derived"`
	UnmappedLabels []string                                 `json:"unmapped_labels,omitempty"`
	Warnings       []string                                 `json:"warnings,omitempty"`
}

// criticalFields are the canonical fields whose total absence makes most of
// the ratio catalog uncomputable; their absence is worth a warning even
// though it is not an error.
var criticalFields = []domain.FieldID{
	"revenue",
	"net_income",
	"total_assets",
	"total_equity",
	"operating_cash_flow",
}

// Summarize builds a Summary from an audit trail and the assembled
// statement.
func Summarize(audit []FieldMapping, cs *domain.CanonicalStatement) Summary {
	s := Summary{ByStatement: make(map[domain.StatementType]StatementCounts)}

	for _, entry := range audit {
		counts := s.ByStatement[entry.Statement]
		switch entry.Outcome {
		case OutcomeMapped:
			counts.Mapped++
		case OutcomeUnmapped:
			counts.Unmapped++
			s.UnmappedLabels = append(s.UnmappedLabels,
				fmt.Sprintf("%s: %s", entry.Statement.String(), entry.Label))
		case OutcomeSuperseded:
			counts.Superseded++
		case OutcomeDerived:
			s.Derived++
			continue
		}
		s.ByStatement[entry.Statement] = counts
	}

	for _, field := range criticalFields {
		if len(cs.FieldYears(field)) == 0 {
			s.Warnings = append(s.Warnings, fmt.Sprintf("no value in any year for %s", field))
		}
	}

	return s
}
