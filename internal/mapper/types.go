package mapper

import (
	"fmt"

	"finalyzer/internal/matcher"
	"finalyzer/pkg/contracts/domain"
)

// Outcome classifies one audit-trail entry.
type Outcome string

const (
	// OutcomeMapped records a label resolved to a canonical field.
	OutcomeMapped Outcome = "mapped"
	// OutcomeUnmapped records a label no catalog field claimed.
	OutcomeUnmapped Outcome = "unmapped"
	// OutcomeSuperseded records a value discarded in a conflict. Mapping
	// conflicts are data, never errors; this is their paper trail.
	OutcomeSuperseded Outcome = "superseded"
	// OutcomeDerived records a cell computed from other canonical cells
	// rather than mapped from a raw label.
	OutcomeDerived Outcome = "derived"
)

// FieldMapping is one entry of the mapping audit trail. The slice of these
// produced per run is diagnostic output; ratio computation never reads it.
type FieldMapping struct {
	Label      string               `json:"label,omitempty"`
	Statement  domain.StatementType `json:"statement,omitempty"`
	Outcome    Outcome              `json:"outcome"`
	Field      domain.FieldID       `json:"field,omitempty"`
	Alias      string               `json:"alias,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
	Reason     matcher.Reason       `json:"reason,omitempty"`
	Note       string               `json:"note,omitempty"`
}

// mappedEntry builds the audit entry for a resolved label.
func mappedEntry(label string, st domain.StatementType, cand matcher.Candidate) FieldMapping {
	return FieldMapping{
		Label:      label,
		Statement:  st,
		Outcome:    OutcomeMapped,
		Field:      cand.Field,
		Alias:      cand.Alias,
		Confidence: cand.Score,
		Reason:     cand.Reason,
	}
}

// unmappedEntry builds the audit entry for a label nothing claimed.
func unmappedEntry(label string, st domain.StatementType) FieldMapping {
	return FieldMapping{Label: label, Statement: st, Outcome: OutcomeUnmapped}
}

// supersededEntry builds the audit entry for a value that lost a same-field
// conflict within one statement.
func supersededEntry(st domain.StatementType, field domain.FieldID, year int, loser, winner claim) FieldMapping {
	return FieldMapping{
		Label:      loser.label,
		Statement:  st,
		Outcome:    OutcomeSuperseded,
		Field:      field,
		Confidence: loser.confidence,
		Note: fmt.Sprintf("value %v for year %d superseded by %q (confidence %.2f)",
			loser.value, year, winner.label, winner.confidence),
	}
}

// claim tracks which label currently owns a (field, year) cell while one
// statement is being mapped.
type claim struct {
	label      string
	confidence float64
	value      float64
	order      int
}
