package matcher

import (
	"fmt"

	"finalyzer/internal/catalog"
	"finalyzer/pkg/contracts/domain"
)

// DefaultThreshold is the minimum acceptance score for a match.
const DefaultThreshold = 0.72

// Reason records which scoring pass produced a match.
type Reason string

const (
	// ReasonExact means the normalized label equals a catalog alias.
	ReasonExact Reason = "EXACT"
	// ReasonFuzzy means the match came from similarity scoring.
	ReasonFuzzy Reason = "FUZZY"
)

// Candidate is the outcome of scoring one raw label against the catalog: the
// best-scoring canonical field, the alias that produced the score, and the
// confidence in [0,1].
type Candidate struct {
	Field  domain.FieldID
	Alias  string
	Score  float64
	Reason Reason
}

// scoredAlias is an alias with its normalization precomputed.
type scoredAlias struct {
	text   string
	norm   string
	weight float64
}

type fieldAliases struct {
	id        domain.FieldID
	statement domain.StatementType
	aliases   []scoredAlias
}

// Matcher scores raw statement labels against the canonical field catalog.
// It is pure over its inputs and the immutable catalog, so one instance may
// serve concurrent analysis runs.
type Matcher struct {
	fields    []fieldAliases
	threshold float64
}

// New builds a matcher over the given catalog. A zero threshold selects
// DefaultThreshold. Alias normalization happens once here so Match stays a
// straight scoring loop.
func New(c *catalog.Catalog, threshold float64) (*Matcher, error) {
	if c == nil || c.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("match threshold %v outside [0,1]", threshold)
	}

	fields := make([]fieldAliases, 0, c.Len())
	for _, f := range c.Fields() {
		fa := fieldAliases{id: f.ID, statement: f.Statement}
		for _, a := range f.Aliases {
			norm := Normalize(a.Text)
			if norm == "" {
				continue
			}
			fa.aliases = append(fa.aliases, scoredAlias{
				text:   a.Text,
				norm:   norm,
				weight: a.EffectiveWeight(),
			})
		}
		if len(fa.aliases) > 0 {
			fields = append(fields, fa)
		}
	}
	if len(fields) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	return &Matcher{fields: fields, threshold: threshold}, nil
}

// Threshold returns the acceptance threshold in effect.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match scores rawLabel against every alias of every catalog field whose
// statement type matches st (or is type-agnostic) and returns the single
// best candidate. The second return is false when no candidate reaches the
// acceptance threshold; a score exactly at the threshold is accepted.
//
// Ties break deterministically: an exact statement-type match beats a
// type-agnostic field, then the lexicographically earlier field identifier
// wins. Fields are already sorted by identifier, so keeping the first
// equal-scoring candidate implements the second rule.
func (m *Matcher) Match(rawLabel string, st domain.StatementType) (Candidate, bool) {
	norm := Normalize(rawLabel)
	if norm == "" {
		return Candidate{}, false
	}

	var best Candidate
	var bestStatement domain.StatementType
	haveBest := false

	for _, f := range m.fields {
		if !f.statement.Matches(st) {
			continue
		}
		for _, a := range f.aliases {
			cand := Candidate{Field: f.id, Alias: a.text}
			if norm == a.norm {
				cand.Score = 1.0
				cand.Reason = ReasonExact
			} else {
				cand.Score = Similarity(norm, a.norm) * a.weight
				cand.Reason = ReasonFuzzy
			}

			// On equal scores, an exact statement-type match displaces a
			// type-agnostic incumbent; otherwise the incumbent stays, which
			// keeps the lexicographically earlier identifier.
			replace := !haveBest || cand.Score > best.Score ||
				(cand.Score == best.Score && cand.Field != best.Field &&
					f.statement != domain.StatementAny && bestStatement == domain.StatementAny)
			if replace {
				best = cand
				bestStatement = f.statement
				haveBest = true
			}
		}
	}

	if !haveBest || best.Score < m.threshold {
		return Candidate{}, false
	}
	return best, true
}
