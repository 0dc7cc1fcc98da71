package mapper

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"finalyzer/internal/matcher"
	"finalyzer/pkg/contracts/domain"
)

// Mapper assembles canonical statements from cleaned line items. It owns no
// per-run state; every Build call is independent, so one Mapper may serve
// concurrent analysis runs.
type Mapper struct {
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// New creates a mapper over the given matcher.
func New(m *matcher.Matcher, logger *slog.Logger) (*Mapper, error) {
	if m == nil {
		return nil, fmt.Errorf("mapper requires a matcher")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{matcher: m, logger: logger}, nil
}

// BuildStatement maps the line items of a single statement into a partial
// canonical statement plus the audit trail of every label seen.
//
// Matching is memoized per distinct label within the call: matching is pure,
// and the same label repeats across years. Conflicts on a (field, year) cell
// resolve to the strictly higher confidence; on equal confidence the value
// encountered first in input order stays. Either way the discarded value is
// recorded, never silently dropped.
func (m *Mapper) BuildStatement(ctx context.Context, st domain.StatementType, items []domain.RawLineItem) (*domain.CanonicalStatement, []FieldMapping, error) {
	if !st.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatement, st)
	}

	type matchResult struct {
		cand matcher.Candidate
		ok   bool
	}
	cache := make(map[string]matchResult)

	claims := make(map[domain.FieldID]map[int]claim)
	var audit []FieldMapping
	order := 0

	for _, item := range items {
		res, seen := cache[item.Label]
		if !seen {
			res.cand, res.ok = m.matcher.Match(item.Label, st)
			cache[item.Label] = res
		}

		if !res.ok {
			audit = append(audit, unmappedEntry(item.Label, st))
			continue
		}
		audit = append(audit, mappedEntry(item.Label, st, res.cand))

		for _, year := range item.Years() {
			order++
			next := claim{
				label:      item.Label,
				confidence: res.cand.Score,
				value:      item.Values[year],
				order:      order,
			}

			byYear, ok := claims[res.cand.Field]
			if !ok {
				byYear = make(map[int]claim)
				claims[res.cand.Field] = byYear
			}

			current, occupied := byYear[year]
			switch {
			case !occupied:
				byYear[year] = next
			case next.confidence > current.confidence:
				audit = append(audit, supersededEntry(st, res.cand.Field, year, current, next))
				byYear[year] = next
			default:
				// Equal or lower confidence: first writer keeps the cell.
				audit = append(audit, supersededEntry(st, res.cand.Field, year, next, current))
			}
		}
	}

	partial := domain.NewCanonicalStatement()
	for field, byYear := range claims {
		for year, c := range byYear {
			partial.Set(field, year, c.value)
		}
	}

	m.logger.DebugContext(ctx, "statement mapped",
		"statement", st.String(),
		"line_items", len(items),
		"cells", partial.Len(),
		"audit_entries", len(audit),
	)

	return partial, audit, nil
}

// Build maps all three statements of a statement set and merges them into
// one canonical statement, then fills derivable gaps.
//
// The three statements share no mutable state while mapping, so they run
// concurrently; the merge afterwards is sequential and applies the fixed
// precedence order (P&L, then balance sheet, then cash flow) regardless of
// which goroutine finished first.
func (m *Mapper) Build(ctx context.Context, set domain.StatementSet) (*domain.CanonicalStatement, []FieldMapping, error) {
	statements := domain.Statements()

	partials := make([]*domain.CanonicalStatement, len(statements))
	audits := make([][]FieldMapping, len(statements))

	g, gctx := errgroup.WithContext(ctx)
	for i, st := range statements {
		i, st := i, st
		g.Go(func() error {
			partial, audit, err := m.BuildStatement(gctx, st, set.Items(st))
			if err != nil {
				return err
			}
			partials[i] = partial
			audits[i] = audit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	merged := domain.NewCanonicalStatement()
	var audit []FieldMapping
	for i, st := range statements {
		audit = append(audit, audits[i]...)
		audit = append(audit, mergePartial(merged, st, partials[i])...)
	}

	audit = append(audit, fillDerived(merged)...)

	m.logger.InfoContext(ctx, "canonical statement assembled",
		"fields", len(merged.Fields()),
		"years", len(merged.Years()),
		"cells", merged.Len(),
		"audit_entries", len(audit),
	)

	return merged, audit, nil
}

// mergePartial copies one statement's cells into the merged statement.
// A cell already claimed by a higher-precedence statement stays; the losing
// value is recorded as a cross-statement conflict. Under the default catalog
// no field legitimately appears on two statement types, so any entry
// produced here points at a catalog misconfiguration worth reviewing.
func mergePartial(merged *domain.CanonicalStatement, st domain.StatementType, partial *domain.CanonicalStatement) []FieldMapping {
	var conflicts []FieldMapping
	for _, field := range partial.Fields() {
		for _, year := range partial.FieldYears(field) {
			value, _ := partial.Value(field, year)
			if merged.Set(field, year, value) {
				continue
			}
			kept, _ := merged.Value(field, year)
			conflicts = append(conflicts, FieldMapping{
				Statement: st,
				Outcome:   OutcomeSuperseded,
				Field:     field,
				Note: fmt.Sprintf("cross-statement conflict: value %v for year %d superseded by %v from a higher-precedence statement",
					value, year, kept),
			})
		}
	}
	return conflicts
}
