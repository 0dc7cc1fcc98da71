package ratio

import (
	"fmt"
	"sort"

	"finalyzer/internal/catalog"
	"finalyzer/pkg/contracts/domain"
)

// ReasonCode is the machine-readable reason a cell was not computable.
type ReasonCode string

const (
	ReasonMissingField   ReasonCode = "missing_field"
	ReasonDivisionByZero ReasonCode = "division_by_zero"
)

// Result is the outcome of evaluating one ratio for one fiscal year: either
// a value at full floating-point precision, or an explicit reason it could
// not be computed. There is no null that coerces to zero.
type Result struct {
	RatioID    string         `json:"ratio_id"`
	Year       int            `json:"year"`
	Scale      catalog.Scale  `json:"scale"`
	Value      float64        `json:"value,omitempty"`
	Computable bool           `json:"computable"`
	Reason     ReasonCode     `json:"reason,omitempty"`
	Missing    domain.FieldID `json:"missing,omitempty"`
}

// Explain returns the human-readable form of a non-computable result.
func (r Result) Explain() string {
	switch r.Reason {
	case ReasonMissingField:
		return fmt.Sprintf("not computable: missing field %s", r.Missing)
	case ReasonDivisionByZero:
		return "not computable: division by zero"
	default:
		return ""
	}
}

// Display formats the result for presentation at the given decimal
// precision. Rounding happens only here; the stored value keeps full
// precision so derived reporting does not compound rounding error.
func (r Result) Display(precision int) string {
	if !r.Computable {
		return "N/A"
	}
	switch r.Scale {
	case catalog.ScalePercent:
		return fmt.Sprintf("%.*f%%", precision, r.Value)
	case catalog.ScaleCurrency:
		return groupThousands(fmt.Sprintf("%.*f", precision, r.Value))
	default:
		return fmt.Sprintf("%.*fx", precision, r.Value)
	}
}

// groupThousands inserts comma separators into the integer part of a
// formatted number.
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	formatted := string(out) + frac
	if neg {
		return "-" + formatted
	}
	return formatted
}

// Table is the full evaluation output: one Result per (ratio, year) cell,
// in canonical order (ratio identifier, then ascending year) regardless of
// the order cells were computed in.
type Table struct {
	ratios    []catalog.Ratio
	years     []int
	cells     map[string]map[int]Result
	precision int
}

// Ratios returns the ratio definitions in table order.
func (t *Table) Ratios() []catalog.Ratio {
	return t.ratios
}

// Years returns the fiscal years the table covers, ascending.
func (t *Table) Years() []int {
	return t.years
}

// Result returns the cell for (ratioID, year).
func (t *Table) Result(ratioID string, year int) (Result, bool) {
	r, ok := t.cells[ratioID][year]
	return r, ok
}

// Display formats the cell for (ratioID, year) at the table's precision.
// Cells outside the table render as "N/A".
func (t *Table) Display(ratioID string, year int) string {
	r, ok := t.cells[ratioID][year]
	if !ok {
		return "N/A"
	}
	return r.Display(t.precision)
}

// Results returns every cell in canonical (ratio, year) order.
func (t *Table) Results() []Result {
	out := make([]Result, 0, len(t.ratios)*len(t.years))
	for _, r := range t.ratios {
		for _, y := range t.years {
			out = append(out, t.cells[r.ID][y])
		}
	}
	return out
}

// ComputableCount returns how many cells carry a value, useful as a quick
// health signal: zero computable cells is a valid, if degenerate, result.
func (t *Table) ComputableCount() int {
	n := 0
	for _, byYear := range t.cells {
		for _, r := range byYear {
			if r.Computable {
				n++
			}
		}
	}
	return n
}

// ByCategory returns the table's ratio definitions grouped by category,
// with deterministic ordering inside each group.
func (t *Table) ByCategory() map[catalog.Category][]catalog.Ratio {
	groups := make(map[catalog.Category][]catalog.Ratio)
	for _, r := range t.ratios {
		groups[r.Category] = append(groups[r.Category], r)
	}
	for _, rs := range groups {
		sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	}
	return groups
}
