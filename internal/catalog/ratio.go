package catalog

import (
	"fmt"
	"sort"

	"finalyzer/pkg/contracts/domain"
)

// Category groups ratio definitions for reporting.
type Category string

const (
	CategoryProfitability Category = "profitability"
	CategoryLiquidity     Category = "liquidity"
	CategoryLeverage      Category = "leverage"
	CategoryEfficiency    Category = "efficiency"
	CategoryCashFlow      Category = "cash_flow"
)

// IsValid reports whether the category is one of the known groups.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProfitability, CategoryLiquidity, CategoryLeverage, CategoryEfficiency, CategoryCashFlow:
		return true
	default:
		return false
	}
}

// Scale is the output scale of a ratio: a plain quotient, a percentage
// (multiplied by 100 at evaluation), or an absolute currency amount.
type Scale string

const (
	ScaleRatio    Scale = "ratio"
	ScalePercent  Scale = "percent"
	ScaleCurrency Scale = "currency"
)

// IsValid reports whether the scale is one of the known output scales.
func (s Scale) IsValid() bool {
	switch s {
	case ScaleRatio, ScalePercent, ScaleCurrency:
		return true
	default:
		return false
	}
}

// Op is the operation a ratio formula applies to its two operands.
type Op string

const (
	// OpQuotient divides the left operand by the right one. Division is
	// subject to the engine's safe-division rules.
	OpQuotient Op = "quotient"
	// OpDifference subtracts the right operand from the left one.
	OpDifference Op = "difference"
)

// Formula is a declarative pure formula over two canonical fields. Keeping
// formulas declarative lets the ratio catalog live in configuration while
// malformed definitions still fail at load time.
type Formula struct {
	Op    Op             `yaml:"op"`
	Left  domain.FieldID `yaml:"left"`
	Right domain.FieldID `yaml:"right"`
}

// Inputs returns the canonical fields the formula requires, in evaluation
// order.
func (f Formula) Inputs() []domain.FieldID {
	return []domain.FieldID{f.Left, f.Right}
}

// Validate checks the formula for structural defects.
func (f Formula) Validate() error {
	if f.Op != OpQuotient && f.Op != OpDifference {
		return fmt.Errorf("%w: unknown op %q", ErrMalformedFormula, f.Op)
	}
	if f.Left == "" || f.Right == "" {
		return fmt.Errorf("%w: missing operand", ErrMalformedFormula)
	}
	return nil
}

// Ratio is one named financial ratio: which fields it needs, how they
// combine, and how the result is scaled for presentation.
type Ratio struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Category Category `yaml:"category" validate:"required"`
	Formula  Formula  `yaml:"formula"`
	Scale    Scale    `yaml:"scale" validate:"required"`
}

// Inputs returns the ordered canonical fields the ratio requires.
func (r Ratio) Inputs() []domain.FieldID {
	return r.Formula.Inputs()
}

// RatioCatalog is the immutable registry of ratio definitions, ordered by
// identifier so that evaluation output is reproducible.
type RatioCatalog struct {
	ratios []Ratio
	byID   map[string]Ratio
}

// NewRatioCatalog builds a ratio catalog, validating every definition.
func NewRatioCatalog(ratios []Ratio) (*RatioCatalog, error) {
	if len(ratios) == 0 {
		return nil, ErrEmptyRatioCatalog
	}

	byID := make(map[string]Ratio, len(ratios))
	for _, r := range ratios {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("ratio %q: %w", r.ID, err)
		}
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("ratio %q: unknown category %q", r.ID, r.Category)
		}
		if !r.Scale.IsValid() {
			return nil, fmt.Errorf("ratio %q: unknown scale %q", r.ID, r.Scale)
		}
		if err := r.Formula.Validate(); err != nil {
			return nil, fmt.Errorf("ratio %q: %w", r.ID, err)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate ratio id %q", r.ID)
		}
		byID[r.ID] = r
	}

	sorted := make([]Ratio, len(ratios))
	copy(sorted, ratios)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &RatioCatalog{ratios: sorted, byID: byID}, nil
}

// Ratios returns all definitions ordered by identifier.
func (rc *RatioCatalog) Ratios() []Ratio {
	return rc.ratios
}

// Ratio returns the definition with the given identifier.
func (rc *RatioCatalog) Ratio(id string) (Ratio, bool) {
	r, ok := rc.byID[id]
	return r, ok
}

// Len returns the number of ratio definitions.
func (rc *RatioCatalog) Len() int {
	return len(rc.ratios)
}

// ValidateFields checks that every formula operand refers to a field the
// field catalog defines. Run once at start-up, after both catalogs load.
func (rc *RatioCatalog) ValidateFields(fields *Catalog) error {
	for _, r := range rc.ratios {
		for _, id := range r.Inputs() {
			if !fields.Has(id) {
				return fmt.Errorf("%w: ratio %q references unknown field %q", ErrMalformedFormula, r.ID, id)
			}
		}
	}
	return nil
}
