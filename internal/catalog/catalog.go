package catalog

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"finalyzer/pkg/contracts/domain"
)

// Configuration errors. These indicate a deployment defect, not bad input
// data, and are fatal to the run that hits them.
var (
	ErrEmptyCatalog      = fmt.Errorf("catalog contains no fields")
	ErrEmptyRatioCatalog = fmt.Errorf("ratio catalog contains no definitions")
	ErrMalformedFormula  = fmt.Errorf("malformed ratio formula")
)

var validate = validator.New()

// Alias is one known spelling of a canonical field together with its base
// weight. Weight scales fuzzy scores only; an exact normalized match is
// always scored 1.0. A zero weight means the default of 1.0.
type Alias struct {
	Text   string  `yaml:"text" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0,lte=1"`
}

// EffectiveWeight returns the alias weight with the 1.0 default applied.
func (a Alias) EffectiveWeight() float64 {
	if a.Weight == 0 {
		return 1.0
	}
	return a.Weight
}

// Field is one canonical financial concept: a stable identifier, a display
// name, the statement it belongs to, and the alias strings it is known by.
type Field struct {
	ID        domain.FieldID       `yaml:"id" validate:"required"`
	Name      string               `yaml:"name" validate:"required"`
	Statement domain.StatementType `yaml:"statement" validate:"required"`
	Aliases   []Alias              `yaml:"aliases" validate:"min=1,dive"`
}

// Catalog is the immutable registry of canonical fields. It is built once at
// process start and safe for concurrent reads.
type Catalog struct {
	fields []Field
	byID   map[domain.FieldID]Field
}

// New builds a catalog from the given fields, validating that the set is
// non-empty, identifiers are unique, and every field declares a known
// statement type and at least one alias.
func New(fields []Field) (*Catalog, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[domain.FieldID]Field, len(fields))
	for _, f := range fields {
		if err := validate.Struct(f); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.ID, err)
		}
		if !f.Statement.IsValid() && f.Statement != domain.StatementAny {
			return nil, fmt.Errorf("field %q: statement type %q: %w", f.ID, f.Statement, domain.ErrUnknownStatement)
		}
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate field id %q", f.ID)
		}
		byID[f.ID] = f
	}

	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &Catalog{fields: sorted, byID: byID}, nil
}

// Fields returns all fields ordered by identifier. The deterministic order
// is what makes matcher tie-breaking reproducible.
func (c *Catalog) Fields() []Field {
	return c.fields
}

// Field returns the field with the given identifier.
func (c *Catalog) Field(id domain.FieldID) (Field, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Has reports whether the catalog defines the given identifier.
func (c *Catalog) Has(id domain.FieldID) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of canonical fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}
