package domain

import "sort"

// CanonicalStatement maps canonical fields to per-year values. It holds at
// most one value per (field, year): Set refuses to overwrite, so conflict
// resolution has to happen before a value is written. The mapper assembles
// one per analysis run; consumers treat it as read-only afterwards.
type CanonicalStatement struct {
	values map[FieldID]map[int]float64
}

// NewCanonicalStatement returns an empty canonical statement.
func NewCanonicalStatement() *CanonicalStatement {
	return &CanonicalStatement{values: make(map[FieldID]map[int]float64)}
}

// Set writes a value for (field, year). It returns false without writing when
// the cell is already occupied.
func (cs *CanonicalStatement) Set(field FieldID, year int, value float64) bool {
	byYear, ok := cs.values[field]
	if !ok {
		byYear = make(map[int]float64)
		cs.values[field] = byYear
	}
	if _, occupied := byYear[year]; occupied {
		return false
	}
	byYear[year] = value
	return true
}

// Value returns the value for (field, year) and whether one is present.
func (cs *CanonicalStatement) Value(field FieldID, year int) (float64, bool) {
	v, ok := cs.values[field][year]
	return v, ok
}

// Has reports whether (field, year) carries a value.
func (cs *CanonicalStatement) Has(field FieldID, year int) bool {
	_, ok := cs.values[field][year]
	return ok
}

// Fields returns the canonical fields carrying at least one value, sorted.
func (cs *CanonicalStatement) Fields() []FieldID {
	fields := make([]FieldID, 0, len(cs.values))
	for f, byYear := range cs.values {
		if len(byYear) > 0 {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// Years returns the union of fiscal years across all fields, ascending.
func (cs *CanonicalStatement) Years() []int {
	seen := make(map[int]bool)
	for _, byYear := range cs.values {
		for y := range byYear {
			seen[y] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// FieldYears returns the fiscal years carrying a value for one field, ascending.
func (cs *CanonicalStatement) FieldYears(field FieldID) []int {
	byYear := cs.values[field]
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Len returns the total number of populated (field, year) cells.
func (cs *CanonicalStatement) Len() int {
	n := 0
	for _, byYear := range cs.values {
		n += len(byYear)
	}
	return n
}
