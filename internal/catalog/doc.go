// Package catalog holds the two static registries the analyzer runs on: the
// canonical field catalog (stable field identifiers with weighted alias
// lists) and the ratio catalog (declarative two-operand formulas with output
// scales).
//
// Both registries are immutable once built and safe for concurrent reads
// across analysis runs. They ship with compiled-in defaults (DefaultFields,
// DefaultRatios) and can instead be loaded from YAML documents so deployments
// can tune alias lists and ratio sets without a rebuild:
//
//	fields, err := catalog.LoadFields("catalogs/fields.yaml")
//	ratios, err := catalog.LoadRatios("catalogs/ratios.yaml")
//	if err := ratios.ValidateFields(fields); err != nil { ... }
//
// Catalog construction validates everything up front: empty registries,
// duplicate identifiers, unknown statement types, categories, scales, and
// malformed formulas are configuration errors surfaced at load time, never
// during an analysis run.
package catalog
