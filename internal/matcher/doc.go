// Package matcher translates free-text statement labels into canonical field
// identifiers with a confidence score.
//
// Matching runs in two passes over the catalog's alias lists: exact equality
// of normalized strings (score 1.0), then a fuzzy score combining
// typo-tolerant token overlap (60%) with character-level edit similarity
// (40%), scaled by the alias base weight. The single best candidate is
// accepted when its score reaches the configured threshold; ties break on
// exact statement type first, then the lexicographically earlier field
// identifier, so repeated runs always produce the same mapping.
//
// The matcher holds no mutable state after construction and performs no I/O;
// a single instance may be shared across concurrent analysis runs.
package matcher
