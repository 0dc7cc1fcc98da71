// Package analyzer orchestrates a full analysis run: cleaned line items go
// in, a run report with the canonical statement, mapping audit trail, and
// evaluated ratio table comes out. Each run carries a unique identifier that
// tags every log line it emits.
package analyzer
