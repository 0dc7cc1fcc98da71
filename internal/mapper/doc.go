// Package mapper turns cleaned statement tables into one canonical statement
// per analysis run.
//
// Each statement's labels go through the matcher once per distinct label;
// resolved values claim (field, year) cells with conflicts decided by
// confidence and input order. The three statements map concurrently, merge
// under a fixed precedence order (P&L, balance sheet, cash flow), and gaps
// that follow arithmetically from reported values are filled afterwards.
//
// Every decision, whether mapped, unmapped, superseded, or derived, lands in
// the FieldMapping audit trail. Mapping failure is data: the only errors Build
// returns are configuration defects such as an unknown statement type.
package mapper
