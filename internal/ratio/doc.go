// Package ratio evaluates the ratio catalog against an assembled canonical
// statement, one cell per (ratio definition, fiscal year).
//
// Cells degrade independently: a missing required field or a near-zero
// denominator marks that cell "not computable" with a machine-readable
// reason and leaves every other cell untouched. A run where nothing is
// computable is still a valid result.
//
// Values are stored at full floating-point precision; rounding and display
// formatting (percent, multiple, currency) happen only when a result is
// rendered.
package ratio
