package ratio

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"finalyzer/internal/catalog"
	"finalyzer/pkg/contracts/domain"
)

// Defaults for engine configuration.
const (
	DefaultPrecision      = 2
	DefaultEpsilon        = 1e-9
	DefaultMaxConcurrency = 4
)

// Config carries the engine's tunables. Zero values select the defaults.
type Config struct {
	// Precision is the decimal precision applied at presentation only.
	Precision int
	// Epsilon is the magnitude below which a denominator counts as zero.
	Epsilon float64
	// MaxConcurrency bounds parallel cell evaluation.
	MaxConcurrency int
}

// Engine evaluates a ratio catalog against a canonical statement. It holds
// only immutable configuration, so one Engine may serve concurrent runs.
type Engine struct {
	catalog        *catalog.RatioCatalog
	precision      int
	epsilon        float64
	maxConcurrency int
	logger         *slog.Logger
}

// NewEngine creates a ratio engine over the given catalog.
func NewEngine(rc *catalog.RatioCatalog, cfg Config, logger *slog.Logger) (*Engine, error) {
	if rc == nil || rc.Len() == 0 {
		return nil, catalog.ErrEmptyRatioCatalog
	}
	if cfg.Precision < 0 {
		return nil, fmt.Errorf("precision %d is negative", cfg.Precision)
	}
	if cfg.Precision == 0 {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		catalog:        rc,
		precision:      cfg.Precision,
		epsilon:        cfg.Epsilon,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         logger,
	}, nil
}

// Evaluate computes every catalog ratio for every fiscal year in the
// statement. Cells are independent, so the (ratio, year) grid evaluates in
// parallel; results land in preassigned slots, which keeps the output table
// in canonical order no matter which cell finished first.
//
// A cell that cannot be computed is a result, not an error: missing inputs
// and zero denominators are reported per cell and never abort the run.
func (e *Engine) Evaluate(ctx context.Context, cs *domain.CanonicalStatement) (*Table, error) {
	if cs == nil {
		return nil, fmt.Errorf("canonical statement is nil")
	}

	ratios := e.catalog.Ratios()
	years := cs.Years()

	grid := make([]Result, len(ratios)*len(years))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)

	for i, r := range ratios {
		for j, year := range years {
			r, year := r, year
			slot := i*len(years) + j
			g.Go(func() error {
				grid[slot] = e.evaluateCell(r, cs, year)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := &Table{
		ratios:    ratios,
		years:     years,
		cells:     make(map[string]map[int]Result, len(ratios)),
		precision: e.precision,
	}
	for i, r := range ratios {
		byYear := make(map[int]Result, len(years))
		for j, year := range years {
			byYear[year] = grid[i*len(years)+j]
		}
		table.cells[r.ID] = byYear
	}

	e.logger.InfoContext(ctx, "ratio evaluation completed",
		"ratios", len(ratios),
		"years", len(years),
		"computable_cells", table.ComputableCount(),
		"total_cells", len(grid),
	)

	return table, nil
}

// evaluateCell computes one (ratio, year) cell.
func (e *Engine) evaluateCell(r catalog.Ratio, cs *domain.CanonicalStatement, year int) Result {
	result := Result{RatioID: r.ID, Year: year, Scale: r.Scale}

	// Every required field must be present; no partial evaluation and no
	// default substitution. The first missing field in input order names
	// the reason.
	for _, f := range r.Inputs() {
		if !cs.Has(f, year) {
			result.Reason = ReasonMissingField
			result.Missing = f
			return result
		}
	}

	left, _ := cs.Value(r.Formula.Left, year)
	right, _ := cs.Value(r.Formula.Right, year)

	var value float64
	switch r.Formula.Op {
	case catalog.OpQuotient:
		if math.Abs(right) <= e.epsilon {
			result.Reason = ReasonDivisionByZero
			return result
		}
		value = left / right
	case catalog.OpDifference:
		value = left - right
	}

	if r.Scale == catalog.ScalePercent {
		value *= 100
	}

	result.Value = value
	result.Computable = true
	return result
}
