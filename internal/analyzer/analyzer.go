package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"finalyzer/internal/catalog"
	"finalyzer/internal/config"
	"finalyzer/internal/mapper"
	"finalyzer/internal/matcher"
	"finalyzer/internal/ratio"
	"finalyzer/pkg/contracts/domain"
)

// Report is the complete output of one analysis run: the assembled canonical
// statement, the audit trail of every mapping decision, the condensed mapping
// summary, and the evaluated ratio table.
type Report struct {
	RunID     string                     `json:"run_id"`
	Company   string                     `json:"company"`
	StartedAt time.Time                  `json:"started_at"`
	Duration  time.Duration              `json:"duration"`
	Statement *domain.CanonicalStatement `json:"-"`
	Audit     []mapper.FieldMapping      `json:"audit"`
	Summary   mapper.Summary             `json:"summary"`
	Ratios    *ratio.Table               `json:"-"`
}

// Analyzer wires the mapping and ratio stages into one entry point. It holds
// only immutable collaborators, so a single Analyzer serves concurrent runs.
type Analyzer struct {
	mapper *mapper.Mapper
	engine *ratio.Engine
	logger *slog.Logger
}

// New creates an analyzer over the built-in field and ratio catalogs.
func New(opts config.Options, logger *slog.Logger) (*Analyzer, error) {
	return NewWithCatalogs(catalog.Default(), catalog.DefaultRatioCatalog(), opts, logger)
}

// NewWithCatalogs creates an analyzer over caller-supplied catalogs. Every
// field a ratio formula references must exist in the field catalog; a dangling
// reference is a configuration defect and fails construction.
func NewWithCatalogs(fields *catalog.Catalog, ratios *catalog.RatioCatalog, opts config.Options, logger *slog.Logger) (*Analyzer, error) {
	if fields == nil {
		return nil, catalog.ErrEmptyCatalog
	}
	if ratios == nil {
		return nil, catalog.ErrEmptyRatioCatalog
	}
	if err := ratios.ValidateFields(fields); err != nil {
		return nil, fmt.Errorf("ratio catalog: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	m, err := matcher.New(fields, opts.MatchThreshold)
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}
	mp, err := mapper.New(m, logger)
	if err != nil {
		return nil, fmt.Errorf("build mapper: %w", err)
	}
	engine, err := ratio.NewEngine(ratios, ratio.Config{
		Precision:      opts.Precision,
		Epsilon:        opts.Epsilon,
		MaxConcurrency: opts.MaxConcurrency,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build ratio engine: %w", err)
	}

	return &Analyzer{mapper: mp, engine: engine, logger: logger}, nil
}

// Analyze runs the full pipeline for one company: map the three statements
// into a canonical statement, summarize the mapping, and evaluate the ratio
// catalog. Sparse input degrades the output, it never fails the run; the only
// errors are configuration defects and context cancellation.
func (a *Analyzer) Analyze(ctx context.Context, company string, set domain.StatementSet) (*Report, error) {
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID, "company", company)
	started := time.Now()

	logger.InfoContext(ctx, "analysis started",
		"profit_loss_items", len(set.ProfitLoss),
		"balance_sheet_items", len(set.BalanceSheet),
		"cash_flow_items", len(set.CashFlow),
	)
	if set.IsEmpty() {
		logger.WarnContext(ctx, "statement set is empty")
	}

	cs, audit, err := a.mapper.Build(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("map statements: %w", err)
	}

	summary := mapper.Summarize(audit, cs)
	for _, w := range summary.Warnings {
		logger.WarnContext(ctx, "mapping warning", "warning", w)
	}

	table, err := a.engine.Evaluate(ctx, cs)
	if err != nil {
		return nil, fmt.Errorf("evaluate ratios: %w", err)
	}

	duration := time.Since(started)
	logger.InfoContext(ctx, "analysis completed",
		"duration", duration,
		"fields", len(cs.Fields()),
		"years", len(cs.Years()),
		"computable_cells", table.ComputableCount(),
		"unmapped_labels", len(summary.UnmappedLabels),
	)

	return &Report{
		RunID:     runID,
		Company:   company,
		StartedAt: started,
		Duration:  duration,
		Statement: cs,
		Audit:     audit,
		Summary:   summary,
		Ratios:    table,
	}, nil
}
