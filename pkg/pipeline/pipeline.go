// Package pipeline composes one full generation run: select columns, build
// the source table, derive and perturb the target, reconcile row counts and
// serialize both tables.
package pipeline

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/driftdata/driftgen/metrics"
	"github.com/driftdata/driftgen/pkg/build"
	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/mangle"
	"github.com/driftdata/driftgen/pkg/spec"
	"github.com/driftdata/driftgen/pkg/table"
)

// Options configures a run. Zero values select sensible defaults.
type Options struct {
	// Generator produces per-column values. Defaults to the gofakeit-backed
	// registry.
	Generator core.ValueGenerator

	// Rand is the randomness source for every perturbation and for row
	// reconciliation. Defaults to a time-seeded source; inject a fixed-seed
	// one for reproducible runs.
	Rand *rand.Rand

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Result holds the two finished tables in row-major form, their delimited
// text renderings, and the run measurements.
type Result struct {
	Source     core.Table
	Target     core.Table
	SourceText string
	TargetText string
	Metrics    metrics.RunMetrics
}

// Run executes the full derivation pipeline. The source table is built
// once; the target is a structural deep copy mutated by the perturbation
// stages, so the two tables never share state.
func Run(specs []core.ColumnSpec, cfg core.GenerationConfig, opts Options) (*Result, error) {
	if opts.Generator == nil {
		opts.Generator = build.DefaultRegistry
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalized()
	start := time.Now()

	selected := spec.Select(specs, cfg.IncludeOptionalColumns)
	if len(selected) == 0 {
		return nil, &core.ConfigError{Field: "columns", Reason: "no columns selected"}
	}

	// Both tables are built at the larger of the two configured row counts;
	// the reconciler trims the longer one back down afterwards.
	buildCount := cfg.SourceRowCount
	if cfg.TargetRowCount() > buildCount {
		buildCount = cfg.TargetRowCount()
	}

	opts.Logger.Info("building source table",
		zap.Int("columns", len(selected)),
		zap.Int("rows", buildCount))

	builder := build.NewBuilder(opts.Generator, opts.Logger)
	source, err := builder.Build(selected, buildCount)
	if err != nil {
		return nil, err
	}

	target := table.Clone(source)
	summary, err := mangle.Default(selected, cfg, opts.Logger).Apply(&target, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("perturbing target table: %w", err)
	}

	sourceRows := table.Transpose(source)
	targetRows := table.Transpose(target)

	reconciliation, err := reconcile(&sourceRows, &targetRows, cfg, opts.Rand)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:     sourceRows,
		Target:     targetRows,
		SourceText: table.ToDelimitedText(sourceRows),
		TargetText: table.ToDelimitedText(targetRows),
	}

	end := time.Now()
	result.Metrics = metrics.RunMetrics{
		Metadata: metrics.RunMetadata{
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			ColumnCount:    len(selected),
			SourceRowCount: sourceRows.DataRowCount(),
			TargetRowCount: targetRows.DataRowCount(),
			RowCountDelta:  cfg.RowCountDelta,
		},
		Reconciliation: reconciliation,
	}
	for _, stage := range summary.Stages {
		result.Metrics.Stages = append(result.Metrics.Stages, metrics.StageMetrics{
			Name:      stage.Name,
			Mutations: stage.Mutations,
		})
	}

	opts.Logger.Info("generation run complete",
		zap.Int("source_rows", sourceRows.DataRowCount()),
		zap.Int("target_rows", targetRows.DataRowCount()),
		zap.Duration("duration", result.Metrics.Metadata.Duration))

	return result, nil
}

// reconcile trims whichever row-major table was built past its configured
// row count. With a negative delta the target is the shorter table, so its
// surplus rows are removed; with a positive delta the source gives up rows.
func reconcile(source, target *core.Table, cfg core.GenerationConfig, rng *rand.Rand) (metrics.Reconciliation, error) {
	switch {
	case cfg.RowCountDelta < 0:
		n := -cfg.RowCountDelta
		if err := table.RemoveRandomRows(target, n, rng); err != nil {
			return metrics.Reconciliation{}, fmt.Errorf("reconciling target rows: %w", err)
		}
		return metrics.Reconciliation{TrimmedTable: "target", RowsRemoved: n}, nil
	case cfg.RowCountDelta > 0:
		n := cfg.RowCountDelta
		if err := table.RemoveRandomRows(source, n, rng); err != nil {
			return metrics.Reconciliation{}, fmt.Errorf("reconciling source rows: %w", err)
		}
		return metrics.Reconciliation{TrimmedTable: "source", RowsRemoved: n}, nil
	default:
		return metrics.Reconciliation{}, nil
	}
}
