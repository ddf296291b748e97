// Package mangle applies randomized perturbations to a column-major target
// table: header renaming, float jitter, date-format drift, geo-coordinate
// corruption and column reordering.
//
// Stages run as an explicit ordered pipeline. Value-mutating stages run
// before reordering so they always see the canonical column positions;
// the ordering is fixed by construction, not by call-site discipline.
package mangle

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/driftdata/driftgen/pkg/core"
)

// Stage names, in pipeline order.
const (
	StageRename      = "rename"
	StageFloatJitter = "float_jitter"
	StageDateMangle  = "date_mangle"
	StageGeoMangle   = "geo_mangle"
	StageReorder     = "reorder"
)

// StageResult records how many cells (or columns, for structural stages)
// one stage changed.
type StageResult struct {
	Name      string `json:"name"`
	Mutations int    `json:"mutations"`
}

// Summary is the per-stage outcome of one pipeline application.
type Summary struct {
	Stages []StageResult `json:"stages"`
}

// Pipeline is an ordered list of perturbation stages.
type Pipeline struct {
	stages []core.Stage
	log    *zap.Logger
}

// New creates a pipeline that applies the given stages in order.
func New(stages []core.Stage, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{stages: stages, log: log}
}

// Default builds the standard pipeline for a run, including only the
// stages the configuration enables. The order is fixed:
// rename, float jitter, date mangle, geo mangle, reorder.
func Default(specs []core.ColumnSpec, cfg core.GenerationConfig, log *zap.Logger) *Pipeline {
	var stages []core.Stage
	if len(cfg.RenameColumns) > 0 {
		stages = append(stages, NewRename(specs, cfg.RenameColumns))
	}
	if len(cfg.JitterFloatColumns) > 0 {
		stages = append(stages, NewFloatJitter(specs, cfg.JitterFloatColumns))
	}
	if len(cfg.MangleDateColumns) > 0 {
		stages = append(stages, NewDateMangle(specs, cfg.MangleDateColumns))
	}
	if len(cfg.MangleGeoColumns) > 0 {
		stages = append(stages, NewGeoMangle(specs, cfg.MangleGeoColumns))
	}
	if cfg.RandomizeColumnOrder {
		stages = append(stages, NewReorder())
	}
	return New(stages, log)
}

// Apply runs every stage in order against the table. Stages never change
// the row count or reorder rows; only values, header text or column
// positions change.
func (p *Pipeline) Apply(tbl *core.Table, rng *rand.Rand) (Summary, error) {
	summary := Summary{Stages: make([]StageResult, 0, len(p.stages))}
	for _, stage := range p.stages {
		mutations, err := stage.Apply(tbl, rng)
		if err != nil {
			return summary, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		p.log.Debug("applied perturbation stage",
			zap.String("stage", stage.Name()),
			zap.Int("mutations", mutations))
		summary.Stages = append(summary.Stages, StageResult{Name: stage.Name(), Mutations: mutations})
	}
	return summary, nil
}

// resolveColumn resolves a canonical column name to its spec and its
// column position. The builder lays columns out in spec-collection order,
// so position in the collection is position in the table; the header is
// never consulted, which keeps resolution stable after a rename has
// rewritten header text. A name matching zero or multiple specs is a
// LookupError instead of silently picking a column.
func resolveColumn(specs []core.ColumnSpec, name string) (core.ColumnSpec, int, error) {
	var found core.ColumnSpec
	idx, matches := -1, 0
	for i, s := range specs {
		if s.Name == name {
			found = s
			idx = i
			matches++
		}
	}
	if matches != 1 {
		return core.ColumnSpec{}, 0, &core.LookupError{Column: name, Matches: matches}
	}
	return found, idx, nil
}

// smallOffset returns a small positive value in [0, 0.0001), the shared
// jitter magnitude for float and geo perturbation.
func smallOffset(rng *rand.Rand) float64 {
	return math.Round(rng.Float64()*1000) * 0.0000001
}
