// Package build materializes the source table from a column specification
// collection by invoking a value generator once per row per column.
package build

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/spec"
)

// maxUniqueAttempts bounds the retry loop for unique columns so a generator
// with a small value space fails instead of spinning.
const maxUniqueAttempts = 100

// ColumnResult is the outcome of building one column. Values is only valid
// when Err is nil.
type ColumnResult struct {
	Spec   core.ColumnSpec
	Values []any
	Err    error
}

// Builder assembles column-major tables from column specifications.
type Builder struct {
	gen core.ValueGenerator
	log *zap.Logger
}

// NewBuilder creates a builder around the given value generator.
func NewBuilder(gen core.ValueGenerator, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{gen: gen, log: log}
}

// Build produces a column-major table: Rows[0] holds the pascal-cased
// canonical names in spec order, Rows[1..N] each hold one column's values.
// A failed column fails the whole build; no partial table is returned.
func (b *Builder) Build(specs []core.ColumnSpec, rowCount int) (core.Table, error) {
	if rowCount < 1 {
		return core.Table{}, &core.ConfigError{Field: "row_count", Reason: fmt.Sprintf("must be at least 1, got %d", rowCount)}
	}

	header := make([]any, len(specs))
	for i, s := range specs {
		header[i] = spec.PascalCase(s.Name)
	}

	rows := make([][]any, 0, len(specs)+1)
	rows = append(rows, header)

	for _, result := range b.BuildColumns(specs, rowCount) {
		if result.Err != nil {
			b.log.Error("column build failed",
				zap.String("column", result.Spec.Name),
				zap.String("category", result.Spec.Category),
				zap.String("kind", result.Spec.Kind),
				zap.Any("args", result.Spec.Args),
				zap.Any("options", result.Spec.Options),
				zap.Error(result.Err))
			return core.Table{}, &core.GenerateError{Spec: result.Spec, Err: result.Err}
		}
		rows = append(rows, result.Values)
	}

	return core.Table{Rows: rows}, nil
}

// BuildColumns builds every column independently and reports each outcome,
// leaving the accept-or-fail decision to the caller.
func (b *Builder) BuildColumns(specs []core.ColumnSpec, rowCount int) []ColumnResult {
	results := make([]ColumnResult, len(specs))
	for i, s := range specs {
		values, err := b.buildColumn(s, rowCount)
		results[i] = ColumnResult{Spec: s, Values: values, Err: err}
	}
	return results
}

func (b *Builder) buildColumn(s core.ColumnSpec, rowCount int) ([]any, error) {
	values := make([]any, 0, rowCount)
	seen := make(map[string]struct{}, rowCount)

	for len(values) < rowCount {
		value, err := b.nextValue(s, seen)
		if err != nil {
			return nil, err
		}
		if s.NumericConversion {
			value, err = toNumeric(value)
			if err != nil {
				return nil, err
			}
		}
		values = append(values, value)
	}
	return values, nil
}

// nextValue draws one value, retrying on duplicates for unique columns.
// Uniqueness is column-scoped: the seen set lives for one column build.
func (b *Builder) nextValue(s core.ColumnSpec, seen map[string]struct{}) (any, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		value, err := b.gen.Generate(s)
		if err != nil {
			return nil, err
		}
		if !s.Unique {
			return value, nil
		}
		key := fmt.Sprint(value)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			return value, nil
		}
	}
	return nil, fmt.Errorf("could not produce a unique value after %d attempts", maxUniqueAttempts)
}

func toNumeric(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("numeric conversion of %q: %w", v, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("numeric conversion of %T value", value)
	}
}
