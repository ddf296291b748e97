// Package core provides the core types and interfaces for the driftgen
// dataset generation tool.
package core

import (
	"fmt"
	"math/rand"
)

// Value category markers recognized on a ColumnSpec.
const (
	ValueCategoryDate      = "date"
	ValueCategoryLatitude  = "latitude"
	ValueCategoryLongitude = "longitude"
)

// NoneChoice is the sentinel used in configuration and UI choice lists to
// request no columns at all.
const NoneChoice = "none"

// ColumnSpec declares one column of the generated dataset: which external
// generator produces its values and which perturbations it is eligible for.
type ColumnSpec struct {
	// Name is the canonical display name, unique within a collection.
	Name string `mapstructure:"name" json:"name" yaml:"name"`

	// Variants are alternate names used only by column renaming.
	Variants []string `mapstructure:"variants" json:"variants,omitempty" yaml:"variants,omitempty"`

	// Category and Kind identify the generator function for this column.
	Category string `mapstructure:"category" json:"category" yaml:"category"`
	Kind     string `mapstructure:"kind" json:"kind" yaml:"kind"`

	// Unique requires generated values to be distinct within the column.
	Unique bool `mapstructure:"unique" json:"unique,omitempty" yaml:"unique,omitempty"`

	// Optional excludes the column unless optional columns are requested.
	Optional bool `mapstructure:"optional" json:"optional,omitempty" yaml:"optional,omitempty"`

	// NumericConversion coerces generated values to float64 after generation.
	NumericConversion bool `mapstructure:"numeric_conversion" json:"numeric_conversion,omitempty" yaml:"numeric_conversion,omitempty"`

	// DecimalPlaces > 0 marks the column as float-bearing.
	DecimalPlaces int `mapstructure:"decimal_places" json:"decimal_places,omitempty" yaml:"decimal_places,omitempty"`

	// ValueCategory marks date and geo columns (see the ValueCategory constants).
	ValueCategory string `mapstructure:"value_category" json:"value_category,omitempty" yaml:"value_category,omitempty"`

	// Args are positional arguments passed to the generator.
	Args []any `mapstructure:"args" json:"args,omitempty" yaml:"args,omitempty"`

	// Options are named options passed to the generator.
	Options map[string]any `mapstructure:"options" json:"options,omitempty" yaml:"options,omitempty"`
}

// IsFloat reports whether the column is eligible for float jitter.
func (s ColumnSpec) IsFloat() bool {
	return s.DecimalPlaces > 0
}

// IsDate reports whether the column carries date-time values.
func (s ColumnSpec) IsDate() bool {
	return s.ValueCategory == ValueCategoryDate
}

// IsGeo reports whether the column carries latitude or longitude values.
func (s ColumnSpec) IsGeo() bool {
	return s.ValueCategory == ValueCategoryLatitude || s.ValueCategory == ValueCategoryLongitude
}

// GenerationConfig is the immutable parameter set for one run.
type GenerationConfig struct {
	// IncludeOptionalColumns includes specs marked optional.
	IncludeOptionalColumns bool `mapstructure:"include_optional_columns" json:"include_optional_columns" yaml:"include_optional_columns"`

	// SourceRowCount is the number of data rows in the source table.
	SourceRowCount int `mapstructure:"source_row_count" json:"source_row_count" yaml:"source_row_count"`

	// RowCountDelta is signed; the target row count is SourceRowCount + delta.
	RowCountDelta int `mapstructure:"row_count_delta" json:"row_count_delta" yaml:"row_count_delta"`

	// RandomizeColumnOrder shuffles target columns, keeping the ID column first.
	RandomizeColumnOrder bool `mapstructure:"randomize_column_order" json:"randomize_column_order" yaml:"randomize_column_order"`

	// RenameColumns lists canonical column names whose target header is mangled.
	RenameColumns []string `mapstructure:"rename_columns" json:"rename_columns,omitempty" yaml:"rename_columns,omitempty"`

	// JitterFloatColumns lists float columns whose target values are jittered.
	JitterFloatColumns []string `mapstructure:"jitter_float_columns" json:"jitter_float_columns,omitempty" yaml:"jitter_float_columns,omitempty"`

	// MangleDateColumns lists date columns whose target format drifts.
	MangleDateColumns []string `mapstructure:"mangle_date_columns" json:"mangle_date_columns,omitempty" yaml:"mangle_date_columns,omitempty"`

	// MangleGeoColumns lists geo columns whose target coordinates are corrupted.
	MangleGeoColumns []string `mapstructure:"mangle_geo_columns" json:"mangle_geo_columns,omitempty" yaml:"mangle_geo_columns,omitempty"`
}

// Normalized returns a copy with the none sentinel stripped from every
// column selection list, so an answer of "none" and an empty answer read
// the same downstream.
func (c GenerationConfig) Normalized() GenerationConfig {
	c.RenameColumns = dropNone(c.RenameColumns)
	c.JitterFloatColumns = dropNone(c.JitterFloatColumns)
	c.MangleDateColumns = dropNone(c.MangleDateColumns)
	c.MangleGeoColumns = dropNone(c.MangleGeoColumns)
	return c
}

func dropNone(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != NoneChoice {
			out = append(out, n)
		}
	}
	return out
}

// TargetRowCount returns the configured number of target data rows.
func (c GenerationConfig) TargetRowCount() int {
	return c.SourceRowCount + c.RowCountDelta
}

// Validate rejects configurations that would drive either table below one
// data row. Row counts are never clamped.
func (c GenerationConfig) Validate() error {
	if c.SourceRowCount < 1 {
		return &ConfigError{Field: "source_row_count", Reason: fmt.Sprintf("must be at least 1, got %d", c.SourceRowCount)}
	}
	if c.TargetRowCount() < 1 {
		return &ConfigError{Field: "row_count_delta", Reason: fmt.Sprintf("target row count %d must be at least 1", c.TargetRowCount())}
	}
	return nil
}

// Table is a rectangular dataset. Rows[0] is always the header. In
// column-major orientation Rows[1..N] each hold one column's ordered values;
// in row-major orientation they each hold one record.
type Table struct {
	Rows [][]any `json:"rows"`
}

// Header returns the header row as strings.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	header := make([]string, len(t.Rows[0]))
	for i, cell := range t.Rows[0] {
		header[i] = fmt.Sprint(cell)
	}
	return header
}

// NumColumns returns the header length.
func (t Table) NumColumns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// DataRowCount returns the number of non-header rows.
func (t Table) DataRowCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows) - 1
}

// ValueGenerator produces one scalar value per call for a column.
type ValueGenerator interface {
	// Generate returns one value for the given spec.
	Generate(spec ColumnSpec) (any, error)
}

// Stage is one named perturbation applied to a column-major target table.
// Stages draw all randomness from the injected source.
type Stage interface {
	// Name identifies the stage in logs, metrics and reports.
	Name() string

	// Apply mutates the table in place and returns the number of cells
	// (or, for structural stages, columns) it changed.
	Apply(tbl *Table, rng *rand.Rand) (int, error)
}

// WriterConfig provides configuration for creating a dataset writer.
type WriterConfig struct {
	// Type is the writer type (csv, json, arrow, parquet).
	Type string

	// Path is the destination file path.
	Path string
}

// DatasetWriter defines an interface for writing a row-major table to a
// destination.
type DatasetWriter interface {
	// Write writes the table to the destination.
	Write(tbl Table) error

	// Close closes the writer and flushes any pending data.
	Close() error
}

// ConfigError reports an invalid generation parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// LookupError reports a requested column name that resolved to zero or
// multiple columns.
type LookupError struct {
	Column  string
	Matches int
}

func (e *LookupError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q is ambiguous: %d matches", e.Column, e.Matches)
}

// GenerateError reports a failed column build, carrying the offending spec.
type GenerateError struct {
	Spec ColumnSpec
	Err  error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generating column %q (%s.%s): %v", e.Spec.Name, e.Spec.Category, e.Spec.Kind, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
