// Package config loads and validates the column specification collection
// and the generation answers from a single YAML document.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/spec"
)

// --- Configuration Structs ---

// OutputConfig names the file artifacts of a run. The core never chooses
// paths; they are resolved here and handed to the writers.
type OutputConfig struct {
	Format     string `mapstructure:"format" yaml:"format"`
	SourcePath string `mapstructure:"source_path" yaml:"source_path"`
	TargetPath string `mapstructure:"target_path" yaml:"target_path"`
	ReportPath string `mapstructure:"report_path" yaml:"report_path,omitempty"`
}

// Config is the full input document for one run.
type Config struct {
	Columns    []core.ColumnSpec     `mapstructure:"columns" yaml:"columns"`
	Generation core.GenerationConfig `mapstructure:"generation" yaml:"generation"`
	Output     OutputConfig          `mapstructure:"output" yaml:"output"`
}

// --- Load Configuration ---

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Generation = cfg.Generation.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// --- Validation Functions ---

// validate is a helper function to reduce repetition.
func validate(condition bool, format string, a ...any) error {
	if !condition {
		return fmt.Errorf(format, a...)
	}
	return nil
}

// Validate checks the whole document: column specs, generation answers and
// the cross-references between them.
func (c *Config) Validate() error {
	if err := validate(len(c.Columns) > 0, "at least one column is required"); err != nil {
		return err
	}
	names := make(map[string]struct{}, len(c.Columns))
	for i := range c.Columns {
		if err := ValidateColumn(&c.Columns[i]); err != nil {
			return fmt.Errorf("column '%s' validation failed: %w", c.Columns[i].Name, err)
		}
		if _, dup := names[c.Columns[i].Name]; dup {
			return fmt.Errorf("duplicate column name '%s'", c.Columns[i].Name)
		}
		names[c.Columns[i].Name] = struct{}{}
	}

	if err := c.Generation.Validate(); err != nil {
		return err
	}
	if err := c.validateSelections(); err != nil {
		return err
	}
	return ValidateOutput(&c.Output)
}

// ValidateColumn checks one column spec.
func ValidateColumn(cs *core.ColumnSpec) error {
	if err := validate(cs.Name != "", "column name is required"); err != nil {
		return err
	}
	if err := validate(cs.Category != "", "generator category is required"); err != nil {
		return err
	}
	if err := validate(cs.Kind != "", "generator kind is required"); err != nil {
		return err
	}
	switch cs.ValueCategory {
	case "", core.ValueCategoryDate, core.ValueCategoryLatitude, core.ValueCategoryLongitude:
	default:
		return fmt.Errorf("unknown value category '%s'", cs.ValueCategory)
	}
	return validate(cs.DecimalPlaces >= 0, "decimal places must not be negative")
}

// ValidateOutput checks the output file configuration.
func ValidateOutput(oc *OutputConfig) error {
	switch oc.Format {
	case "", "csv", "json", "arrow", "parquet":
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s'", oc.Format)
	}
}

// validateSelections checks that every column name the answers reference
// exists in the collection and carries the matching marker.
func (c *Config) validateSelections() error {
	selected := spec.Select(c.Columns, c.Generation.IncludeOptionalColumns)

	checks := []struct {
		field   string
		names   []string
		allowed []core.ColumnSpec
	}{
		{"rename_columns", c.Generation.RenameColumns, selected},
		{"jitter_float_columns", c.Generation.JitterFloatColumns, spec.FloatColumns(selected)},
		{"mangle_date_columns", c.Generation.MangleDateColumns, spec.DateColumns(selected)},
		{"mangle_geo_columns", c.Generation.MangleGeoColumns, spec.GeoColumns(selected)},
	}
	for _, check := range checks {
		for _, name := range check.names {
			if _, err := spec.ByName(check.allowed, name); err != nil {
				return fmt.Errorf("%s: %w", check.field, err)
			}
		}
	}
	return nil
}

// --- Top-Level Validation ---

// ValidateConfig validates a loaded configuration.
func ValidateConfig(cfg *Config) error {
	return cfg.Validate()
}
