package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftdata/driftgen/pkg/core"
)

const sampleYAML = `
columns:
  - name: Transaction Id
    category: string
    kind: uuid
    unique: true
  - name: Transaction Date
    category: datetime
    kind: past
    value_category: date
    variants:
      - Txn Date
      - Date of Transaction
  - name: Amount
    category: finance
    kind: amount
    decimal_places: 2
    numeric_conversion: true
    options:
      min: 10
      max: 500
  - name: Memo
    category: string
    kind: word
    optional: true
generation:
  source_row_count: 100
  row_count_delta: -15
  rename_columns:
    - Transaction Date
  jitter_float_columns:
    - Amount
  mangle_date_columns:
    - none
output:
  format: csv
  source_path: source.csv
  target_path: target.csv
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "driftgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, sampleYAML))
	require.NoError(t, err)

	require.Len(t, cfg.Columns, 4)
	assert.Equal(t, "Transaction Id", cfg.Columns[0].Name)
	assert.True(t, cfg.Columns[0].Unique)
	assert.Equal(t, []string{"Txn Date", "Date of Transaction"}, cfg.Columns[1].Variants)
	assert.Equal(t, 2, cfg.Columns[2].DecimalPlaces)
	assert.True(t, cfg.Columns[3].Optional)

	assert.Equal(t, 100, cfg.Generation.SourceRowCount)
	assert.Equal(t, -15, cfg.Generation.RowCountDelta)
	assert.Equal(t, 85, cfg.Generation.TargetRowCount())

	// The none sentinel is stripped during load.
	assert.Empty(t, cfg.Generation.MangleDateColumns)
	assert.Equal(t, []string{"Transaction Date"}, cfg.Generation.RenameColumns)

	assert.Equal(t, "csv", cfg.Output.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Columns: []core.ColumnSpec{
			{Name: "Id", Category: "string", Kind: "uuid"},
			{Name: "Amount", Category: "finance", Kind: "amount", DecimalPlaces: 2},
		},
		Generation: core.GenerationConfig{SourceRowCount: 10, RowCountDelta: -2},
		Output:     OutputConfig{Format: "csv", SourcePath: "s.csv", TargetPath: "t.csv"},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateRejectsEmptyColumns(t *testing.T) {
	cfg := validConfig()
	cfg.Columns = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	cfg := validConfig()
	cfg.Columns = append(cfg.Columns, core.ColumnSpec{Name: "Amount", Category: "finance", Kind: "amount"})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateColumn(t *testing.T) {
	assert.Error(t, ValidateColumn(&core.ColumnSpec{Category: "string", Kind: "uuid"}))
	assert.Error(t, ValidateColumn(&core.ColumnSpec{Name: "Id", Kind: "uuid"}))
	assert.Error(t, ValidateColumn(&core.ColumnSpec{Name: "Id", Category: "string"}))
	assert.Error(t, ValidateColumn(&core.ColumnSpec{Name: "Id", Category: "string", Kind: "uuid", ValueCategory: "banana"}))
	assert.NoError(t, ValidateColumn(&core.ColumnSpec{Name: "Id", Category: "string", Kind: "uuid"}))
}

func TestValidateRejectsBadDelta(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.RowCountDelta = -10
	err := cfg.Validate()
	var cfgErr *core.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsZeroRows(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.SourceRowCount = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateSelectionCrossReferences(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.RenameColumns = []string{"Nope"}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	// Id has no decimal places, so it is not a float column.
	cfg.Generation.JitterFloatColumns = []string{"Id"}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Generation.JitterFloatColumns = []string{"Amount"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateSelectionRespectsOptionality(t *testing.T) {
	cfg := validConfig()
	cfg.Columns = append(cfg.Columns, core.ColumnSpec{Name: "Memo", Category: "string", Kind: "word", Optional: true})
	cfg.Generation.RenameColumns = []string{"Memo"}

	// Memo is excluded without opting in to optional columns.
	assert.Error(t, cfg.Validate())

	cfg.Generation.IncludeOptionalColumns = true
	assert.NoError(t, cfg.Validate())
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, ValidateOutput(&OutputConfig{Format: "parquet"}))
	assert.NoError(t, ValidateOutput(&OutputConfig{}))
	assert.Error(t, ValidateOutput(&OutputConfig{Format: "xlsx"}))
}
