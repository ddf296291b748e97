package writers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/driftdata/driftgen/pkg/core"
)

// JSONWriter writes a row-major table as an array of objects keyed by
// header name.
type JSONWriter struct {
	file     *os.File
	encoder  *json.Encoder
	firstRow bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(config core.WriterConfig) (core.DatasetWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for JSON writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON file: %w", err)
	}

	if _, err := file.WriteString("[\n"); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write opening bracket: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("  ", "  ")

	return &JSONWriter{
		file:     file,
		encoder:  encoder,
		firstRow: true,
	}, nil
}

// Write writes the table's data rows to the file.
func (w *JSONWriter) Write(tbl core.Table) error {
	if len(tbl.Rows) == 0 {
		return nil
	}
	header := tbl.Header()

	for _, dataRow := range tbl.Rows[1:] {
		row := make(map[string]any, len(header))
		for j, name := range header {
			if j < len(dataRow) {
				row[name] = dataRow[j]
			}
		}

		if !w.firstRow {
			if _, err := w.file.WriteString(",\n"); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		} else {
			w.firstRow = false
		}

		if err := w.encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}
	return nil
}

// Close writes the closing bracket and closes the file.
func (w *JSONWriter) Close() error {
	_, writeErr := w.file.WriteString("\n]")
	closeErr := w.file.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write closing bracket: %w", writeErr)
	}
	return closeErr
}
