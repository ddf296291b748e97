package writers

import (
	"errors"
	"fmt"
	"os"

	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/table"
)

// CSVWriter writes a row-major table as delimited text, using the core
// serializer's quoting rule: numeric cells bare, everything else quoted.
type CSVWriter struct {
	file *os.File
}

// NewCSVWriter creates a new delimited-text writer.
func NewCSVWriter(config core.WriterConfig) (core.DatasetWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for CSV writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}
	return &CSVWriter{file: file}, nil
}

// Write writes the table to the file.
func (w *CSVWriter) Write(tbl core.Table) error {
	if _, err := w.file.WriteString(table.ToDelimitedText(tbl)); err != nil {
		return fmt.Errorf("failed to write delimited text: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *CSVWriter) Close() error {
	return w.file.Close()
}
