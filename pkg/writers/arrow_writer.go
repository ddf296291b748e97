package writers

import (
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"

	"github.com/driftdata/driftgen/pkg/core"
)

// ArrowWriter implements a writer for Arrow IPC files.
type ArrowWriter struct {
	writer *ipc.FileWriter
	file   *os.File
	schema *arrow.Schema
}

// NewArrowWriter creates a new Arrow IPC writer.
func NewArrowWriter(config core.WriterConfig) (core.DatasetWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for Arrow writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create Arrow file: %w", err)
	}

	// The IPC writer is created on first write, once the schema is known.
	return &ArrowWriter{
		file: file,
	}, nil
}

// Write converts the table to an Arrow record and writes it to the file.
func (w *ArrowWriter) Write(tbl core.Table) error {
	record, err := RecordFromTable(tbl)
	if err != nil {
		return err
	}
	defer record.Release()

	if w.writer == nil {
		schema := record.Schema()
		writer, err := ipc.NewFileWriter(w.file, ipc.WithSchema(schema))
		if err != nil {
			return fmt.Errorf("failed to create Arrow writer: %w", err)
		}
		w.writer = writer
		w.schema = schema
	}

	if err := w.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close closes the writer and flushes any pending data.
func (w *ArrowWriter) Close() error {
	var err error

	if w.writer != nil {
		if closeErr := w.writer.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}
