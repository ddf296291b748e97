package writers

import (
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/driftdata/driftgen/pkg/core"
)

// ParquetWriter implements a writer for Parquet files.
type ParquetWriter struct {
	writer     *pqarrow.FileWriter
	file       *os.File
	schema     *arrow.Schema
	properties pqarrow.ArrowWriterProperties
}

// NewParquetWriter creates a new Parquet writer.
func NewParquetWriter(config core.WriterConfig) (core.DatasetWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for Parquet writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create Parquet file: %w", err)
	}

	// The Parquet writer is created on first write, once the schema is known.
	return &ParquetWriter{
		file:       file,
		properties: pqarrow.NewArrowWriterProperties(),
	}, nil
}

// Write converts the table to an Arrow record and writes it to the file.
func (w *ParquetWriter) Write(tbl core.Table) error {
	record, err := RecordFromTable(tbl)
	if err != nil {
		return err
	}
	defer record.Release()

	if w.writer == nil {
		schema := record.Schema()

		writeProps := parquet.NewWriterProperties(
			parquet.WithCompression(compress.Codecs.Snappy),
			parquet.WithDictionaryDefault(false),
		)

		writer, err := pqarrow.NewFileWriter(
			schema,
			w.file,
			writeProps,
			w.properties,
		)
		if err != nil {
			return fmt.Errorf("failed to create Parquet writer: %w", err)
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
func (w *ParquetWriter) Close() error {
	var err error

	if w.writer != nil {
		if closeErr := w.writer.Close(); closeErr != nil {
			err = closeErr
		}
	}

	// The Parquet writer closes its sink, so the file may already be closed.
	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) && err == nil {
			err = closeErr
		}
	}

	return err
}
