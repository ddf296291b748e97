package writers

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/driftdata/driftgen/pkg/core"
)

// RecordFromTable converts a row-major table into an Arrow record. Columns
// whose cells are all numeric become float64 fields; everything else is
// rendered as a string field. The caller must Release the record.
func RecordFromTable(tbl core.Table) (arrow.Record, error) {
	if len(tbl.Rows) == 0 {
		return nil, errors.New("cannot convert an empty table")
	}
	header := tbl.Header()
	data := tbl.Rows[1:]

	fields := make([]arrow.Field, len(header))
	for j, name := range header {
		if columnIsNumeric(data, j) {
			fields[j] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
		} else {
			fields[j] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String}
		}
	}

	builder := array.NewRecordBuilder(memory.DefaultAllocator, arrow.NewSchema(fields, nil))
	defer builder.Release()

	for _, row := range data {
		for j := range header {
			switch fb := builder.Field(j).(type) {
			case *array.Float64Builder:
				f, _ := cellFloat(row[j])
				fb.Append(f)
			case *array.StringBuilder:
				fb.Append(fmt.Sprint(row[j]))
			}
		}
	}
	return builder.NewRecord(), nil
}

func columnIsNumeric(data [][]any, j int) bool {
	if len(data) == 0 {
		return false
	}
	for _, row := range data {
		if j >= len(row) {
			return false
		}
		if _, ok := cellFloat(row[j]); !ok {
			return false
		}
	}
	return true
}

func cellFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
