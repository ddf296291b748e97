// Package table implements structural operations over Table values: deep
// cloning, transposition, row-count reconciliation and delimited-text
// serialization.
package table

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/driftdata/driftgen/pkg/core"
)

// Clone returns a structural deep copy of the table. Mutating the copy
// never observes in or affects the original, and numeric cells keep their
// numeric type.
func Clone(t core.Table) core.Table {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]any, len(row))
		copy(rows[i], row)
	}
	return core.Table{Rows: rows}
}

// Transpose flips a table between column-major and row-major orientation.
// The header stays in place as Rows[0]; the data block is a standard matrix
// transpose. Transposing twice yields the original table.
func Transpose(t core.Table) core.Table {
	if len(t.Rows) == 0 {
		return core.Table{}
	}
	header := make([]any, len(t.Rows[0]))
	copy(header, t.Rows[0])

	data := t.Rows[1:]
	if len(data) == 0 {
		return core.Table{Rows: [][]any{header}}
	}

	width := len(data[0])
	out := make([][]any, width+1)
	out[0] = header
	for j := 0; j < width; j++ {
		out[j+1] = make([]any, len(data))
		for i := range data {
			out[j+1][i] = data[i][j]
		}
	}
	return core.Table{Rows: out}
}

// RemoveRandomRows deletes n distinct data rows from a row-major table,
// chosen uniformly at random. The header is never a removal candidate.
// Deletions are applied in descending index order so earlier deletions do
// not invalidate later indices.
func RemoveRandomRows(t *core.Table, n int, rng *rand.Rand) error {
	if n < 0 {
		return fmt.Errorf("cannot remove %d rows", n)
	}
	if n == 0 {
		return nil
	}
	dataRows := t.DataRowCount()
	if n > dataRows {
		return fmt.Errorf("cannot remove %d rows from a table with %d data rows", n, dataRows)
	}

	picked := make(map[int]struct{}, n)
	for len(picked) < n {
		// Re-draw on collision so exactly n distinct rows are removed.
		picked[1+rng.Intn(dataRows)] = struct{}{}
	}

	indices := make([]int, 0, n)
	for idx := range picked {
		indices = append(indices, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	for _, idx := range indices {
		t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	}
	return nil
}

// ToDelimitedText encodes a row-major table as delimited text. Cells are
// comma-separated; numeric cells are emitted bare, all other cells are
// double-quote wrapped with embedded quotes doubled. Every line, including
// the last, ends with a single line feed.
func ToDelimitedText(t core.Table) string {
	var b strings.Builder
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatCell(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return `"` + strings.ReplaceAll(fmt.Sprint(v), `"`, `""`) + `"`
	}
}
