package mangle

import (
	"math/rand"

	"github.com/driftdata/driftgen/pkg/core"
)

// Reorder shuffles every column except the first into a new random order.
// The first column is the identity column and never moves. Header cells
// and value rows move together, so row alignment is preserved.
type Reorder struct{}

// NewReorder creates the reorder stage.
func NewReorder() *Reorder {
	return &Reorder{}
}

// Name implements core.Stage.
func (s *Reorder) Name() string { return StageReorder }

// Apply implements core.Stage. The returned count is the number of columns
// that ended up in a new position.
func (s *Reorder) Apply(tbl *core.Table, rng *rand.Rand) (int, error) {
	numCols := tbl.NumColumns()
	if numCols <= 2 {
		return 0, nil
	}

	// Permute positions 1..numCols-1; position 0 stays put.
	perm := rng.Perm(numCols - 1)

	header := make([]any, numCols)
	header[0] = tbl.Rows[0][0]
	columns := make([][]any, numCols)
	columns[0] = tbl.Rows[1]

	moved := 0
	for to, from := range perm {
		header[to+1] = tbl.Rows[0][from+1]
		columns[to+1] = tbl.Rows[from+1+1]
		if to != from {
			moved++
		}
	}

	rows := make([][]any, 0, numCols+1)
	rows = append(rows, header)
	rows = append(rows, columns...)
	tbl.Rows = rows
	return moved, nil
}
