package mangle

import (
	"math/rand"

	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/spec"
)

// Rename replaces the header cell of each requested column with a
// snake-cased name drawn uniformly from the column's canonical name and
// its variants. Column position and values are untouched.
type Rename struct {
	specs   []core.ColumnSpec
	columns []string
}

// NewRename creates the rename stage for the requested canonical names.
func NewRename(specs []core.ColumnSpec, columns []string) *Rename {
	return &Rename{specs: specs, columns: columns}
}

// Name implements core.Stage.
func (s *Rename) Name() string { return StageRename }

// Apply implements core.Stage.
func (s *Rename) Apply(tbl *core.Table, rng *rand.Rand) (int, error) {
	renamed := 0
	for _, name := range s.columns {
		cs, idx, err := resolveColumn(s.specs, name)
		if err != nil {
			return renamed, err
		}

		candidates := append([]string{cs.Name}, cs.Variants...)
		picked := candidates[rng.Intn(len(candidates))]
		tbl.Rows[0][idx] = spec.SnakeCase(picked)
		renamed++
	}
	return renamed, nil
}
