package mangle

import (
	"math/rand"

	"github.com/driftdata/driftgen/pkg/core"
)

// jitterRate is the per-cell probability of adding a small offset.
const jitterRate = 0.2

// FloatJitter adds a small positive offset to roughly one in five values
// of each requested float column. The offset never decreases a value and
// never changes its sign.
type FloatJitter struct {
	specs   []core.ColumnSpec
	columns []string
}

// NewFloatJitter creates the jitter stage for the requested float columns.
func NewFloatJitter(specs []core.ColumnSpec, columns []string) *FloatJitter {
	return &FloatJitter{specs: specs, columns: columns}
}

// Name implements core.Stage.
func (s *FloatJitter) Name() string { return StageFloatJitter }

// Apply implements core.Stage.
func (s *FloatJitter) Apply(tbl *core.Table, rng *rand.Rand) (int, error) {
	jittered := 0
	for _, name := range s.columns {
		_, idx, err := resolveColumn(s.specs, name)
		if err != nil {
			return jittered, err
		}

		column := tbl.Rows[idx+1]
		for i, cell := range column {
			if rng.Float64() >= jitterRate {
				continue
			}
			// Non-numeric cells stay untouched; jitter is a total function.
			if v, ok := cell.(float64); ok {
				column[i] = v + smallOffset(rng)
				jittered++
			}
		}
	}
	return jittered, nil
}
