package mangle

import (
	"math"
	"math/rand"

	"github.com/driftdata/driftgen/pkg/core"
)

// Bucket thresholds for a single draw: below the first the coordinate gets
// a small positive offset, below the second it is shifted out of valid
// range by 180 degrees, otherwise it is left unchanged.
const (
	geoOffsetThreshold = 0.10
	geoShiftThreshold  = 0.15
)

// GeoMangle corrupts latitude/longitude columns: most values survive, a
// few drift by a tiny offset, and a few are pushed out of the valid
// coordinate range entirely.
type GeoMangle struct {
	specs   []core.ColumnSpec
	columns []string
}

// NewGeoMangle creates the geo-mangle stage for the requested columns.
func NewGeoMangle(specs []core.ColumnSpec, columns []string) *GeoMangle {
	return &GeoMangle{specs: specs, columns: columns}
}

// Name implements core.Stage.
func (s *GeoMangle) Name() string { return StageGeoMangle }

// Apply implements core.Stage.
func (s *GeoMangle) Apply(tbl *core.Table, rng *rand.Rand) (int, error) {
	mangled := 0
	for _, name := range s.columns {
		_, idx, err := resolveColumn(s.specs, name)
		if err != nil {
			return mangled, err
		}

		column := tbl.Rows[idx+1]
		for i, cell := range column {
			draw := rng.Float64()
			if draw >= geoShiftThreshold {
				continue
			}
			v, ok := cell.(float64)
			if !ok {
				continue
			}
			if draw < geoOffsetThreshold {
				// Magnitude-only drift, sign preserved.
				column[i] = v + math.Copysign(smallOffset(rng), v)
			} else if v < 0 {
				column[i] = v - 180
			} else {
				column[i] = v + 180
			}
			mangled++
		}
	}
	return mangled, nil
}
