package mangle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/driftdata/driftgen/pkg/core"
)

// Bucket thresholds for a single draw: below the first the value becomes
// epoch milliseconds, below the second a locale-style string, otherwise it
// is left unchanged.
const (
	dateEpochThreshold  = 0.1
	dateLocaleThreshold = 0.2
)

// localeLayout mimics an en-US toLocaleString rendering.
const localeLayout = "Jan 2, 2006, 3:04:05 PM"

// dateLayouts are the accepted inputs, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateMangle drifts the format of date-time strings in the requested
// columns: some become epoch-millisecond numbers, some locale-formatted
// strings, most stay as they are.
type DateMangle struct {
	specs   []core.ColumnSpec
	columns []string
}

// NewDateMangle creates the date-mangle stage for the requested columns.
func NewDateMangle(specs []core.ColumnSpec, columns []string) *DateMangle {
	return &DateMangle{specs: specs, columns: columns}
}

// Name implements core.Stage.
func (s *DateMangle) Name() string { return StageDateMangle }

// Apply implements core.Stage.
func (s *DateMangle) Apply(tbl *core.Table, rng *rand.Rand) (int, error) {
	mangled := 0
	for _, name := range s.columns {
		_, idx, err := resolveColumn(s.specs, name)
		if err != nil {
			return mangled, err
		}

		column := tbl.Rows[idx+1]
		for i, cell := range column {
			draw := rng.Float64()
			if draw >= dateLocaleThreshold {
				continue
			}
			parsed, ok := parseDate(cell)
			if !ok {
				// Unparseable cells stay untouched; mangling is total.
				continue
			}
			if draw < dateEpochThreshold {
				column[i] = parsed.UnixMilli()
			} else {
				column[i] = parsed.Format(localeLayout)
			}
			mangled++
		}
	}
	return mangled, nil
}

func parseDate(cell any) (time.Time, bool) {
	str, ok := cell.(string)
	if !ok {
		str = fmt.Sprint(cell)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
