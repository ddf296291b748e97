package build

import (
	"fmt"
	"strconv"
	"time"

	"github.com/driftdata/driftgen/pkg/core"
)

// Generator parameters arrive either positionally in Args or named in
// Options; named options win. Values come from YAML or JSON decoding, so
// every plausible numeric representation is accepted.

func lookupParam(s core.ColumnSpec, idx int, name string) (any, bool) {
	if v, ok := s.Options[name]; ok {
		return v, true
	}
	if idx >= 0 && idx < len(s.Args) {
		return s.Args[idx], true
	}
	return nil, false
}

func floatParam(s core.ColumnSpec, idx int, name string, def float64) float64 {
	raw, ok := lookupParam(s, idx, name)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func intParam(s core.ColumnSpec, idx int, name string, def int) int {
	raw, ok := lookupParam(s, idx, name)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func timeParam(s core.ColumnSpec, idx int, name string) (time.Time, error) {
	raw, ok := lookupParam(s, idx, name)
	if !ok {
		return time.Time{}, fmt.Errorf("missing %q parameter", name)
	}
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(TimeLayout, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing %q parameter: %w", name, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("%q parameter has unsupported type %T", name, raw)
	}
}
