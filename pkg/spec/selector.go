// Package spec filters column specification collections and derives the
// candidate subsets the perturbation stages and UI controls operate on.
package spec

import (
	"github.com/driftdata/driftgen/pkg/core"
)

// Select returns all specs when includeOptional is true, otherwise only the
// non-optional ones. The input order is preserved.
func Select(specs []core.ColumnSpec, includeOptional bool) []core.ColumnSpec {
	if includeOptional {
		return specs
	}
	selected := make([]core.ColumnSpec, 0, len(specs))
	for _, s := range specs {
		if !s.Optional {
			selected = append(selected, s)
		}
	}
	return selected
}

// WithVariants returns the specs that declare at least one alternate name.
func WithVariants(specs []core.ColumnSpec) []core.ColumnSpec {
	return filter(specs, func(s core.ColumnSpec) bool { return len(s.Variants) > 0 })
}

// FloatColumns returns the float-bearing specs.
func FloatColumns(specs []core.ColumnSpec) []core.ColumnSpec {
	return filter(specs, core.ColumnSpec.IsFloat)
}

// DateColumns returns the date-bearing specs.
func DateColumns(specs []core.ColumnSpec) []core.ColumnSpec {
	return filter(specs, core.ColumnSpec.IsDate)
}

// GeoColumns returns the latitude and longitude specs.
func GeoColumns(specs []core.ColumnSpec) []core.ColumnSpec {
	return filter(specs, core.ColumnSpec.IsGeo)
}

// Names returns the canonical names of the given specs, in order.
func Names(specs []core.ColumnSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

// Choices builds the option list for a UI control over the given subset:
// the none sentinel followed by the canonical names.
func Choices(specs []core.ColumnSpec) []string {
	return append([]string{core.NoneChoice}, Names(specs)...)
}

// ByName returns the spec with the given canonical name, or a LookupError
// when the name matches zero or multiple specs.
func ByName(specs []core.ColumnSpec, name string) (core.ColumnSpec, error) {
	var found core.ColumnSpec
	matches := 0
	for _, s := range specs {
		if s.Name == name {
			found = s
			matches++
		}
	}
	if matches != 1 {
		return core.ColumnSpec{}, &core.LookupError{Column: name, Matches: matches}
	}
	return found, nil
}

func filter(specs []core.ColumnSpec, keep func(core.ColumnSpec) bool) []core.ColumnSpec {
	out := make([]core.ColumnSpec, 0, len(specs))
	for _, s := range specs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
