// Package registry maps measure names to the functions that compute them.
package registry

import (
	"slices"

	"github.com/simonhull/entropy/internal/types"
)

// Func derives a single value from a byte-frequency table.
type Func func(t *types.Table) float64

// measures maps measures to their functions.
var measures = make(map[types.Measure]Func)

// Register registers the function for a measure.
// This is called by the root package during initialization (init functions).
func Register(m types.Measure, fn Func) {
	measures[m] = fn
}

// Get returns the function for a given measure.
// Returns nil if no function is registered for the measure.
func Get(m types.Measure) Func {
	return measures[m]
}

// Measures returns every registered measure in ascending order.
func Measures() []types.Measure {
	out := make([]types.Measure, 0, len(measures))
	for m := range measures {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
