package types

import "strings"

// Measure names a metric derived from a Table.
type Measure int

const (
	// MeasureShannon is Shannon entropy in bits per byte, in [0, 8].
	MeasureShannon Measure = iota
	// MeasureMetric is Shannon entropy divided by 8, in [0, 1].
	MeasureMetric
)

// String returns the lower-case name used on the command line and in config.
func (m Measure) String() string {
	switch m {
	case MeasureShannon:
		return "shannon"
	case MeasureMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// ParseMeasure returns the Measure with the given name.
//
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMeasure(name string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shannon":
		return MeasureShannon, nil
	case "metric":
		return MeasureMetric, nil
	}
	return MeasureShannon, &UnsupportedMeasureError{Name: name}
}
