// Package types provides the core data structures for byte entropy analysis.
//
// This package defines the Table (byte-frequency table), the Measure enum
// naming the derived metrics, and the error types shared by the internal
// packages and re-exported from the root package.
package types

import (
	"iter"

	"github.com/kzahedi/goent/discrete"
)

// Symbols is the size of the byte alphabet.
const Symbols = 256

// MaxShannon is the upper bound of Shannon entropy over bytes (log2(256)).
const MaxShannon = 8.0

// Table is a byte-frequency table: occurrence counts for every possible
// byte value plus the total number of bytes observed.
//
// Length always equals the sum of Counts. A Table is a snapshot of one
// input and is never modified after it has been built.
type Table struct {
	// Counts[v] is the number of times byte value v occurred.
	Counts [Symbols]uint64

	// Length is the number of bytes observed.
	Length uint64
}

// Count returns the number of occurrences of b.
func (t *Table) Count(b byte) uint64 {
	return t.Counts[b]
}

// Distinct returns the number of byte values that occurred at least once.
func (t *Table) Distinct() int {
	n := 0
	for _, c := range t.Counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// All iterates over the byte values that occurred at least once, in
// ascending byte order.
//
// Example:
//
//	for b, n := range table.All() {
//		fmt.Printf("0x%02x %d\n", b, n)
//	}
func (t *Table) All() iter.Seq2[byte, uint64] {
	return func(yield func(byte, uint64) bool) {
		for v, c := range t.Counts {
			if c == 0 {
				continue
			}
			if !yield(byte(v), c) {
				return
			}
		}
	}
}

// Shannon returns the Shannon entropy of the table in bits per byte.
//
// H = -sum(p * log2(p)) over byte values with a non-zero count, where
// p = count / Length. Byte values that never occurred contribute nothing,
// so an empty table yields 0 without dividing by zero.
//
// The result is in [0, 8].
func (t *Table) Shannon() float64 {
	if t.Length == 0 {
		return 0
	}

	// Zero-count entries stay 0 and are skipped by EntropyBase2.
	dist := make([]float64, Symbols)
	length := float64(t.Length)
	for v, c := range t.Counts {
		if c > 0 {
			dist[v] = float64(c) / length
		}
	}

	// Rounding can push a uniform distribution a hair past 8.
	return min(max(discrete.EntropyBase2(dist), 0), MaxShannon)
}

// Metric returns the Shannon entropy normalized to [0, 1] by dividing by
// the maximum entropy of the byte alphabet.
func (t *Table) Metric() float64 {
	return t.Shannon() / MaxShannon
}
