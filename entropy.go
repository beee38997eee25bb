package entropy

import (
	"context"
	"io"

	"github.com/simonhull/entropy/internal/counter"
	"github.com/simonhull/entropy/internal/registry"
	"github.com/simonhull/entropy/internal/types"
)

// Table is an alias to types.Table, the byte-frequency table.
// Re-exporting from internal/types to maintain public API.
type Table = types.Table

// Measure is an alias to types.Measure.
// Re-exporting from internal/types to maintain public API.
type Measure = types.Measure

// Re-export measure constants.
const (
	MeasureShannon = types.MeasureShannon
	MeasureMetric  = types.MeasureMetric
)

// MaxShannon is the upper bound of Shannon entropy over bytes.
const MaxShannon = types.MaxShannon

func init() {
	registry.Register(MeasureShannon, (*types.Table).Shannon)
	registry.Register(MeasureMetric, (*types.Table).Metric)
}

// New builds a Table from every byte r yields until EOF.
//
// An empty reader yields an all-zero Table with Length 0. If r fails before
// EOF, New returns a *ReadError and no Table.
//
// Example:
//
//	table, err := entropy.New(os.Stdin)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%.6f\n", table.Shannon())
func New(r io.Reader, opts ...Option) (*Table, error) {
	return NewContext(context.Background(), r, opts...)
}

// NewContext is New with cancellation checked between chunks.
func NewContext(ctx context.Context, r io.Reader, opts ...Option) (*Table, error) {
	options := applyOptions(opts)

	c := counter.New(ctx, options.chunkSize)
	if _, err := c.ReadFrom(r); err != nil {
		return nil, err
	}

	table := c.Table()
	return &table, nil
}

// FromBytes builds a Table from an in-memory buffer.
func FromBytes(b []byte) *Table {
	table := counter.Count(b)
	return &table
}

// ParseMeasure is a wrapper around types.ParseMeasure.
func ParseMeasure(name string) (Measure, error) {
	return types.ParseMeasure(name)
}

// Measures returns every measure Compute understands.
func Measures() []Measure {
	return registry.Measures()
}

// Compute returns measure m of t.
//
// Returns *UnsupportedMeasureError if m has no registered function.
func Compute(t *Table, m Measure) (float64, error) {
	fn := registry.Get(m)
	if fn == nil {
		return 0, &UnsupportedMeasureError{Name: m.String()}
	}
	return fn(t), nil
}
