// Package counter accumulates byte-frequency tables in a single pass.
package counter

import (
	"context"
	"errors"
	"io"

	"github.com/simonhull/entropy/internal/binary"
	"github.com/simonhull/entropy/internal/types"
)

// DefaultChunkSize is the read buffer size used by ReadFrom.
const DefaultChunkSize = 32 * 1024

// Counter tallies bytes written to it. The zero value is ready to use.
//
// Counter satisfies io.Writer, so it can sit at the end of io.Copy or an
// io.MultiWriter. It is not safe for concurrent use.
type Counter struct {
	ctx       context.Context
	table     types.Table
	chunkSize int
}

// New returns a Counter that reads in chunks of chunkSize bytes and stops
// between chunks once ctx is done. A chunkSize <= 0 uses DefaultChunkSize.
func New(ctx context.Context, chunkSize int) *Counter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Counter{ctx: ctx, chunkSize: chunkSize}
}

// Write counts every byte of p. It never fails.
func (c *Counter) Write(p []byte) (int, error) {
	for _, b := range p {
		c.table.Counts[b]++
	}
	c.table.Length += uint64(len(p))
	return len(p), nil
}

// ReadFrom counts every byte from r until EOF.
//
// Any other read error is returned as *types.ReadError with the offset at
// which reading stopped. The counter keeps the bytes seen so far, but
// callers must not use its table after an error.
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, c.size())

	var read int64
	for {
		if err := c.err(); err != nil {
			return read, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			c.Write(buf[:n])
			read += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return read, nil
		}
		if err != nil {
			return read, &types.ReadError{Offset: read, Err: err}
		}
	}
}

// ReadSection counts every byte of a bounds-checked section.
//
// Errors from the section reader (*types.ReadError, *types.OutOfBoundsError)
// are returned unchanged.
func (c *Counter) ReadSection(sec *binary.Reader) error {
	buf := make([]byte, min(int64(c.size()), max(sec.Remaining(), 1)))

	for {
		if err := c.err(); err != nil {
			return err
		}

		n, err := sec.Next(buf)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		c.Write(buf[:n])
	}
}

// Table returns a snapshot of the accumulated counts.
func (c *Counter) Table() types.Table {
	return c.table
}

func (c *Counter) size() int {
	if c.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.chunkSize
}

func (c *Counter) err() error {
	if c.ctx == nil {
		return nil
	}
	return c.ctx.Err()
}

// Merge sums tables counted over disjoint parts of one input.
func Merge(tables ...types.Table) types.Table {
	var out types.Table
	for i := range tables {
		for v, n := range tables[i].Counts {
			out.Counts[v] += n
		}
		out.Length += tables[i].Length
	}
	return out
}

// Count returns the table for an in-memory buffer.
func Count(p []byte) types.Table {
	var c Counter
	c.Write(p)
	return c.table
}
