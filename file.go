package entropy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/entropy/internal/binary"
	"github.com/simonhull/entropy/internal/counter"
	"github.com/simonhull/entropy/internal/types"
)

// File is the result of analyzing one file.
//
// The file handle is closed before Open returns; File only carries the
// byte-frequency table and where it came from.
type File struct {
	// Table holds the byte counts of the whole file.
	Table *Table

	// Path to the analyzed file
	Path string

	// Number of bytes counted
	Size int64
}

// Shannon returns the Shannon entropy of the file in bits per byte.
func (f *File) Shannon() float64 {
	return f.Table.Shannon()
}

// Metric returns the metric entropy of the file, in [0, 1].
func (f *File) Metric() float64 {
	return f.Table.Metric()
}

// Open reads the whole file at path and builds its byte-frequency table.
//
// Errors opening or statting the file are wrapped and returned as-is;
// failures while reading are returned as *ReadError. No File is returned
// on error.
//
// Example:
//
//	file, err := entropy.Open("firmware.bin")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s: %.4f bits/byte\n", file.Path, file.Shannon())
func Open(path string, opts ...Option) (*File, error) {
	return OpenContext(context.Background(), path, opts...)
}

// OpenContext is Open with cancellation.
//
// The context is checked before the file is opened and between chunks
// while reading. A cancelled read returns ctx.Err().
func OpenContext(ctx context.Context, path string, opts ...Option) (result *File, err error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			if err != nil {
				err = multierror.Append(err, fmt.Errorf("close file: %w", cerr))
			} else {
				err = fmt.Errorf("close file: %w", cerr)
			}
			result = nil
		}
	}()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	// Stat sizes are a hint only: procfs files report 0 and growing files
	// outrun them. Sections are used solely to spread a parallel scan.
	var table *Table
	if stat.Mode().IsRegular() && options.workers > 1 && stat.Size() > 0 {
		table, err = analyze(ctx, f, stat.Size(), path, options)
	} else {
		table, err = stream(ctx, f, path, options)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		Path:  path,
		Size:  int64(table.Length),
		Table: table,
	}, nil
}

// Analyze builds the table for a source of expected size.
//
// The first size bytes may be split across workers; anything the source
// holds past size is then streamed and counted as well. If the source holds
// fewer than size bytes, Analyze returns a *ReadError wrapping
// io.ErrUnexpectedEOF.
func Analyze(ctx context.Context, r io.ReaderAt, size int64, path string, opts ...Option) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analyze(ctx, r, size, path, applyOptions(opts))
}

func analyze(ctx context.Context, r io.ReaderAt, size int64, path string, options *openOptions) (*Table, error) {
	start := time.Now()
	sr := binary.NewSafeReader(r, size, path)

	workers := options.workers
	if size < int64(workers)*int64(options.chunkSize) {
		// Not worth splitting: fewer chunks than workers.
		workers = 1
	}

	options.logger.Debug().
		Str("path", path).
		Int64("size", size).
		Int("workers", workers).
		Int("chunk_size", options.chunkSize).
		Msg("scanning")

	var (
		table types.Table
		err   error
	)
	if workers == 1 {
		table, err = scanSection(ctx, sr, 0, size, options.chunkSize)
	} else {
		table, err = scanParallel(ctx, sr, workers, options.chunkSize)
	}
	if err == nil {
		var tail types.Table
		tail, err = scanTail(ctx, sr, options.chunkSize)
		if tail.Length > 0 {
			options.logger.Debug().Str("path", path).Uint64("bytes", tail.Length).Msg("counted bytes past expected size")
		}
		table = counter.Merge(table, tail)
	}
	if err != nil {
		options.logger.Debug().Err(err).Str("path", path).Msg("scan failed")
		return nil, err
	}

	options.logger.Debug().
		Str("path", path).
		Uint64("bytes", table.Length).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	return &table, nil
}

// scanParallel splits [0, size) into one section per worker.
func scanParallel(ctx context.Context, sr *binary.SafeReader, workers, chunkSize int) (types.Table, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	size := sr.Size()
	step := size / int64(workers)
	tables := make([]types.Table, workers)

	for i := range workers {
		off := int64(i) * step
		n := step
		if i == workers-1 {
			n = size - off
		}

		g.Go(func() error {
			table, err := scanSection(ctx, sr, off, n, chunkSize)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return types.Table{}, err
	}

	return counter.Merge(tables...), nil
}

func scanSection(ctx context.Context, sr *binary.SafeReader, off, n int64, chunkSize int) (types.Table, error) {
	sec, err := sr.Section(off, n)
	if err != nil {
		return types.Table{}, err
	}

	c := counter.New(ctx, chunkSize)
	if err := c.ReadSection(sec); err != nil {
		return types.Table{}, err
	}
	return c.Table(), nil
}

// scanTail streams whatever the source holds past its expected size.
func scanTail(ctx context.Context, sr *binary.SafeReader, chunkSize int) (types.Table, error) {
	size := sr.Size()

	c := counter.New(ctx, chunkSize)
	if _, err := c.ReadFrom(sr.Tail()); err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			re.Path = sr.Path()
			re.Offset += size
		}
		return types.Table{}, err
	}
	return c.Table(), nil
}

func stream(ctx context.Context, r io.Reader, path string, options *openOptions) (*Table, error) {
	start := time.Now()
	options.logger.Debug().
		Str("path", path).
		Int("chunk_size", options.chunkSize).
		Msg("streaming")

	table, err := NewContext(ctx, r, WithChunkSize(options.chunkSize))
	if err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			re.Path = path
		}
		options.logger.Debug().Err(err).Str("path", path).Msg("scan failed")
		return nil, err
	}

	options.logger.Debug().
		Str("path", path).
		Uint64("bytes", table.Length).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	return table, nil
}
