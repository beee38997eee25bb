package entropy

import (
	"github.com/rs/zerolog"

	"github.com/simonhull/entropy/internal/counter"
)

// Option configures how input is read.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := entropy.Open("archive.zip",
//	    entropy.WithChunkSize(1<<20),
//	    entropy.WithWorkers(4),
//	)
type Option func(*openOptions)

// openOptions holds configuration for reading input.
type openOptions struct {
	logger    zerolog.Logger
	chunkSize int // Read buffer size in bytes
	workers   int // Concurrent sections for regular files (1 = serial)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:    zerolog.Nop(),
		chunkSize: counter.DefaultChunkSize,
		workers:   1,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithChunkSize sets the read buffer size in bytes.
//
// Values <= 0 keep the default of 32 KiB.
func WithChunkSize(bytes int) Option {
	return func(o *openOptions) {
		if bytes > 0 {
			o.chunkSize = bytes
		}
	}
}

// WithWorkers counts disjoint sections of a regular file concurrently.
//
// By default a file is read in a single sequential pass. With n > 1 the
// file is split into n sections, each counted into its own table, and the
// tables are summed. Every byte is still counted exactly once, so the
// result is identical to a serial scan.
//
// Streams (pipes, devices, io.Reader input) are always read serially.
func WithWorkers(n int) Option {
	return func(o *openOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger used for debug output while scanning.
//
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}
