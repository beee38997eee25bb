// Package binary provides bounds-checked sequential reading over an io.ReaderAt.
package binary

import (
	"errors"
	"io"
	"math"

	"github.com/simonhull/entropy/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the declared size of the underlying source.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from the given offset.
//
// Requests outside the declared size return *types.OutOfBoundsError. I/O
// failures and short reads return *types.ReadError; a short read means the
// source shrank after its size was taken and wraps io.ErrUnexpectedEOF.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if len(b) == 0 {
		return nil
	}

	// Check bounds
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return &types.ReadError{Path: sr.path, Offset: off + int64(n), Err: err}
	}

	if n < len(b) {
		return &types.ReadError{Path: sr.path, Offset: off + int64(n), Err: io.ErrUnexpectedEOF}
	}

	return nil
}

// Tail returns a plain reader over everything past the declared size.
//
// Sizes taken from stat can lag behind a growing file; the tail lets a
// caller count those bytes too. It is empty when the source holds exactly
// size bytes.
func (sr *SafeReader) Tail() io.Reader {
	return io.NewSectionReader(sr.r, sr.size, math.MaxInt64-sr.size)
}

// Section returns a Reader over [off, off+n).
func (sr *SafeReader) Section(off, n int64) (*Reader, error) {
	if off < 0 || n < 0 || off+n > sr.size {
		return nil, &types.OutOfBoundsError{
			Path:   sr.path,
			What:   "section",
			Offset: off,
			Length: int(n),
			Size:   sr.size,
		}
	}

	return &Reader{
		SafeReader: sr,
		offset:     off,
		end:        off + n,
	}, nil
}

// Reader provides sequential chunked reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
	end    int64
}

// Next fills up to len(buf) bytes from the current offset and advances.
//
// It returns io.EOF once the section is exhausted. Unlike io.Reader, a
// non-EOF return always reports a completely filled chunk: either
// len(buf) bytes or the remainder of the section.
func (r *Reader) Next(buf []byte) (int, error) {
	remaining := r.Remaining()
	if remaining == 0 {
		return 0, io.EOF
	}

	if int64(len(buf)) > remaining {
		buf = buf[:remaining]
	}

	if err := r.SafeReader.ReadAt(buf, r.offset, "chunk"); err != nil {
		return 0, err
	}

	r.offset += int64(len(buf))
	return len(buf), nil
}

// Remaining returns the number of bytes left in the section.
func (r *Reader) Remaining() int64 {
	return r.end - r.offset
}
