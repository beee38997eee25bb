package types

import "fmt"

// ReadError is returned when the byte source cannot be read to completion.
//
// No partial Table is ever returned alongside a ReadError.
type ReadError struct {
	Path   string
	Err    error
	Offset int64
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read failed at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: read failed at offset %d: %v", e.Path, e.Offset, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedMeasureError is returned for an unknown measure name.
type UnsupportedMeasureError struct {
	Name string
}

func (e *UnsupportedMeasureError) Error() string {
	return fmt.Sprintf("unsupported measure %q (want shannon or metric)", e.Name)
}
