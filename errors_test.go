package entropy

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadError_Error(t *testing.T) {
	err := &ReadError{Path: "disk.img", Offset: 512, Err: io.ErrUnexpectedEOF}

	msg := err.Error()
	for _, want := range []string{"disk.img", "offset 512", "unexpected EOF"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("ReadError should unwrap to io.ErrUnexpectedEOF")
	}
}

func TestUnsupportedMeasureError_Error(t *testing.T) {
	err := &UnsupportedMeasureError{Name: "renyi"}

	msg := err.Error()
	if !strings.Contains(msg, "renyi") {
		t.Errorf("error should contain name, got: %s", msg)
	}
	if !strings.Contains(msg, "unsupported measure") {
		t.Errorf("error should contain 'unsupported measure', got: %s", msg)
	}
}

func TestOptions(t *testing.T) {
	options := applyOptions([]Option{
		WithChunkSize(-5),
		WithWorkers(0),
	})
	if options.chunkSize <= 0 {
		t.Errorf("chunkSize = %d, want default", options.chunkSize)
	}
	if options.workers != 1 {
		t.Errorf("workers = %d, want 1", options.workers)
	}

	options = applyOptions([]Option{WithChunkSize(10), WithWorkers(3)})
	if options.chunkSize != 10 || options.workers != 3 {
		t.Errorf("options = %+v, want chunkSize 10, workers 3", options)
	}
}
