package counter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"testing/iotest"

	"github.com/simonhull/entropy/internal/binary"
	"github.com/simonhull/entropy/internal/types"
)

func sum(t types.Table) uint64 {
	var s uint64
	for _, c := range t.Counts {
		s += c
	}
	return s
}

func randomBytes(n int) []byte {
	r := rand.New(rand.NewPCG(1, 2))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.UintN(256))
	}
	return b
}

func TestCounter_Write(t *testing.T) {
	var c Counter
	c.Write([]byte{0x00, 0x00, 0x01})
	c.Write([]byte{0x01, 0x02})

	table := c.Table()
	if table.Counts[0x00] != 2 || table.Counts[0x01] != 2 || table.Counts[0x02] != 1 {
		t.Errorf("counts = %v, want [2 2 1 ...]", table.Counts[:3])
	}
	for v := 3; v < types.Symbols; v++ {
		if table.Counts[v] != 0 {
			t.Fatalf("Counts[%d] = %d, want 0", v, table.Counts[v])
		}
	}
	if table.Length != 5 {
		t.Errorf("Length = %d, want 5", table.Length)
	}
}

func TestCounter_ReadFrom(t *testing.T) {
	data := randomBytes(100_000)

	tests := []struct {
		name   string
		reader io.Reader
		chunk  int
	}{
		{name: "default chunk", reader: bytes.NewReader(data)},
		{name: "small chunk", reader: bytes.NewReader(data), chunk: 7},
		{name: "one byte reader", reader: iotest.OneByteReader(bytes.NewReader(data)), chunk: 64},
		{name: "data with EOF", reader: iotest.DataErrReader(bytes.NewReader(data))},
		{name: "half reader", reader: iotest.HalfReader(bytes.NewReader(data))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(context.Background(), tt.chunk)

			n, err := c.ReadFrom(tt.reader)
			if err != nil {
				t.Fatalf("ReadFrom() error = %v", err)
			}
			if n != int64(len(data)) {
				t.Errorf("ReadFrom() = %d bytes, want %d", n, len(data))
			}

			table := c.Table()
			if table.Length != uint64(len(data)) {
				t.Errorf("Length = %d, want %d", table.Length, len(data))
			}
			if got := sum(table); got != table.Length {
				t.Errorf("sum(Counts) = %d, Length = %d", got, table.Length)
			}
			if table.Counts != Count(data).Counts {
				t.Error("streamed counts differ from in-memory counts")
			}
		})
	}
}

func TestCounter_ReadFrom_Empty(t *testing.T) {
	c := New(context.Background(), 0)

	n, err := c.ReadFrom(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if n != 0 || c.Table().Length != 0 {
		t.Errorf("ReadFrom(empty) = %d, Length = %d; want 0, 0", n, c.Table().Length)
	}
}

func TestCounter_ReadFrom_Error(t *testing.T) {
	boom := errors.New("permission revoked")
	r := io.MultiReader(bytes.NewReader([]byte("abc")), iotest.ErrReader(boom))

	c := New(context.Background(), 0)
	_, err := c.ReadFrom(r)

	var re *types.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("ReadFrom() error = %v, want ReadError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("ReadError should wrap %v", boom)
	}
	if re.Offset != 3 {
		t.Errorf("Offset = %d, want 3", re.Offset)
	}
}

func TestCounter_ReadFrom_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(ctx, 0)
	_, err := c.ReadFrom(bytes.NewReader([]byte("abc")))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFrom() error = %v, want context.Canceled", err)
	}
}

func TestCounter_ReadSection(t *testing.T) {
	data := randomBytes(10_000)
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "random.bin")

	sec, err := sr.Section(0, int64(len(data)))
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}

	c := New(context.Background(), 1000)
	if err := c.ReadSection(sec); err != nil {
		t.Fatalf("ReadSection() error = %v", err)
	}

	if c.Table().Counts != Count(data).Counts {
		t.Error("section counts differ from in-memory counts")
	}
}

func TestCounter_ReadSection_Truncated(t *testing.T) {
	data := []byte("short")
	sr := binary.NewSafeReader(bytes.NewReader(data), 64, "shrunk.bin")

	sec, err := sr.Section(0, 64)
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}

	c := New(context.Background(), 16)
	err = c.ReadSection(sec)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSection() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestMerge(t *testing.T) {
	data := randomBytes(4096)

	parts := []types.Table{
		Count(data[:1000]),
		Count(data[1000:1001]),
		Count(data[1001:]),
	}

	merged := Merge(parts...)
	whole := Count(data)
	if merged != whole {
		t.Error("merged table differs from table of the whole input")
	}
	if got := Merge(); got.Length != 0 {
		t.Errorf("Merge() of nothing has Length %d, want 0", got.Length)
	}
}
