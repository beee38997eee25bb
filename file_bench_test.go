package entropy_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/entropy"
)

// BenchmarkFromBytes measures raw counting speed on an in-memory buffer.
func BenchmarkFromBytes(b *testing.B) {
	data := randomData(1 << 20)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		entropy.FromBytes(data)
	}
}

// BenchmarkShannon measures deriving entropy from a populated table.
func BenchmarkShannon(b *testing.B) {
	table := entropy.FromBytes(randomData(1 << 16))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		table.Shannon()
	}
}

// BenchmarkOpen measures analyzing a single file.
func BenchmarkOpen(b *testing.B) {
	path := writeTemp(b, randomData(4<<20))

	b.SetBytes(4 << 20)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := entropy.Open(path); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOpenWorkers measures how the parallel scan scales.
func BenchmarkOpenWorkers(b *testing.B) {
	path := writeTemp(b, randomData(16<<20))
	ctx := context.Background()

	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("%d_workers", n), func(b *testing.B) {
			b.SetBytes(16 << 20)
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := entropy.OpenContext(ctx, path, entropy.WithWorkers(n)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
