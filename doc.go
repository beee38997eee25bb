// Package entropy measures how random the bytes of a file are.
//
// It tabulates how often each of the 256 byte values occurs and derives
// two measures from that table:
//
//   - Shannon entropy, in bits per byte, between 0 and 8
//   - Metric entropy, Shannon entropy divided by 8, between 0 and 1
//
// Compressed or encrypted data sits close to 8 bits per byte; text,
// source code and sparse binaries sit well below.
//
// # Quick Start
//
//	file, err := entropy.Open("backup.tar.gz")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("shannon %.6f metric %.6f\n", file.Shannon(), file.Metric())
//
// Any io.Reader works too:
//
//	table, err := entropy.New(os.Stdin)
//
// and so does a buffer already in memory:
//
//	table := entropy.FromBytes(data)
//
// # Tables
//
// A [Table] holds one count per byte value and the total number of bytes.
// It is built in a single pass and never changes afterwards, so its
// measures may be queried any number of times in any order.
//
// An empty input produces an all-zero table whose entropy is 0.
//
// # Error Handling
//
// Reading is all-or-nothing: either every byte is counted, or the call
// fails with a [*ReadError] and no table. Use errors.As to inspect it:
//
//	var re *entropy.ReadError
//	if errors.As(err, &re) {
//		log.Printf("read failed at offset %d: %v", re.Offset, re.Err)
//	}
//
// # Performance
//
// Counting is a linear scan with a fixed 2 KiB table. Large regular files
// can be split across goroutines with [WithWorkers]; the result is
// identical to a serial scan.
package entropy
