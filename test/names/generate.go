package names

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log"

	bloom "github.com/bits-and-blooms/bloom/v3"
)

// names are random blobs of NameLen bytes expressed in hex and
// prefixed with Prefix, ex:
//  n:0e1f461bbefa6e07
//  n:59245d7c68b28404

const (
	Prefix  = "n:"
	NameLen = 8
	// FalsePositive is the rate at which a fresh name is wrongly
	// taken for a duplicate and skipped
	FalsePositive = 1e-6

	minYear = 1000
	maxYear = 9999
)

// Names writes n distinct names to a channel and then closes it
func Names(n int) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		seen := bloom.NewWithEstimates(uint(max(n, 1)), FalsePositive)
		b := make([]byte, NameLen)
		for i := 0; i < n; {
			if _, err := rand.Read(b); err != nil {
				log.Fatalf("could not generate %d names", n)
			}
			name := prefix(b)
			// a false positive only costs one more draw
			if seen.TestAndAdd([]byte(name)) {
				continue
			}
			out <- name
			i++
		}
	}()
	return out
}

// Collect exhausts Names(n) into a slice
func Collect(n int) []string {
	out := make([]string, 0, n)
	for name := range Names(n) {
		out = append(out, name)
	}
	return out
}

// Year returns a random four digit year
func Year() int {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		log.Fatal("could not generate a year")
	}
	return minYear + int(binary.LittleEndian.Uint64(b[:])%(maxYear-minYear+1))
}

// Prefix a byte value with the local preset prefix
func prefix(value []byte) string {
	return Prefix + hex.EncodeToString(value)
}

// max would be great in the stdlib
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
