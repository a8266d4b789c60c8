package util

import (
	"bufio"
	"bytes"
	"io"
)

// Count counts the records in r, blank lines are not records
func Count(r io.Reader) (int64, error) {
	var n int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) > 0 {
			n++
		}
	}

	return n, scanner.Err()
}
