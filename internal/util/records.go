package util

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
)

var ErrMalformedRecord = fmt.Errorf("record is not in the name,year form")

// SafeReadLine blocks until a whole line can be read or
// r returns an error.
// ***warning: expects lines to be \n separated***
func SafeReadLine(r *bufio.Reader) (line []byte, err error) {
	line, err = r.ReadBytes('\n')
	if len(line) > 0 && line[len(line)-1] == '\n' {
		// strip the \n
		line = line[:len(line)-1]
	}
	return
}

// Exhaust the first n records of r, blank lines are skipped
// and do not count toward n.
func Exhaust(n int64, r io.Reader) <-chan []byte {
	// make the output channel
	var lines = make(chan []byte)
	// wrap r in a bufio reader
	src := bufio.NewReader(r)
	go func() {
		defer close(lines)
		for sent := int64(0); sent < n; {
			line, err := SafeReadLine(src)
			if len(bytes.TrimSpace(line)) != 0 {
				lines <- line
				sent++
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("error reading records: %v", err)
				}
				return
			}
		}
	}()

	return lines
}

// ParseRecord splits a name,year line. The name is everything
// before the last comma so names may contain commas themselves.
func ParseRecord(line []byte) (name string, year int, err error) {
	line = bytes.TrimRight(line, "\r")
	i := bytes.LastIndexByte(line, ',')
	if i <= 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	year, err = strconv.Atoi(string(bytes.TrimSpace(line[i+1:])))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, line, err)
	}

	return string(bytes.TrimSpace(line[:i])), year, nil
}
