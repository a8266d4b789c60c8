package util

import (
	"errors"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	n, err := Count(strings.NewReader("Brad Pitt,1963\n\nBeyonce,1981\n  \nJay-Z,1969\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Count: want: 3, got: %d", n)
	}
}

func TestExhaust(t *testing.T) {
	in := "Brad Pitt,1963\n\nBeyonce,1981\nJay-Z,1969"
	var got []string
	for line := range Exhaust(4, strings.NewReader(in)) {
		got = append(got, string(line))
	}

	want := []string{"Brad Pitt,1963", "Beyonce,1981", "Jay-Z,1969"}
	if len(got) != len(want) {
		t.Fatalf("Exhaust: want: %v, got: %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Exhaust line %d: want: %q, got: %q", i, want[i], got[i])
		}
	}

	// n bounds the number of lines read
	var count int
	for range Exhaust(1, strings.NewReader(in)) {
		count++
	}
	if count != 1 {
		t.Errorf("Exhaust(1): want: 1 line, got: %d", count)
	}
}

func TestParseRecord(t *testing.T) {
	recordTests := []struct {
		line string
		name string
		year int
		err  error
	}{
		{"Brad Pitt,1963", "Brad Pitt", 1963, nil},
		{" Björk , 1965\r", "Björk", 1965, nil},
		{"Smith, Will,1968", "Smith, Will", 1968, nil},
		{"Beyonce", "", 0, ErrMalformedRecord},
		{",1981", "", 0, ErrMalformedRecord},
		{"Jay-Z,nineteen", "", 0, ErrMalformedRecord},
	}

	for _, tt := range recordTests {
		name, year, err := ParseRecord([]byte(tt.line))
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseRecord(%q): want error: %v, got: %v", tt.line, tt.err, err)
			continue
		}
		if name != tt.name || year != tt.year {
			t.Errorf("ParseRecord(%q): want: %q %d, got: %q %d", tt.line, tt.name, tt.year, name, year)
		}
	}
}
