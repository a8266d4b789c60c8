package log

import (
	"testing"

	"github.com/go-logr/stdr"
)

func TestGetLogger(t *testing.T) {
	verbosityTests := []struct {
		v    int
		want int
	}{
		{Info, Info},
		{Debug, Debug},
		{Trace, Trace},
		{-1, Info},
		{3, Info},
	}

	for _, tt := range verbosityTests {
		logger := GetLogger(tt.v)
		// SetVerbosity returns the previous level
		if got := stdr.SetVerbosity(0); got != tt.want {
			t.Errorf("GetLogger(%d): want verbosity: %d, got: %d", tt.v, tt.want, got)
		}
		if logger.GetSink() == nil {
			t.Errorf("GetLogger(%d): nil sink", tt.v)
		}
	}
}
