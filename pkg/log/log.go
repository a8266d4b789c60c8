package log

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

const (
	// Info shows growth failures and rejected operations that are errors
	Info = iota
	// Debug adds rehashes and rejected inserts
	Debug
	// Trace adds every relocation chain
	Trace
)

// GetLogger returns a stdr.Logger that implements the logr.Logger interface
// and sets the verbosity of the returned logger.
// set v to 0 for info level messages,
// 1 for debug messages and 2 for trace level message.
// any other verbosity level will default to 0.
func GetLogger(v int) logr.Logger {
	logger := stdr.New(nil).WithName("cuckoo")
	// bound check
	if v > Trace || v < Info {
		v = Info
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)

	return logger
}
