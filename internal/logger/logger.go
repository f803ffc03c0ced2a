// Package logger provides diagnostic output for the unitgen tool.
// Debug, Info and Section messages appear only in verbose mode (the
// --verbose flag); warnings are always written. Output goes to stderr
// so it never mixes with generated listings on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] "+format+"\n", args...)
}

// Info prints a message in verbose mode.
func Info(format string, args ...any) {
	logf(true, "[INFO] "+format+"\n", args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	logf(true, "\n=== %s ===\n", name)
}

// Warn prints a warning regardless of verbose mode.
func Warn(format string, args ...any) {
	logf(false, "[WARN] "+format+"\n", args...)
}

func logf(verboseOnly bool, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(output, format, args...)
}
