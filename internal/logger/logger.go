// Package logger provides verbose logging for the complete CLI.
// Messages are only written when verbose mode is enabled via the --verbose
// flag, and go to stderr so they never mix with command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
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
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs arithmetic and ledger operations.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Section prints a section header.
func Section(name string) {
	logf("", "\n=== %s ===", name)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning for failures that do not abort the command.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
