// Package debug provides optional file-based debug logging.
//
// When the FORMS_DEBUG environment variable is set to a file path, layout
// trace messages are appended to that file. Otherwise logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// ensureLocked opens the FORMS_DEBUG file if configured. Caller must hold mu.
func ensureLocked() bool {
	if !checked {
		checked = true
		path := os.Getenv("FORMS_DEBUG")
		if path == "" {
			return false
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return false
		}
		logFile = f
	}
	return logFile != nil
}

// Logf writes a timestamped message to the debug log, if enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !ensureLocked() {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] "+format+"\n", append([]any{ts}, args...)...)
}

// Close closes the log file and resets state. Primarily for tests.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	checked = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
