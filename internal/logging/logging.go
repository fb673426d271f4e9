// Package logging appends errors and optional JSON trace entries to a log
// file so nothing is written over the picker's terminal output. Without a
// configured path nothing is written at all.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
)

// Entry is a single trace record.
type Entry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Configure sets the log destination. An empty path disables the log file.
// Missing directories are created; if that fails logging stays disabled.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	path = strings.TrimSpace(path)
	if path == "" {
		logPath = ""
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logPath = ""
		return
	}
	logPath = path
}

// DefaultPath is the log file used when tracing is requested without an
// explicit path: dirpick/dirpick.log under the user cache directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dirpick", "dirpick.log")
}

// Path returns the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Error records err in the log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(func(w io.Writer) error {
		logger := log.New(w, "", log.LstdFlags)
		logger.Println(err)
		return nil
	})
}

// Trace appends a JSON entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := Entry{Time: time.Now().UTC(), Event: event, Payload: payload}
	write(func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// write drops failures silently; stderr carries only the outcome line.
func write(fn func(io.Writer) error) {
	path := Path()
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_ = fn(f)
}
