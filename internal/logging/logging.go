package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "slotmenu.log"

// logger owns the append-only log file. The handle is opened lazily and kept
// open until Configure points somewhere else.
type logger struct {
	mu           sync.Mutex
	path         string
	file         *os.File
	traceEnabled bool
}

var shared = &logger{path: defaultLogFile}

// out returns the open log file, opening it on first use. Callers hold mu.
func (l *logger) out() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.file = f
	return f, nil
}

// Error appends an error line to the shared log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	shared.mu.Lock()
	defer shared.mu.Unlock()

	f, ferr := shared.out()
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	fmt.Fprintf(f, "%s %v\n", time.Now().Format("2006/01/02 15:04:05"), err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	shared.mu.Lock()
	shared.traceEnabled = enabled
	shared.mu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is
// enabled.
func Trace(event string, payload interface{}) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if !shared.traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := shared.out()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination and drops any handle to the previous
// one. Empty values fall back to the default path. Directories are created
// automatically when missing.
func Configure(path string) {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.file != nil {
		shared.file.Close()
		shared.file = nil
	}
	if strings.TrimSpace(path) == "" {
		shared.path = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		shared.path = defaultLogFile
		return
	}
	shared.path = path
}
