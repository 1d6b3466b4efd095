package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds configuration for the audit sink.
type Config struct {
	// Dir is the directory holding audit log files.
	Dir string `mapstructure:"dir" default:"logs"`
	// File is the audit log file name inside Dir.
	File string `mapstructure:"file" default:"audit.log"`
}

// Entry is a single audit record. Entries are serialized as one JSON object
// per line (JSONL).
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Arguments map[string]any `json:"arguments"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
}

// Sink receives audit entries. Implementations must be safe for concurrent
// use; handlers log from request goroutines.
type Sink interface {
	Log(action string, arguments map[string]any, success bool, err error)
}

// FileSink appends JSONL entries to a file, creating the directory on first
// write. It is injected into the features that need auditing; there is no
// package-level global.
type FileSink struct {
	path string

	mu      sync.Mutex
	created bool
}

// NewFileSink creates a sink writing to cfg.Dir/cfg.File.
func NewFileSink(cfg Config) *FileSink {
	return &FileSink{path: filepath.Join(cfg.Dir, cfg.File)}
}

// Log appends one entry. Write failures are reported on stderr rather than
// returned; auditing must never fail the request it describes.
func (s *FileSink) Log(action string, arguments map[string]any, success bool, err error) {
	entry := Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Arguments: arguments,
		Success:   success,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.created {
		if mkErr := os.MkdirAll(filepath.Dir(s.path), 0o755); mkErr != nil {
			fmt.Fprintf(os.Stderr, "audit: create dir: %v\n", mkErr)
			return
		}
		s.created = true
	}

	f, openErr := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if openErr != nil {
		fmt.Fprintf(os.Stderr, "audit: open log: %v\n", openErr)
		return
	}
	defer f.Close()

	line, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		fmt.Fprintf(os.Stderr, "audit: marshal entry: %v\n", marshalErr)
		return
	}
	if _, writeErr := f.Write(append(line, '\n')); writeErr != nil {
		fmt.Fprintf(os.Stderr, "audit: write entry: %v\n", writeErr)
	}
}

// NopSink discards all entries. Used by tests and when auditing is disabled.
type NopSink struct{}

// Log implements Sink.
func (NopSink) Log(string, map[string]any, bool, error) {}
