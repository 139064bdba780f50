// Package potatolog keeps log entries in memory, so that a front end can show
// them.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries a MemoryLogReaderWriter retains
// unless told otherwise.
const DefaultCapacity = 1024

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// Only the most recent entries (up to its capacity) are retained.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
	dropped  int
}

// NewMemoryLogReaderWriter returns a pointer to a new MemoryLogReaderWriter
// retaining up to capacity entries (unbounded for capacity <= 0).
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		excess := len(w.log) - w.capacity
		w.log = append([]LogEntry{}, w.log[excess:]...)
		w.dropped += excess
	}
	return len(p), nil
}

// Get returns (a copy of) the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry{}, w.log...)
}

// Last returns (a copy of) the most recent n entries at or above the given
// level, oldest first.
func (w *MemoryLogReaderWriter) Last(n int, minLevel zerolog.Level) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	var result []LogEntry
	for i := len(w.log) - 1; i >= 0 && len(result) < n; i-- {
		if EntryLevel(w.log[i]) >= minLevel {
			result = append(result, w.log[i])
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// Dropped returns how many entries were discarded for exceeding the capacity.
func (w *MemoryLogReaderWriter) Dropped() int {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.dropped
}

// EntryLevel returns the level of the entry, or zerolog.NoLevel if it has none
// that can be parsed.
func EntryLevel(e LogEntry) zerolog.Level {
	s, ok := e[zerolog.LevelFieldName].(string)
	if !ok {
		return zerolog.NoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel
	}
	return level
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last(n int, minLevel zerolog.Level) []LogEntry
}
