package testutil

import (
	"sync"

	"github.com/erraggy/rad2oas/rad"
)

// LogEntry is one call recorded by RecordingLogger.
type LogEntry struct {
	Level string
	Msg   string
	Attrs []any
}

// Attr returns the value logged for key, or nil.
func (e LogEntry) Attr(key string) any {
	for i := 0; i+1 < len(e.Attrs); i += 2 {
		if k, ok := e.Attrs[i].(string); ok && k == key {
			return e.Attrs[i+1]
		}
	}
	return nil
}

// RecordingLogger is a rad.Logger that keeps every call for later assertions.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []any
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (l *RecordingLogger) record(level, msg string, attrs []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(append([]any{}, l.attrs...), attrs...)
	*l.entries = append(*l.entries, LogEntry{Level: level, Msg: msg, Attrs: all})
}

// Debug implements rad.Logger.
func (l *RecordingLogger) Debug(msg string, attrs ...any) { l.record("debug", msg, attrs) }

// Info implements rad.Logger.
func (l *RecordingLogger) Info(msg string, attrs ...any) { l.record("info", msg, attrs) }

// Warn implements rad.Logger.
func (l *RecordingLogger) Warn(msg string, attrs ...any) { l.record("warn", msg, attrs) }

// Error implements rad.Logger.
func (l *RecordingLogger) Error(msg string, attrs ...any) { l.record("error", msg, attrs) }

// With implements rad.Logger. The derived logger shares the recorded entries.
func (l *RecordingLogger) With(attrs ...any) rad.Logger {
	return &RecordingLogger{
		mu:      l.mu,
		entries: l.entries,
		attrs:   append(append([]any{}, l.attrs...), attrs...),
	}
}

// Entries returns a copy of the recorded entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), *l.entries...)
}

// Find returns the recorded entries with the given message.
func (l *RecordingLogger) Find(msg string) []LogEntry {
	var found []LogEntry
	for _, e := range l.Entries() {
		if e.Msg == msg {
			found = append(found, e)
		}
	}
	return found
}

var _ rad.Logger = (*RecordingLogger)(nil)
