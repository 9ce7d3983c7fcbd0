// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry record and the Fields map carried by
//              every structured message.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Fields holds the custom key-value pairs of a structured message
type Fields map[string]interface{}

// Clone returns a copy of the fields
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Entry is one log record handed to the formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
}

// newEntry assembles an entry stamped with the current time
func newEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
