// File: format.go
// Title: Log Output Formatters
// Description: Implements the JSON formatter for machine consumption and
//              the single-line text formatter for consoles.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Formatter renders one entry into the bytes written to the output
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// Format names a built-in formatter
type Format string

const (
	// FormatJSON selects one JSON object per line
	FormatJSON Format = "json"

	// FormatText selects the human-readable single-line form
	FormatText Format = "text"
)

// NewFormatter returns the formatter for a format name, defaulting to
// JSON for anything unrecognized.
func NewFormatter(f Format) Formatter {
	if f == FormatText {
		return &textFormatter{}
	}
	return &jsonFormatter{}
}

// jsonFormatter emits one JSON object per entry
type jsonFormatter struct{}

func (jsonFormatter) Format(e *Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(e.Fields)+6)
	record["time"] = e.Timestamp.Format(time.RFC3339Nano)
	record["level"] = e.Level.String()
	record["message"] = e.Message
	if e.Logger != "" {
		record["logger"] = e.Logger
	}
	if e.RequestID != "" {
		record["request_id"] = e.RequestID
	}
	if e.Error != nil {
		record["error"] = e.Error.Error()
	}
	for k, v := range e.Fields {
		record[k] = v
	}

	out, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// textFormatter emits "time LVL [logger] message key=value ..."
type textFormatter struct{}

func (textFormatter) Format(e *Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("2006-01-02 15:04:05.000"))
	sb.WriteByte(' ')
	sb.WriteString(e.Level.ShortString())
	if e.Logger != "" {
		sb.WriteString(" [" + e.Logger + "]")
	}
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	if e.RequestID != "" {
		sb.WriteString(" request_id=" + e.RequestID)
	}
	if e.Error != nil {
		fmt.Fprintf(&sb, " error=%q", e.Error.Error())
	}

	// deterministic field order
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, e.Fields[k])
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
