// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used to filter output and their
//              textual representations.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package log

import (
	"strings"
)

// Level represents the importance of a log message
type Level int

const (
	// LevelTrace is the most verbose level, for development use
	LevelTrace Level = iota

	// LevelDebug provides detail for diagnosing problems
	LevelDebug

	// LevelInfo is the standard level for normal operation
	LevelInfo

	// LevelWarn marks situations that continue but deserve attention
	LevelWarn

	// LevelError marks failed operations
	LevelError

	// LevelFatal marks failures the program cannot survive
	LevelFatal
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter representation used by the text
// formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// Enabled reports whether a message at this level passes the minimum
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name, accepting both long and short forms
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn", "warning":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "fatal", "ftl":
		return LevelFatal, true
	default:
		return LevelInfo, false
	}
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
