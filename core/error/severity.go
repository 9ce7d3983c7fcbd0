// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. User-input parse failures are
//              low severity; environment failures are high.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, malformed paths or URIs, unknown options
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a rendering mode that cannot represent a value, a missing file
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: the process environment cannot be queried, configuration is unreadable
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	// Examples: internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeEnvironmentError:
		return SeverityHigh

	case CodeInvalidOperation, CodePathTooLong, CodeNotFound:
		return SeverityMedium

	case CodeInvalidInput, CodeInvalidEncoding, CodeIndexOutOfRange,
		CodeValueOutOfRange, CodeInvalidFormat,
		CodeEmptyPath, CodeInvalidPath, CodeInvalidPathElement,
		CodeURIParse,
		CodeUnknownOption, CodeMissingOptionValue, CodeMissingClosingQuote,
		CodeMalformedOption:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
