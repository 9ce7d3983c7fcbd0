// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the plinth foundation library. Codes
//              cover the text, path, URI, and command-line components plus
//              a handful of generic conditions.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the plinth library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Text and encoding
	CodeInvalidEncoding Code = "INVALID_ENCODING"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// Path
	CodeEmptyPath          Code = "EMPTY_PATH"
	CodeInvalidPath        Code = "INVALID_PATH"
	CodeInvalidPathElement Code = "INVALID_PATH_ELEMENT"
	CodePathTooLong        Code = "PATH_TOO_LONG"
	CodeInvalidOperation   Code = "INVALID_OPERATION"

	// URI
	CodeURIParse Code = "URI_PARSE"

	// Command line
	CodeUnknownOption       Code = "UNKNOWN_OPTION"
	CodeMissingOptionValue  Code = "MISSING_OPTION_VALUE"
	CodeMissingClosingQuote Code = "MISSING_CLOSING_QUOTE"
	CodeMalformedOption     Code = "MALFORMED_OPTION"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeInvalidEncoding, CodeIndexOutOfRange, CodeValueOutOfRange, CodeInvalidFormat,
		CodeEmptyPath, CodeInvalidPath, CodeInvalidPathElement, CodePathTooLong, CodeInvalidOperation,
		CodeURIParse,
		CodeUnknownOption, CodeMissingOptionValue, CodeMissingClosingQuote, CodeMalformedOption,
		CodeConfigError, CodeEnvironmentError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidEncoding, CodeIndexOutOfRange, CodeValueOutOfRange, CodeInvalidFormat:
		return "text"
	case CodeEmptyPath, CodeInvalidPath, CodeInvalidPathElement, CodePathTooLong, CodeInvalidOperation:
		return "path"
	case CodeURIParse:
		return "uri"
	case CodeUnknownOption, CodeMissingOptionValue, CodeMissingClosingQuote, CodeMalformedOption:
		return "cmdline"
	case CodeConfigError, CodeEnvironmentError:
		return "configuration"
	default:
		return "generic"
	}
}
