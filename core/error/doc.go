// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used across
//              the plinth foundation library, with codes, severities, and
//              parse positions.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

// Package error provides structured errors for the plinth foundation library.
//
// Every parser in the library reports failures through *Error values
// carrying a Code from the library taxonomy (INVALID_ENCODING, INVALID_PATH,
// URI_PARSE, UNKNOWN_OPTION, ...), a Severity, and, for parse failures, the
// byte position of the offending input. The type implements the standard
// error interface and supports errors.Is/As unwrapping via Unwrap.
//
// Because the package shadows the predeclared identifier, importers alias it:
//
//	perror "github.com/plinth-go/plinth/core/error"
package error
