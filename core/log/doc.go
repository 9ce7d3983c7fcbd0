// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging layer.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package log provides the structured logger the command-line front end
// and the library's collaborators report through.
//
// Loggers filter by Level and render entries through a Formatter, JSON
// for machines or a single-line text form for consoles. The With*
// methods return clones, so a configured logger can be shared freely;
// request IDs generated by WithNewRequestID tie the entries of one
// invocation together. LogError maps a coded error's severity onto the
// matching level and attaches its code and operation as fields.
package log
