// File: doc.go
// Title: Path Package Documentation
// Description: Package documentation for the schema-driven path layer.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package path models file-system paths as a classified root plus a
// list of elements, parsed and rendered through a pluggable Schema.
//
// Two schemas exist. The Windows schema is case-insensitive, accepts
// '/' alongside '\' while parsing, and recognizes drive, current-drive,
// UNC, and Win32 namespace roots. The POSIX schema is case-sensitive
// and recognizes the filesystem root and the home-relative '~/' form.
// Native returns the host platform's schema.
//
// Path is the immutable value; Builder is its mutable counterpart with
// canonicalization and absolute/relative conversion. SearchPathList
// holds an ordered list of directories with duplicate counting and the
// TryFind/TryFindMatch search operations.
//
// Rendering takes a Usage: Display for humans, Shell for command lines
// (fails past the shell-safe length), and Kernel for direct OS calls
// (Windows long-path prefixes, POSIX home substitution).
package path
