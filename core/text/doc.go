// File: doc.go
// Title: Package Documentation for text
// Description: Package text provides the immutable, shared, lazily measured
//              string value type at the base of the plinth library.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

// Package text provides the immutable string value at the base of plinth.
//
// A String is a handle to a shared payload of validated UTF-8. Copying a
// String copies the handle, not the bytes; the path and URI layers lean on
// this to keep their values cheap. Every constructor validates its input
// and fails with INVALID_ENCODING on malformed sequences, so downstream
// parsers never re-validate.
//
// The payload caches four measurements on first request: UTF-16 length,
// UTF-32 length, printable length, and a 64-bit content hash. The caches
// are atomic and write-once; concurrent readers are lock-free and never
// observe a torn value.
//
// Iteration is bidirectional over code points; see Iterator. Comparison
// is byte-wise (code point order for UTF-8); case-insensitive comparison
// and the ToUpper/ToLower transforms fold the ASCII range only.
package text
