// File: doc.go
// Title: Stream Package Documentation
// Description: Package documentation for the byte-stream collaborator.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package stream supplies the exact-count byte-stream contract the
// serialization helpers build on: TryRead fills its buffer completely
// or fails, TryWrite emits its buffer completely or fails. WriteSize
// and ReadSize carry a variable-length size prefix where small values
// encode themselves in one byte and larger ones take a marker byte
// plus a big-endian length field.
package stream
