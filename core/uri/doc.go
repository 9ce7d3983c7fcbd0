// File: doc.go
// Title: URI Package Documentation
// Description: Package documentation for the RFC 3986 URI layer.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package uri parses and renders URIs per the RFC 3986 component
// grammar, restricted to ASCII sources with percent-escapes.
//
// Parsing is a single forward pass: an opening run disambiguates the
// scheme from a leading path element without backtracking, the
// authority is split into user-info, host, and port, and the path,
// query, and fragment states validate their character classes and
// escape sequences. The result is a Uri holding byte ranges into the
// unmodified source rather than per-component copies.
//
// Rendering takes a Usage: AsSpecified emits the stored bytes verbatim,
// Escaped percent-encodes everything outside each component's character
// class, and Display decodes well-formed escapes for humans. Builder is
// the mutable counterpart with per-component fields.
package uri
