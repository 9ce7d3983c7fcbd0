// File: doc.go
// Title: Package Documentation for codepoint
// Description: Package codepoint provides Unicode code point classification
//              predicates and ASCII-range case mapping for the plinth
//              foundation library.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

// Package codepoint provides Unicode code point predicates for the plinth
// foundation library.
//
// The predicates here are deliberately small and allocation-free: they are
// called per character from the string measurement, path validation, and
// URI character-class layers. Case mapping is restricted to the ASCII
// range by design; locale-aware folding is out of scope for the library.
package codepoint
