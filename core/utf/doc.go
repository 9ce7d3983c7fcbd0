// File: doc.go
// Title: Package Documentation for utf
// Description: Package utf provides stateful converters between UTF-8,
//              UTF-16, UTF-32, and the platform wide encoding, plus
//              validating pre-count helpers for exact allocation sizing.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

// Package utf provides the encoding machinery under the plinth text layer.
//
// The converters are unit-at-a-time state machines: feed one byte or code
// unit with TryConvert and receive Produced, NeedMore, or Error. After an
// error the converter must be Reset before further use. Surrogate pairs
// are combined on UTF-16 decode and produced on UTF-16 encode; lone
// surrogates are always errors, in every encoding.
//
// The Count* helpers validate an input slice and return its exact size in
// all three encodings without producing output. The text layer relies on
// them to allocate each payload in a single exactly-sized block.
package utf
