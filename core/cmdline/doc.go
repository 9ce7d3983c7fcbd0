// File: doc.go
// Title: Command-Line Package Documentation
// Description: Package documentation for the schema-driven command-line
//              parser.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package cmdline parses command lines against an immutable option
// schema in two passes.
//
// Pass one normalizes one of three surface syntaxes (a POSIX argument
// array, a Windows argument array with '/name' options, or a single
// quote-delimited command-line string) into a flat token list. Short
// option runs split into one token per character, with an '='-bound
// value attaching to the last one.
//
// Pass two walks the tokens in order, resolves each option through the
// schema's short, case-sensitive long, and case-folded long indices,
// binds values per the option's requirement, and drives a Handler.
// After the last token the handler's PostProcess and Validate hooks
// run; either can reject the command line.
//
// Schemas are built through SchemaBuilder and carry help-text
// generation wrapped to a caller-supplied column width.
package cmdline
