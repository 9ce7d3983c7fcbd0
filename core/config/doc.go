// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for configuration loading.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

// Package config loads configuration for the command-line front end
// from TOML or YAML files, with environment variable overrides.
//
// Values are addressed by dotted keys ("log.level"); the matching
// environment variable is the upper-cased key with dots replaced by
// underscores, optionally behind a prefix. Discover probes a search
// path list of directories for well-known file names and loads the
// first hit, so a user file in the working directory shadows the
// system-wide one.
package config
