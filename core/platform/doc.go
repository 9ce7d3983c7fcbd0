// File: doc.go
// Title: Package Documentation for platform
// Description: Package platform provides the host OS query collaborator
//              consumed by the path layer, plus wildcard directory listing.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

// Package platform provides the host OS services the library consumes.
//
// The OS interface exposes exactly three queries: home directory, working
// directory, and program file. Host() returns the real implementation;
// Fake carries fixed answers for tests and for rendering paths against a
// foreign environment. ListDir enumerates a directory filtered by a
// '*'/'?' wildcard pattern.
package platform
