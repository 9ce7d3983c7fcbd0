// File: schema.go
// Title: Path Schema Interface
// Description: Defines the injected capability set implementing one path
//              grammar flavor: separators, element validation, root
//              recognition, and usage-specific rendering.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package path

import (
	"runtime"

	"github.com/plinth-go/plinth/core/platform"
)

// Usage selects a rendering policy for path strings
type Usage int

const (
	// UsageDisplay renders a native-looking string with no length check
	UsageDisplay Usage = iota

	// UsageKernel renders the form handed to direct OS calls: long-path
	// prefixes on Windows, home-directory substitution on POSIX
	UsageKernel

	// UsageShell renders like Display but fails when the result exceeds
	// the shell-safe length limit
	UsageShell
)

// String returns the string representation of the usage
func (u Usage) String() string {
	switch u {
	case UsageDisplay:
		return "display"
	case UsageKernel:
		return "kernel"
	case UsageShell:
		return "shell"
	default:
		return "unknown"
	}
}

// MaxShellPath is the longest path Shell usage will render and the
// threshold past which Kernel usage applies the Windows long-path prefix.
const MaxShellPath = 260

// Schema is the capability set implementing one path grammar flavor.
// Two implementations exist, Windows() and POSIX(); Native() returns the
// host one. Schemas are stateless shared singletons, safe for
// concurrent use.
type Schema interface {
	// Name returns the schema's identifying name, "windows" or "posix"
	Name() string

	// CaseSensitive reports whether element comparison is case-sensitive
	CaseSensitive() bool

	// Separator returns the native element separator
	Separator() rune

	// ListSeparator returns the separator between paths in a path list
	ListSeparator() rune

	// IsSeparator reports whether r separates elements during parsing.
	// The Windows schema accepts '/' in addition to '\'.
	IsSeparator(r rune) bool

	// IsValidElementChar reports whether r may appear inside an element
	IsValidElementChar(r rune) bool

	// ParseRoot recognizes the root prefix of s. It returns the
	// normalized root and the byte offset of the first character after
	// the recognized prefix. Unrooted input yields RootNone and 0.
	ParseRoot(s string) (Root, int, error)

	// RenderRoot formats a root for the given usage
	RenderRoot(root Root, usage Usage, env platform.OS) (string, error)

	// RenderPath formats a complete normalized path string, produced by
	// a Builder or Path of this schema, for the given usage
	RenderPath(source string, root Root, usage Usage, env platform.OS) (string, error)
}

var (
	windowsSchema = winSchema{}
	posixSchema   = nixSchema{}
)

// Windows returns the Windows-like schema singleton
func Windows() Schema {
	return windowsSchema
}

// POSIX returns the POSIX-like schema singleton
func POSIX() Schema {
	return posixSchema
}

// Native returns the schema of the host platform
func Native() Schema {
	if runtime.GOOS == "windows" {
		return windowsSchema
	}
	return posixSchema
}

// ByName returns the schema with the given name, or the native schema
// for an empty name. The boolean reports whether the name was recognized.
func ByName(name string) (Schema, bool) {
	switch name {
	case "":
		return Native(), true
	case "windows":
		return windowsSchema, true
	case "posix":
		return posixSchema, true
	default:
		return nil, false
	}
}
