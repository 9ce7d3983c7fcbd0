// File: token.go
// Title: Argument Tokens
// Description: Defines the normalized argument token the tokenizers
//              produce and the dispatcher consumes, independent of the
//              surface syntax the token came from.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

// TokenKind tags one normalized argument token
type TokenKind int

const (
	// KindArgument marks a non-option positional
	KindArgument TokenKind = iota

	// KindShortOption marks one character preceded by a single '-'
	KindShortOption

	// KindLongOption marks text preceded by '--'
	KindLongOption

	// KindWindowsOption marks text preceded by '/', produced only by
	// the Windows surface syntax
	KindWindowsOption
)

// String returns the string representation of the kind
func (k TokenKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindShortOption:
		return "short-option"
	case KindLongOption:
		return "long-option"
	case KindWindowsOption:
		return "windows-option"
	default:
		return "unknown"
	}
}

// Token is one normalized argument: for options, Text is the name
// without its prefix; for positionals, Text is the argument itself.
// HasValue distinguishes a bound empty value from no value.
type Token struct {
	Kind     TokenKind
	Text     string
	Value    string
	HasValue bool
}
