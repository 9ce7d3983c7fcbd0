// File: windows.go
// Title: Windows-Like Path Schema
// Description: Implements the Windows path grammar: case-insensitive
//              elements, '\' and '/' separators, and the root recognizer
//              state machine covering drive, current-drive, UNC, and the
//              Win32 long-path namespace forms.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package path

import (
	"strings"
	"unicode/utf8"

	"github.com/plinth-go/plinth/core/codepoint"
	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/platform"
)

// winSchema implements the Windows-like path grammar
type winSchema struct{}

func (winSchema) Name() string        { return "windows" }
func (winSchema) CaseSensitive() bool { return false }
func (winSchema) Separator() rune     { return '\\' }
func (winSchema) ListSeparator() rune { return ';' }

func (winSchema) IsSeparator(r rune) bool {
	return r == '\\' || r == '/'
}

func (winSchema) IsValidElementChar(r rune) bool {
	if r <= 0x1F {
		return false
	}
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return false
	}
	return true
}

// wrState enumerates the root recognizer states. The machine
// disambiguates the drive, current-drive, UNC, and Win32 namespace
// forms in a single forward pass.
type wrState int

const (
	wrStart     wrState = iota // nothing consumed
	wrDrive                    // leading letter, candidate "X:"
	wrDriveRest                // saw "X:", consuming the optional separator run
	wrSep1                     // one leading separator
	wrSep2                     // two leading separators
	wrQ                        // saw `\\?`
	wrQSep                     // saw `\\?\`
	wrQDrive                   // saw `\\?\X` for a letter X
	wrQU                       // saw `\\?\U`
	wrQUN                      // saw `\\?\UN`
	wrQUNC                     // saw `\\?\UNC`
	wrQUNCSep                  // saw `\\?\UNC\`, skipping the separator run
	wrHost                     // accumulating the UNC host
	wrHostSep                  // separator run between host and volume
	wrVolume                   // accumulating the UNC volume
	wrRootSep                  // consuming the separator run that closes the root
)

func invalidWinRoot(s string, pos int, what string) error {
	return perror.Newf("path '%s' has %s", s, what).
		WithCode(perror.CodeInvalidPath).
		WithPosition(pos).
		WithOperation("path.ParseRoot")
}

// ParseRoot recognizes the Windows root forms:
//
//	X:           -> dos-drive "X:\"
//	\\?\X:       -> dos-drive "X:\"
//	\            -> current-drive "\"
//	\\?\ then \  -> current-drive "\"
//	\\host\vol   -> unc-name "\\host\vol\"
//	\\?\UNC\h\v  -> unc-name "\\h\v\"
//
// '/' is accepted wherever a separator is allowed. A `\\?\X` where X is
// neither ':' nor a separator strips the namespace prefix and treats X
// as the first character of a relative path. The returned offset also
// covers the separator run that closes the root.
func (w winSchema) ParseRoot(s string) (Root, int, error) {
	state := wrStart
	var driveLetter rune
	var host, volume string
	runStart := 0  // start of the current host/volume run
	relStart := 0 // where the path restarts when a namespace prefix is stripped

	finishDrive := func(end int) (Root, int, error) {
		return Root{Kind: RootDosDrive, Text: string(driveLetter) + ":\\"}, end, nil
	}
	finishUnc := func(end int) (Root, int, error) {
		return Root{Kind: RootUncName, Text: "\\\\" + host + "\\" + volume + "\\"}, end, nil
	}

	i := 0
	for i < len(s) {
		r, width := utf8.DecodeRuneInString(s[i:])
		next := i + width

		switch state {
		case wrStart:
			switch {
			case codepoint.IsAlpha(r):
				driveLetter = r
				state = wrDrive
			case w.IsSeparator(r):
				state = wrSep1
			default:
				return Root{}, 0, nil
			}

		case wrDrive:
			if r == ':' {
				state = wrDriveRest
			} else {
				return Root{}, 0, nil
			}

		case wrDriveRest:
			if !w.IsSeparator(r) {
				return finishDrive(i)
			}
			// consume the separator run closing the root

		case wrSep1:
			if w.IsSeparator(r) {
				state = wrSep2
			} else {
				return Root{Kind: RootCurrentDrive, Text: "\\"}, i, nil
			}

		case wrSep2:
			switch {
			case r == '?':
				state = wrQ
			case w.IsSeparator(r):
				// extra leading separators collapse
			case w.IsValidElementChar(r):
				runStart = i
				state = wrHost
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character in its UNC host")
			}

		case wrQ:
			if w.IsSeparator(r) {
				state = wrQSep
			} else {
				return Root{}, 0, invalidWinRoot(s, i, "a malformed '\\\\?' namespace prefix")
			}

		case wrQSep:
			switch {
			case r == 'U' || r == 'u':
				driveLetter = r
				relStart = i
				state = wrQU
			case codepoint.IsAlpha(r):
				driveLetter = r
				relStart = i
				state = wrQDrive
			case w.IsSeparator(r):
				state = wrRootSep
			case w.IsValidElementChar(r):
				// namespace prefix stripped; relative path begins here
				return Root{}, i, nil
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character after its namespace prefix")
			}

		case wrQDrive:
			if r == ':' {
				state = wrDriveRest
			} else {
				// bare `\\?\X...`: prefix stripped, relative
				return Root{}, relStart, nil
			}

		case wrQU:
			switch {
			case r == ':':
				state = wrDriveRest
			case r == 'N' || r == 'n':
				state = wrQUN
			default:
				return Root{}, relStart, nil
			}

		case wrQUN:
			if r == 'C' || r == 'c' {
				state = wrQUNC
			} else {
				return Root{}, relStart, nil
			}

		case wrQUNC:
			if w.IsSeparator(r) {
				state = wrQUNCSep
			} else {
				return Root{}, relStart, nil
			}

		case wrQUNCSep:
			switch {
			case w.IsSeparator(r):
				// separators between `UNC` and the host collapse
			case w.IsValidElementChar(r):
				runStart = i
				state = wrHost
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character in its UNC host")
			}

		case wrHost:
			switch {
			case w.IsSeparator(r):
				host = s[runStart:i]
				state = wrHostSep
			case w.IsValidElementChar(r):
				// accumulate
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character in its UNC host")
			}

		case wrHostSep:
			switch {
			case w.IsSeparator(r):
				// separators between host and volume collapse
			case w.IsValidElementChar(r):
				runStart = i
				state = wrVolume
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character in its UNC volume")
			}

		case wrVolume:
			switch {
			case w.IsSeparator(r):
				volume = s[runStart:i]
				state = wrRootSep
			case w.IsValidElementChar(r):
				// accumulate
			default:
				return Root{}, 0, invalidWinRoot(s, i, "an invalid character in its UNC volume")
			}

		case wrRootSep:
			if !w.IsSeparator(r) {
				if volume != "" {
					return finishUnc(i)
				}
				return Root{Kind: RootCurrentDrive, Text: "\\"}, i, nil
			}
			// consume the separator run closing the root
		}

		i = next
	}

	// end of input
	switch state {
	case wrStart, wrDrive:
		return Root{}, 0, nil
	case wrDriveRest:
		return finishDrive(len(s))
	case wrSep1:
		return Root{Kind: RootCurrentDrive, Text: "\\"}, len(s), nil
	case wrSep2, wrQUNCSep, wrHostSep:
		return Root{}, 0, invalidWinRoot(s, len(s), "an incomplete UNC root")
	case wrQ:
		return Root{}, 0, invalidWinRoot(s, len(s), "a malformed '\\\\?' namespace prefix")
	case wrQSep:
		// `\\?\` alone: prefix stripped, empty relative path
		return Root{}, len(s), nil
	case wrQDrive, wrQU, wrQUN, wrQUNC:
		return Root{}, relStart, nil
	case wrHost:
		return Root{}, 0, invalidWinRoot(s, len(s), "a UNC root with no volume")
	case wrVolume:
		volume = s[runStart:]
		return finishUnc(len(s))
	case wrRootSep:
		if volume != "" {
			return finishUnc(len(s))
		}
		return Root{Kind: RootCurrentDrive, Text: "\\"}, len(s), nil
	}
	return Root{}, 0, invalidWinRoot(s, len(s), "an unrecognized root form")
}

// RenderRoot formats a root for the given usage. Display and Shell
// emit the normalized text unchanged; Kernel prefixing is applied by
// RenderPath because it depends on the total path length.
func (winSchema) RenderRoot(root Root, usage Usage, env platform.OS) (string, error) {
	return root.Text, nil
}

// RenderPath formats a normalized Windows path string for the given
// usage. Kernel usage applies the `\\?\` long-path prefix (or
// `\\?\UNC\` for UNC roots) when the path exceeds MaxShellPath; Shell
// usage fails instead.
func (winSchema) RenderPath(source string, root Root, usage Usage, env platform.OS) (string, error) {
	switch usage {
	case UsageDisplay:
		return source, nil

	case UsageShell:
		if len(source) > MaxShellPath {
			return "", perror.Newf("path '%s' exceeds %d characters for shell usage", source, MaxShellPath).
				WithCode(perror.CodePathTooLong).
				WithOperation("path.RenderPath")
		}
		return source, nil

	case UsageKernel:
		if len(source) <= MaxShellPath {
			return source, nil
		}
		switch root.Kind {
		case RootDosDrive:
			return `\\?\` + source, nil
		case RootUncName:
			return `\\?\UNC\` + strings.TrimPrefix(source, `\\`), nil
		default:
			// relative and current-drive paths cannot take the prefix
			return source, nil
		}

	default:
		return "", perror.Newf("unknown rendering usage %d", usage).
			WithCode(perror.CodeInvalidInput).
			WithOperation("path.RenderPath")
	}
}
