// File: rootkind.go
// Title: Path Root Classification
// Description: Defines the tagged classification of a path's root prefix
//              and the normalized root value produced by the schema
//              recognizers.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package path

// RootKind classifies the root prefix of a path
type RootKind int

const (
	// RootNone marks a relative path with no root prefix
	RootNone RootKind = iota

	// RootDosDrive marks a Windows drive root such as "C:\"
	RootDosDrive

	// RootCurrentDrive marks the Windows current-drive root "\"
	RootCurrentDrive

	// RootUncName marks a Windows UNC root "\\host\volume\"
	RootUncName

	// RootSysRoot marks the POSIX filesystem root "/"
	RootSysRoot

	// RootUserHome marks the POSIX home-relative root "~/"
	RootUserHome
)

// String returns the string representation of the root kind
func (k RootKind) String() string {
	switch k {
	case RootNone:
		return "none"
	case RootDosDrive:
		return "dos-drive"
	case RootCurrentDrive:
		return "current-drive"
	case RootUncName:
		return "unc-name"
	case RootSysRoot:
		return "sys-root"
	case RootUserHome:
		return "user-home"
	default:
		return "unknown"
	}
}

// Root is the outcome of root recognition: the kind and the normalized
// root text. A normalized root always uses the schema's native separator
// and, for every kind other than RootNone, ends in one.
type Root struct {
	Kind RootKind
	Text string
}

// IsRooted reports whether the path carries any root prefix.
// RootCurrentDrive and RootUserHome anchor only partially but still
// count as rooted.
func (r Root) IsRooted() bool {
	return r.Kind != RootNone
}
