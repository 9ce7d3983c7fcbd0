// File: option.go
// Title: Option Definitions
// Description: Defines the option definition record and the value
//              requirement and positional multiplicity enumerations the
//              schema is built from.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

// ValueRequirement states whether an option takes a value
type ValueRequirement int

const (
	// ValueNone marks a flag option that never takes a value
	ValueNone ValueRequirement = iota

	// ValueOptional marks an option that takes a value when one is
	// bound or available
	ValueOptional

	// ValueMandatory marks an option that must receive a value
	ValueMandatory
)

// String returns the string representation of the requirement
func (v ValueRequirement) String() string {
	switch v {
	case ValueNone:
		return "none"
	case ValueOptional:
		return "optional"
	case ValueMandatory:
		return "mandatory"
	default:
		return "unknown"
	}
}

// Multiplicity constrains how many positional arguments a command line
// may carry
type Multiplicity int

const (
	// MultiplicityNone forbids positional arguments
	MultiplicityNone Multiplicity = iota

	// MultiplicityUpToOne allows zero or one positional argument
	MultiplicityUpToOne

	// MultiplicityExactlyOne requires exactly one positional argument
	MultiplicityExactlyOne

	// MultiplicityAtLeastOne requires one or more positional arguments
	MultiplicityAtLeastOne

	// MultiplicityMany allows any number of positional arguments
	MultiplicityMany
)

// String returns the string representation of the multiplicity
func (m Multiplicity) String() string {
	switch m {
	case MultiplicityNone:
		return "none"
	case MultiplicityUpToOne:
		return "up-to-one"
	case MultiplicityExactlyOne:
		return "exactly-one"
	case MultiplicityAtLeastOne:
		return "at-least-one"
	case MultiplicityMany:
		return "many"
	default:
		return "unknown"
	}
}

// allows reports whether count positionals satisfy the multiplicity
func (m Multiplicity) allows(count int) bool {
	switch m {
	case MultiplicityNone:
		return count == 0
	case MultiplicityUpToOne:
		return count <= 1
	case MultiplicityExactlyOne:
		return count == 1
	case MultiplicityAtLeastOne:
		return count >= 1
	default:
		return true
	}
}

// Option is one option definition: a caller-chosen numeric id, the help
// description, the placeholder name of its value, and whether a value
// is required.
type Option struct {
	ID          int
	Description string
	ValueName   string
	Requirement ValueRequirement
}
