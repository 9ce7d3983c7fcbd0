// File: schema.go
// Title: Command-Line Schema
// Description: Implements the immutable option schema: definitions plus
//              the short-form, case-sensitive, and case-folded long-form
//              lookup indices, and help-text generation.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

import (
	"strings"
)

// Schema is the immutable, shared collection of option definitions and
// their lookup indices. Schemas are built once through SchemaBuilder
// and are safe for concurrent use.
type Schema struct {
	name        string
	description string
	options     []Option

	shortIndex map[rune]int   // short-form char -> options index
	longCS     map[string]int // case-sensitive long form -> options index
	longCI     map[string]int // uppercase-folded long form -> options index

	valueArgName string
	multiplicity Multiplicity

	// alias lists per option, in registration order, for help output
	shortAliases map[int][]rune
	longAliases  map[int][]string
}

// Name returns the program name set on the schema
func (s *Schema) Name() string {
	return s.name
}

// Description returns the program description set on the schema
func (s *Schema) Description() string {
	return s.description
}

// Options returns the option definitions in registration order
func (s *Schema) Options() []Option {
	return s.options
}

// Multiplicity returns the positional-argument constraint
func (s *Schema) Multiplicity() Multiplicity {
	return s.multiplicity
}

// LookupShort finds the definition registered under the short-form
// character
func (s *Schema) LookupShort(c rune) (Option, bool) {
	if i, ok := s.shortIndex[c]; ok {
		return s.options[i], true
	}
	return Option{}, false
}

// LookupLong finds the definition for a long-form name: first the
// case-sensitive index, then the case-folded one.
func (s *Schema) LookupLong(name string) (Option, bool) {
	if i, ok := s.longCS[name]; ok {
		return s.options[i], true
	}
	if i, ok := s.longCI[strings.ToUpper(name)]; ok {
		return s.options[i], true
	}
	return Option{}, false
}

// Help composes the usage text: a usage line, then one block per option
// listing every alias and the value placeholder, with the description
// wrapped to width and indented on continuation lines.
func (s *Schema) Help(width int) string {
	var sb strings.Builder

	sb.WriteString("Usage: ")
	sb.WriteString(s.name)
	if len(s.options) > 0 {
		sb.WriteString(" [options]")
	}
	if s.valueArgName != "" && s.multiplicity != MultiplicityNone {
		sb.WriteByte(' ')
		switch s.multiplicity {
		case MultiplicityUpToOne:
			sb.WriteString("[" + s.valueArgName + "]")
		case MultiplicityExactlyOne:
			sb.WriteString(s.valueArgName)
		case MultiplicityAtLeastOne:
			sb.WriteString(s.valueArgName + "...")
		case MultiplicityMany:
			sb.WriteString("[" + s.valueArgName + "...]")
		}
	}
	sb.WriteByte('\n')

	if s.description != "" {
		sb.WriteString(s.description)
		sb.WriteByte('\n')
	}
	if len(s.options) == 0 {
		return sb.String()
	}

	sb.WriteString("\nOptions:\n")
	const indent = "  "
	const contIndent = "      "
	for i, opt := range s.options {
		var aliases []string
		for _, c := range s.shortAliases[i] {
			aliases = append(aliases, "-"+string(c))
		}
		for _, name := range s.longAliases[i] {
			aliases = append(aliases, "--"+name)
		}
		sb.WriteString(indent)
		sb.WriteString(strings.Join(aliases, ", "))
		if opt.Requirement != ValueNone && opt.ValueName != "" {
			sb.WriteString(" <" + opt.ValueName + ">")
		}
		sb.WriteByte('\n')
		writeWrapped(&sb, opt.Description, width, contIndent)
	}
	return sb.String()
}

// writeWrapped writes text wrapped to width with each line prefixed by
// indent
func writeWrapped(sb *strings.Builder, s string, width int, indent string) {
	if s == "" {
		return
	}
	avail := width - len(indent)
	if avail < 1 {
		avail = 1
	}
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= avail:
			line += " " + word
		default:
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = word
		}
	}
	if line != "" {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
