// File: schemabuilder.go
// Title: Command-Line Schema Builder
// Description: Implements the ordered defining operations that assemble a
//              schema: option registration, short and long alias indexing
//              with duplicate rejection, and the freeze into the immutable
//              Schema.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

import (
	"strings"
	"unicode"

	perror "github.com/plinth-go/plinth/core/error"
)

// SchemaBuilder assembles a Schema. Builders are single-owner values;
// sharing one across goroutines requires external synchronization.
type SchemaBuilder struct {
	schema Schema
	byID   map[int]int // option id -> options index
}

// NewSchemaBuilder returns an empty builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{
		schema: Schema{
			shortIndex:   make(map[rune]int),
			longCS:       make(map[string]int),
			longCI:       make(map[string]int),
			shortAliases: make(map[int][]rune),
			longAliases:  make(map[int][]string),
			multiplicity: MultiplicityMany,
		},
		byID: make(map[int]int),
	}
}

// SetName sets the program name used in the usage line
func (b *SchemaBuilder) SetName(name string) *SchemaBuilder {
	b.schema.name = name
	return b
}

// SetDescription sets the program description
func (b *SchemaBuilder) SetDescription(description string) *SchemaBuilder {
	b.schema.description = description
	return b
}

// SetValueArgument names the positional arguments and constrains their
// count
func (b *SchemaBuilder) SetValueArgument(name string, m Multiplicity) *SchemaBuilder {
	b.schema.valueArgName = name
	b.schema.multiplicity = m
	return b
}

// AddOption registers an option definition. Reusing an id fails with
// INVALID_INPUT.
func (b *SchemaBuilder) AddOption(id int, description string, req ValueRequirement, valueName string) error {
	if _, exists := b.byID[id]; exists {
		return perror.Newf("option id %d is already defined", id).
			WithCode(perror.CodeInvalidInput).
			WithOperation("cmdline.AddOption")
	}
	b.byID[id] = len(b.schema.options)
	b.schema.options = append(b.schema.options, Option{
		ID:          id,
		Description: description,
		ValueName:   valueName,
		Requirement: req,
	})
	return nil
}

func (b *SchemaBuilder) indexOf(id int) (int, error) {
	i, ok := b.byID[id]
	if !ok {
		return 0, perror.Newf("option id %d is not defined", id).
			WithCode(perror.CodeInvalidInput).
			WithOperation("cmdline.AddAlias")
	}
	return i, nil
}

// AddShortAlias registers a short-form character for an option. A
// case-insensitive alias claims both case variants. Claiming a
// character twice fails with INVALID_INPUT.
func (b *SchemaBuilder) AddShortAlias(id int, c rune, caseSensitive bool) error {
	i, err := b.indexOf(id)
	if err != nil {
		return err
	}

	variants := []rune{c}
	if !caseSensitive {
		if other := unicode.ToUpper(c); other != c {
			variants = append(variants, other)
		} else if other := unicode.ToLower(c); other != c {
			variants = append(variants, other)
		}
	}
	for _, v := range variants {
		if prev, taken := b.schema.shortIndex[v]; taken && prev != i {
			return perror.Newf("short option '%c' is already taken", v).
				WithCode(perror.CodeInvalidInput).
				WithOperation("cmdline.AddShortAlias")
		}
	}
	for _, v := range variants {
		b.schema.shortIndex[v] = i
	}
	b.schema.shortAliases[i] = append(b.schema.shortAliases[i], c)
	return nil
}

// AddLongAlias registers a long-form name for an option, in the
// case-sensitive or the case-folded index. Claiming a name twice fails
// with INVALID_INPUT.
func (b *SchemaBuilder) AddLongAlias(id int, name string, caseSensitive bool) error {
	i, err := b.indexOf(id)
	if err != nil {
		return err
	}
	if name == "" {
		return perror.New("long option name must not be empty").
			WithCode(perror.CodeInvalidInput).
			WithOperation("cmdline.AddLongAlias")
	}

	if caseSensitive {
		if prev, taken := b.schema.longCS[name]; taken && prev != i {
			return perror.Newf("long option '%s' is already taken", name).
				WithCode(perror.CodeInvalidInput).
				WithOperation("cmdline.AddLongAlias")
		}
		b.schema.longCS[name] = i
	} else {
		folded := strings.ToUpper(name)
		if prev, taken := b.schema.longCI[folded]; taken && prev != i {
			return perror.Newf("long option '%s' is already taken", name).
				WithCode(perror.CodeInvalidInput).
				WithOperation("cmdline.AddLongAlias")
		}
		b.schema.longCI[folded] = i
	}
	b.schema.longAliases[i] = append(b.schema.longAliases[i], name)
	return nil
}

// Freeze materializes the immutable Schema. The builder must not be
// used afterwards.
func (b *SchemaBuilder) Freeze() *Schema {
	s := b.schema
	b.schema = Schema{}
	return &s
}
