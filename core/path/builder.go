// File: builder.go
// Title: Mutable Path Builder
// Description: Implements the mutable path value: root plus element list,
//              parsed from text through the schema's root recognizer and a
//              two-state element scanner. Carries canonicalization and
//              absolute/relative conversion; Freeze produces the immutable
//              Path.
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

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

// Builder is the mutable counterpart of Path: a root and a sequence of
// elements under one schema. Builders are single-owner values; sharing
// one across goroutines requires external synchronization.
type Builder struct {
	schema   Schema
	root     Root
	elements []string
}

// NewBuilder returns an empty builder under the given schema. A nil
// schema selects the native one.
func NewBuilder(schema Schema) *Builder {
	if schema == nil {
		schema = Native()
	}
	return &Builder{schema: schema}
}

// ParseBuilder parses a path string into a fresh builder. Empty input
// fails with EMPTY_PATH.
func ParseBuilder(s text.String, schema Schema) (*Builder, error) {
	b := NewBuilder(schema)
	if err := b.Parse(s); err != nil {
		return nil, err
	}
	return b, nil
}

// elemState enumerates the element scanner states
type elemState int

const (
	esInSeparator elemState = iota
	esInElement
)

// Parse replaces the builder's contents with the parse of s. On failure
// the builder is left unchanged. Empty input fails with EMPTY_PATH.
func (b *Builder) Parse(s text.String) error {
	if s.IsEmpty() {
		return perror.New("cannot parse an empty path").
			WithCode(perror.CodeEmptyPath).
			WithOperation("path.Parse")
	}

	src := s.String()
	root, rest, err := b.schema.ParseRoot(src)
	if err != nil {
		return err
	}

	elements, err := b.scanElements(src, rest)
	if err != nil {
		return err
	}

	b.root = root
	b.elements = elements
	return nil
}

// scanElements walks the post-root character stream with the two-state
// machine: separators collapse, element characters accumulate, anything
// else is an error.
func (b *Builder) scanElements(src string, from int) ([]string, error) {
	var elements []string
	state := esInSeparator
	start := from

	for i := from; i < len(src); {
		r, width := utf8.DecodeRuneInString(src[i:])

		switch state {
		case esInSeparator:
			switch {
			case b.schema.IsSeparator(r):
				// collapse the run
			case b.schema.IsValidElementChar(r):
				start = i
				state = esInElement
			default:
				return nil, perror.Newf("path '%s' contains the invalid character '%c'", src, r).
					WithCode(perror.CodeInvalidPath).
					WithPosition(i).
					WithOperation("path.Parse")
			}

		case esInElement:
			switch {
			case b.schema.IsSeparator(r):
				elements = append(elements, src[start:i])
				state = esInSeparator
			case b.schema.IsValidElementChar(r):
				// accumulate
			default:
				return nil, perror.Newf("path '%s' contains the invalid character '%c'", src, r).
					WithCode(perror.CodeInvalidPath).
					WithPosition(i).
					WithOperation("path.Parse")
			}
		}

		i += width
	}

	if state == esInElement {
		elements = append(elements, src[start:])
	}
	return elements, nil
}

// Schema returns the builder's schema
func (b *Builder) Schema() Schema {
	return b.schema
}

// Root returns the builder's root
func (b *Builder) Root() Root {
	return b.root
}

// SetRoot replaces the builder's root
func (b *Builder) SetRoot(root Root) {
	b.root = root
}

// Elements returns the builder's element list. The slice is the
// builder's own storage; callers must not retain it across mutations.
func (b *Builder) Elements() []string {
	return b.elements
}

// IsEmpty reports whether the builder holds neither root nor elements
func (b *Builder) IsEmpty() bool {
	return b.root.Kind == RootNone && len(b.elements) == 0
}

// PushElement appends one element. Empty elements and elements with
// characters outside the schema's valid set fail with
// INVALID_PATH_ELEMENT.
func (b *Builder) PushElement(element string) error {
	if element == "" {
		return perror.New("cannot push an empty path element").
			WithCode(perror.CodeInvalidPathElement).
			WithOperation("path.PushElement")
	}
	for i, r := range element {
		if !b.schema.IsValidElementChar(r) {
			return perror.Newf("path element '%s' contains the invalid character '%c'", element, r).
				WithCode(perror.CodeInvalidPathElement).
				WithPosition(i).
				WithOperation("path.PushElement")
		}
	}
	b.elements = append(b.elements, element)
	return nil
}

// Pop removes and returns the last element. The boolean reports whether
// an element was available.
func (b *Builder) Pop() (string, bool) {
	if len(b.elements) == 0 {
		return "", false
	}
	last := b.elements[len(b.elements)-1]
	b.elements = b.elements[:len(b.elements)-1]
	return last, true
}

// MakeCanonical removes '.' elements and folds '..' elements into their
// preceding element where one exists and is not itself '..'. When the
// result of a rootless path collapses to nothing after removing at
// least one '.', a single '.' is re-inserted so the path does not read
// as empty.
func (b *Builder) MakeCanonical() *Builder {
	result := make([]string, 0, len(b.elements))
	removedDot := false

	for _, el := range b.elements {
		switch el {
		case ".":
			removedDot = true
		case "..":
			if n := len(result); n > 0 && result[n-1] != ".." {
				result = result[:n-1]
			} else {
				result = append(result, "..")
			}
		default:
			result = append(result, el)
		}
	}

	if len(result) == 0 && b.root.Kind == RootNone && removedDot {
		result = append(result, ".")
	}

	b.elements = result
	return b
}

// asciiEqualFold compares two elements under ASCII-range case folding
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func (b *Builder) elemEqual(x, y string) bool {
	if b.schema.CaseSensitive() {
		return x == y
	}
	return asciiEqualFold(x, y)
}

// MakeAbsolute anchors a relative builder against the working directory
// from the OS service. A current-drive builder takes only the drive of
// the working directory; builders with any other root are unchanged.
func (b *Builder) MakeAbsolute(env platform.OS) error {
	switch b.root.Kind {
	case RootNone:
		wd, err := b.workingDir(env)
		if err != nil {
			return err
		}
		b.root = wd.root
		b.elements = append(append([]string{}, wd.elements...), b.elements...)
		return nil

	case RootCurrentDrive:
		wd, err := b.workingDir(env)
		if err != nil {
			return err
		}
		if wd.root.Kind != RootDosDrive {
			return perror.Newf("working directory '%s' has no drive to anchor a current-drive path",
				wd.String()).
				WithCode(perror.CodeInvalidOperation).
				WithOperation("path.MakeAbsolute")
		}
		b.root = wd.root
		return nil

	default:
		return nil
	}
}

func (b *Builder) workingDir(env platform.OS) (*Builder, error) {
	dir, err := env.WorkingDir()
	if err != nil {
		return nil, err
	}
	s, err := text.New(dir)
	if err != nil {
		return nil, perror.Wrap(err, "working directory is not valid UTF-8").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("path.MakeAbsolute")
	}
	wd, err := ParseBuilder(s, b.schema)
	if err != nil {
		return nil, perror.Wrap(err, "working directory does not parse under this schema").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("path.MakeAbsolute")
	}
	return wd, nil
}

// MakeAbsoluteAgainst anchors a relative builder against an explicit
// base, which must be rooted; INVALID_OPERATION otherwise. A builder
// that already has a root is unchanged.
func (b *Builder) MakeAbsoluteAgainst(base *Builder) error {
	if base.root.Kind == RootNone {
		return perror.Newf("base path '%s' has no root", base.String()).
			WithCode(perror.CodeInvalidOperation).
			WithOperation("path.MakeAbsoluteAgainst")
	}
	if b.root.Kind != RootNone {
		return nil
	}
	b.root = base.root
	b.elements = append(append([]string{}, base.elements...), b.elements...)
	return nil
}

// MakeRelative rewrites the builder relative to base: shared leading
// elements are stripped and one '..' is produced per element left in
// base. Builders whose root kind or root text differ from base cannot
// be made relative and are returned unchanged.
func (b *Builder) MakeRelative(base *Builder) *Builder {
	if b.root.Kind != base.root.Kind {
		return b
	}
	if b.root.Kind != RootNone && !b.elemEqual(b.root.Text, base.root.Text) {
		return b
	}

	shared := 0
	for shared < len(b.elements) && shared < len(base.elements) &&
		b.elemEqual(b.elements[shared], base.elements[shared]) {
		shared++
	}

	rest := b.elements[shared:]
	relative := make([]string, 0, len(base.elements)-shared+len(rest))
	for basePos := shared; basePos < len(base.elements); basePos++ {
		relative = append(relative, "..")
	}
	relative = append(relative, rest...)

	b.root = Root{}
	b.elements = relative
	return b
}

// source assembles the normalized display form: root text, then the
// elements joined with the native separator.
func (b *Builder) source() string {
	sep := string(b.schema.Separator())
	joined := strings.Join(b.elements, sep)
	if b.root.Kind == RootNone {
		return joined
	}
	return b.root.Text + joined
}

// String returns the Display rendering of the builder's current state
func (b *Builder) String() string {
	return b.source()
}

// Render formats the builder's current state for the given usage
func (b *Builder) Render(usage Usage, env platform.OS) (string, error) {
	return b.schema.RenderPath(b.source(), b.root, usage, env)
}

// Freeze materializes the immutable Path for the builder's current
// state. The builder remains usable afterwards.
func (b *Builder) Freeze() (Path, error) {
	src, err := text.New(b.source())
	if err != nil {
		return Path{}, perror.Wrap(err, "assembling path source").
			WithCode(perror.CodeInternal).
			WithOperation("path.Freeze")
	}

	p := Path{
		schema:  b.schema,
		root:    b.root,
		source:  src,
		rootLen: len(b.root.Text),
	}
	if b.root.Kind == RootNone {
		p.rootLen = 0
	}
	p.elements = append([]string{}, b.elements...)

	if n := len(b.elements); n > 0 {
		last := b.elements[n-1]
		p.fileNameLen = len(last)
		if ext, ok := firstExtension(last); ok {
			p.extLen = len(ext)
		}
	}
	return p, nil
}
