// File: path.go
// Title: Immutable Path Value
// Description: Implements the frozen path value: schema, classified root,
//              element list, and the normalized source string with cached
//              file-name and extension spans. All derived-value operations
//              return new Paths.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package path

import (
	"strings"

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

// Path is an immutable path value: a classified root and an element
// list under one schema, plus the normalized source string. The zero
// value is the empty native path. Paths are safe for concurrent use.
type Path struct {
	schema      Schema
	root        Root
	source      text.String
	elements    []string
	rootLen     int
	fileNameLen int
	extLen      int
}

// Parse parses a path string under the given schema. A nil schema
// selects the native one. Empty input fails with EMPTY_PATH.
func Parse(s text.String, schema Schema) (Path, error) {
	b, err := ParseBuilder(s, schema)
	if err != nil {
		return Path{}, err
	}
	return b.Freeze()
}

// MustParse is Parse that panics on error, for literals in tests and
// initialization code.
func MustParse(s string, schema Schema) Path {
	p, err := Parse(text.MustNew(s), schema)
	if err != nil {
		panic(err)
	}
	return p
}

// Schema returns the path's schema. The zero Path reports the native
// schema.
func (p Path) Schema() Schema {
	if p.schema == nil {
		return Native()
	}
	return p.schema
}

// Root returns the path's classified root
func (p Path) Root() Root {
	return p.root
}

// IsRooted reports whether the path carries any root prefix
func (p Path) IsRooted() bool {
	return p.root.IsRooted()
}

// IsEmpty reports whether the path has neither root nor elements
func (p Path) IsEmpty() bool {
	return p.root.Kind == RootNone && len(p.elements) == 0
}

// Elements returns the path's elements. The returned slice is shared
// and must not be modified.
func (p Path) Elements() []string {
	return p.elements
}

// Source returns the normalized source string in Display form
func (p Path) Source() text.String {
	return p.source
}

// String returns the Display rendering
func (p Path) String() string {
	return p.source.String()
}

// FileName returns the last element, or "" for a path with no elements
func (p Path) FileName() string {
	if len(p.elements) == 0 {
		return ""
	}
	return p.elements[len(p.elements)-1]
}

// firstExtension returns everything after the first '.' that appears at
// index 1 or later, so dotfiles such as ".profile" have no extension.
func firstExtension(name string) (string, bool) {
	if len(name) < 2 {
		return "", false
	}
	if idx := strings.IndexByte(name[1:], '.'); idx >= 0 {
		return name[idx+2:], true
	}
	return "", false
}

// lastExtensionOf returns everything after the last '.' that appears at
// index 1 or later.
func lastExtensionOf(name string) (string, bool) {
	if idx := strings.LastIndexByte(name, '.'); idx >= 1 {
		return name[idx+1:], true
	}
	return "", false
}

// FileBaseName returns the last element up to its first extension dot.
// A dotfile's leading dot belongs to the base name.
func (p Path) FileBaseName() string {
	name := p.FileName()
	if ext, ok := firstExtension(name); ok {
		return name[:len(name)-len(ext)-1]
	}
	return name
}

// FileExtension returns everything after the first extension dot of the
// last element: "tar.gz" for "backup.tar.gz". Empty when the element
// has no extension.
func (p Path) FileExtension() string {
	ext, _ := firstExtension(p.FileName())
	return ext
}

// LastExtension returns everything after the last extension dot of the
// last element: "gz" for "backup.tar.gz".
func (p Path) LastExtension() string {
	ext, _ := lastExtensionOf(p.FileName())
	return ext
}

// Equal reports whether q names the same path: the root kinds match and
// the source strings compare equal under the schema's case rule.
func (p Path) Equal(q Path) bool {
	if p.root.Kind != q.root.Kind {
		return false
	}
	if p.Schema().CaseSensitive() {
		return p.source.Compare(q.source) == 0
	}
	return p.source.CompareIgnoreCase(q.source) == 0
}

// Hash returns a hash consistent with Equal: case-insensitive schemas
// hash the case-folded source.
func (p Path) Hash() uint64 {
	if p.Schema().CaseSensitive() {
		return p.source.Hash()
	}
	return p.source.ToLower().Hash()
}

// Builder returns a mutable copy of the path
func (p Path) Builder() *Builder {
	return &Builder{
		schema:   p.Schema(),
		root:     p.root,
		elements: append([]string{}, p.elements...),
	}
}

// Join appends a relative path's elements and freezes the result. The
// argument must be unrooted; INVALID_OPERATION otherwise.
func (p Path) Join(rel Path) (Path, error) {
	if rel.IsRooted() {
		return Path{}, perror.Newf("cannot join the rooted path '%s'", rel.String()).
			WithCode(perror.CodeInvalidOperation).
			WithOperation("path.Join")
	}
	b := p.Builder()
	b.elements = append(b.elements, rel.elements...)
	return b.Freeze()
}

// MakeCanonical returns the path with '.' and resolvable '..' elements
// folded away.
func (p Path) MakeCanonical() (Path, error) {
	return p.Builder().MakeCanonical().Freeze()
}

// MakeAbsolute returns the path anchored against the working directory
// from the OS service.
func (p Path) MakeAbsolute(env platform.OS) (Path, error) {
	b := p.Builder()
	if err := b.MakeAbsolute(env); err != nil {
		return Path{}, err
	}
	return b.Freeze()
}

// MakeAbsoluteAgainst returns the path anchored against base
func (p Path) MakeAbsoluteAgainst(base Path) (Path, error) {
	b := p.Builder()
	if err := b.MakeAbsoluteAgainst(base.Builder()); err != nil {
		return Path{}, err
	}
	return b.Freeze()
}

// MakeRelative returns the path rewritten relative to base, or the path
// unchanged when the roots differ.
func (p Path) MakeRelative(base Path) (Path, error) {
	return p.Builder().MakeRelative(base.Builder()).Freeze()
}

// Render formats the path for the given usage
func (p Path) Render(usage Usage, env platform.OS) (string, error) {
	return p.Schema().RenderPath(p.source.String(), p.root, usage, env)
}
