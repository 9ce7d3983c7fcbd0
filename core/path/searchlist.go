// File: searchlist.go
// Title: Search Path List
// Description: Implements the ordered list of directories searched for a
//              file name or pattern. Duplicate directories stay in the
//              list but carry a count of earlier equals, maintained at
//              insert time, so iteration can skip them without scanning.
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

// searchEntry pairs a directory with the number of equal entries that
// precede it. A nonzero count marks the entry as shadowed: iteration
// skips it because an earlier position already covers the directory.
type searchEntry struct {
	dir      Path
	dupCount int
}

// ExistsFunc reports whether a rendered path names an existing file.
// SearchPathList uses it so tests can search without touching the
// filesystem.
type ExistsFunc func(name string) bool

// SearchPathList is an ordered list of directories searched front to
// back. Adding a directory twice keeps both entries but iteration
// visits each directory exactly once, at its earliest position; a
// Prepend therefore pulls an already-known directory to the front.
// The zero value is an empty list under the native schema.
type SearchPathList struct {
	schema  Schema
	entries []searchEntry
	exists  ExistsFunc
}

// NewSearchPathList returns an empty list under the given schema. A nil
// schema selects the native one.
func NewSearchPathList(schema Schema) *SearchPathList {
	if schema == nil {
		schema = Native()
	}
	return &SearchPathList{schema: schema}
}

// ParseSearchPathList splits s at the schema's list separator and
// appends each non-empty piece as a directory.
func ParseSearchPathList(s text.String, schema Schema) (*SearchPathList, error) {
	l := NewSearchPathList(schema)
	for _, piece := range strings.Split(s.String(), string(l.schema.ListSeparator())) {
		if piece == "" {
			continue
		}
		t, err := text.New(piece)
		if err != nil {
			return nil, err
		}
		dir, err := Parse(t, l.schema)
		if err != nil {
			return nil, err
		}
		if err := l.Append(dir); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// SetExists replaces the existence probe used by TryFind. A nil probe
// restores the default filesystem check.
func (l *SearchPathList) SetExists(f ExistsFunc) {
	l.exists = f
}

func (l *SearchPathList) probe() ExistsFunc {
	if l.exists != nil {
		return l.exists
	}
	return platform.Exists
}

// Prepend adds dir at the front in canonical form. Existing equal
// entries gain a duplicate count and fall out of iteration, so the new
// front position takes over.
func (l *SearchPathList) Prepend(dir Path) error {
	canon, err := dir.MakeCanonical()
	if err != nil {
		return err
	}
	for i := range l.entries {
		if l.entries[i].dir.Equal(canon) {
			l.entries[i].dupCount++
		}
	}
	l.entries = append([]searchEntry{{dir: canon}}, l.entries...)
	return nil
}

// Append adds dir at the back in canonical form. When equal entries
// already exist the new one carries their count and iteration keeps
// visiting the earliest position.
func (l *SearchPathList) Append(dir Path) error {
	canon, err := dir.MakeCanonical()
	if err != nil {
		return err
	}
	earlier := 0
	for i := range l.entries {
		if l.entries[i].dir.Equal(canon) {
			earlier++
		}
	}
	l.entries = append(l.entries, searchEntry{dir: canon, dupCount: earlier})
	return nil
}

// Len returns the total number of entries, shadowed duplicates included
func (l *SearchPathList) Len() int {
	return len(l.entries)
}

// Dirs returns the directories in effective search order: each distinct
// directory once, at its earliest position.
func (l *SearchPathList) Dirs() []Path {
	dirs := make([]Path, 0, len(l.entries))
	for _, e := range l.entries {
		if e.dupCount > 0 {
			continue
		}
		dirs = append(dirs, e.dir)
	}
	return dirs
}

// String joins the effective search order with the schema's list separator
func (l *SearchPathList) String() string {
	var sb strings.Builder
	for i, dir := range l.Dirs() {
		if i > 0 {
			sb.WriteRune(l.schema.ListSeparator())
		}
		sb.WriteString(dir.String())
	}
	return sb.String()
}

// TryFind searches the effective order front to back for name and
// returns the first directory-plus-name path that exists. The boolean
// reports whether anything was found; an error means the name itself
// was invalid, not that the search came up empty.
func (l *SearchPathList) TryFind(name string, env platform.OS) (Path, bool, error) {
	exists := l.probe()
	for _, dir := range l.Dirs() {
		candidate := dir.Builder()
		if err := candidate.PushElement(name); err != nil {
			return Path{}, false, err
		}
		rendered, err := candidate.Render(UsageKernel, env)
		if err != nil {
			return Path{}, false, err
		}
		if exists(rendered) {
			p, err := candidate.Freeze()
			if err != nil {
				return Path{}, false, err
			}
			return p, true, nil
		}
	}
	return Path{}, false, nil
}

// TryFindMatch searches the effective order front to back for entries
// matching the wildcard pattern and returns every match from the first
// directory that has any. The boolean reports whether anything was
// found.
func (l *SearchPathList) TryFindMatch(pattern string, env platform.OS) ([]Path, bool, error) {
	for _, dir := range l.Dirs() {
		rendered, err := dir.Render(UsageKernel, env)
		if err != nil {
			return nil, false, err
		}
		names, err := platform.ListDir(rendered, pattern)
		if err != nil {
			return nil, false, perror.Wrap(err, "listing search directory").
				WithCode(perror.CodeEnvironmentError).
				WithOperation("path.TryFindMatch")
		}
		if len(names) == 0 {
			continue
		}
		matches := make([]Path, 0, len(names))
		for _, name := range names {
			candidate := dir.Builder()
			if err := candidate.PushElement(name); err != nil {
				return nil, false, err
			}
			p, err := candidate.Freeze()
			if err != nil {
				return nil, false, err
			}
			matches = append(matches, p)
		}
		return matches, true, nil
	}
	return nil, false, nil
}
