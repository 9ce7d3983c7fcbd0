// File: dirlist.go
// Title: Wildcard Directory Listing
// Description: Implements directory enumeration filtered by a simple
//              wildcard pattern. The directory handle is released on every
//              exit path.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package platform

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	perror "github.com/plinth-go/plinth/core/error"
)

// ListDir returns the names of the entries in dir whose names match the
// wildcard pattern. Patterns use '*' and '?'; an empty pattern matches
// everything. Names are returned sorted.
func ListDir(dir, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, perror.Newf("wildcard pattern '%s' is not valid", pattern).
			WithCode(perror.CodeInvalidInput).
			WithOperation("platform.ListDir")
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, perror.Wrap(err, "opening directory").
			WithCode(perror.CodeNotFound).
			WithOperation("platform.ListDir").
			WithDetail("dir", dir)
	}
	defer f.Close()

	entries, err := f.Readdirnames(-1)
	if err != nil {
		return nil, perror.Wrap(err, "reading directory").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("platform.ListDir").
			WithDetail("dir", dir)
	}

	var names []string
	for _, name := range entries {
		if pattern == "" {
			names = append(names, name)
			continue
		}
		ok, merr := doublestar.Match(pattern, name)
		if merr != nil {
			return nil, perror.Wrap(merr, "matching wildcard pattern").
				WithCode(perror.CodeInvalidInput).
				WithOperation("platform.ListDir")
		}
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
