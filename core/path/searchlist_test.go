// File: searchlist_test.go
// Title: Search Path List Tests
// Description: Tests for duplicate shadowing, ordering, and the TryFind
//              search operation with an injected existence probe.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package path

import (
	"testing"

	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

func dirsOf(l *SearchPathList) []string {
	var out []string
	for _, d := range l.Dirs() {
		out = append(out, d.String())
	}
	return out
}

func sameDirs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchPathListAppendShadowsLater(t *testing.T) {
	l := NewSearchPathList(POSIX())
	for _, dir := range []string{"/usr/bin", "/usr/local/bin", "/usr/bin"} {
		if err := l.Append(mustParse(t, dir, POSIX())); err != nil {
			t.Fatalf("Append(%q) failed: %v", dir, err)
		}
	}

	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3 (duplicates stay in the list)", l.Len())
	}
	if got := dirsOf(l); !sameDirs(got, "/usr/bin", "/usr/local/bin") {
		t.Errorf("Dirs = %v, want the earliest position to win", got)
	}
}

func TestSearchPathListPrependTakesOver(t *testing.T) {
	l := NewSearchPathList(POSIX())
	a := mustParse(t, "/a", POSIX())
	b := mustParse(t, "/b", POSIX())

	if err := l.Append(a); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(b); err != nil {
		t.Fatal(err)
	}
	if err := l.Prepend(b); err != nil {
		t.Fatal(err)
	}

	if got := dirsOf(l); !sameDirs(got, "/b", "/a") {
		t.Errorf("Dirs = %v, want the prepended position to shadow the old one", got)
	}
}

func TestSearchPathListCanonicalizesOnInsert(t *testing.T) {
	l := NewSearchPathList(POSIX())
	if err := l.Append(mustParse(t, "/usr/./bin", POSIX())); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(mustParse(t, "/usr/bin", POSIX())); err != nil {
		t.Fatal(err)
	}

	if got := dirsOf(l); !sameDirs(got, "/usr/bin") {
		t.Errorf("Dirs = %v, want canonical forms to collapse", got)
	}
}

func TestSearchPathListCaseFolding(t *testing.T) {
	l := NewSearchPathList(Windows())
	if err := l.Append(mustParse(t, `C:\Tools`, Windows())); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(mustParse(t, `c:\TOOLS`, Windows())); err != nil {
		t.Fatal(err)
	}

	if got := dirsOf(l); !sameDirs(got, `C:\Tools`) {
		t.Errorf("Dirs = %v, want case variants to shadow", got)
	}
}

func TestParseSearchPathList(t *testing.T) {
	l, err := ParseSearchPathList(text.MustNew("/usr/bin:/usr/local/bin::/opt/bin"), POSIX())
	if err != nil {
		t.Fatalf("ParseSearchPathList failed: %v", err)
	}
	if got := l.String(); got != "/usr/bin:/usr/local/bin:/opt/bin" {
		t.Errorf("String = %q (empty pieces should be skipped)", got)
	}
}

func TestTryFind(t *testing.T) {
	l := NewSearchPathList(POSIX())
	for _, dir := range []string{"/usr/bin", "/usr/local/bin"} {
		if err := l.Append(mustParse(t, dir, POSIX())); err != nil {
			t.Fatal(err)
		}
	}

	l.SetExists(func(name string) bool {
		return name == "/usr/local/bin/tool"
	})

	found, ok, err := l.TryFind("tool", platform.Fake{})
	if err != nil {
		t.Fatalf("TryFind failed: %v", err)
	}
	if !ok {
		t.Fatal("TryFind found nothing")
	}
	if got := found.String(); got != "/usr/local/bin/tool" {
		t.Errorf("found = %q, want %q", got, "/usr/local/bin/tool")
	}

	_, ok, err = l.TryFind("absent", platform.Fake{})
	if err != nil {
		t.Fatalf("TryFind failed: %v", err)
	}
	if ok {
		t.Error("TryFind reported a hit for a missing name")
	}
}

func TestTryFindFrontToBack(t *testing.T) {
	l := NewSearchPathList(POSIX())
	for _, dir := range []string{"/first", "/second"} {
		if err := l.Append(mustParse(t, dir, POSIX())); err != nil {
			t.Fatal(err)
		}
	}
	l.SetExists(func(name string) bool {
		return name == "/first/x" || name == "/second/x"
	})

	found, ok, err := l.TryFind("x", platform.Fake{})
	if err != nil || !ok {
		t.Fatalf("TryFind = %v, %v", ok, err)
	}
	if got := found.String(); got != "/first/x" {
		t.Errorf("found = %q, want the earlier directory to win", got)
	}
}
