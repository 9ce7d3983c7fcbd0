// File: platform_test.go
// Title: Platform Query Tests
// Description: Tests for the OS query fake, existence probing, and
//              wildcard directory listing.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	perror "github.com/plinth-go/plinth/core/error"
)

func TestFakeAnswers(t *testing.T) {
	f := Fake{Home: "/home/ada", Working: "/work", Program: "/bin/app"}

	home, err := f.HomeDir()
	if err != nil || home != "/home/ada" {
		t.Errorf("HomeDir = %q, %v", home, err)
	}
	wd, err := f.WorkingDir()
	if err != nil || wd != "/work" {
		t.Errorf("WorkingDir = %q, %v", wd, err)
	}
	prog, err := f.ProgramFile()
	if err != nil || prog != "/bin/app" {
		t.Errorf("ProgramFile = %q, %v", prog, err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(file) {
		t.Error("Exists = false for a present file")
	}
	if Exists(filepath.Join(dir, "absent.txt")) {
		t.Error("Exists = true for an absent file")
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "beta.txt", "gamma.log", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"*.txt", []string{"a.txt", "alpha.txt", "beta.txt"}},
		{"?.txt", []string{"a.txt"}},
		{"*", []string{"a.txt", "alpha.txt", "beta.txt", "gamma.log"}},
		{"", []string{"a.txt", "alpha.txt", "beta.txt", "gamma.log"}},
		{"*.doc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := ListDir(dir, tt.pattern)
			if err != nil {
				t.Fatalf("ListDir: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListDir(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestListDirErrors(t *testing.T) {
	if _, err := ListDir(filepath.Join(t.TempDir(), "missing"), "*"); !perror.HasCode(err, perror.CodeNotFound) {
		t.Errorf("missing dir error = %v", err)
	}
	if _, err := ListDir(t.TempDir(), "[unclosed"); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("bad pattern error = %v", err)
	}
}
