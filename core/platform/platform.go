// File: platform.go
// Title: OS Query Collaborator
// Description: Implements the injected host-platform service the path layer
//              consumes: home directory, working directory, and program file
//              lookup, plus a filesystem existence probe.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package platform

import (
	"os"

	perror "github.com/plinth-go/plinth/core/error"
)

// OS is the host-platform query service. The path layer receives it as
// an injected dependency so tests can substitute a fake.
type OS interface {
	// HomeDir returns the current user's home directory
	HomeDir() (string, error)

	// WorkingDir returns the absolute current working directory
	WorkingDir() (string, error)

	// ProgramFile returns the absolute path of the current executable
	ProgramFile() (string, error)
}

// hostOS queries the real process environment
type hostOS struct{}

// Host returns the OS implementation backed by the real process environment
func Host() OS {
	return hostOS{}
}

func (hostOS) HomeDir() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the filesystem root rather than failing; callers
		// treat the home directory as best-effort.
		return "/", nil
	}
	return dir, nil
}

func (hostOS) WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", perror.Wrap(err, "querying working directory").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("platform.WorkingDir")
	}
	return dir, nil
}

func (hostOS) ProgramFile() (string, error) {
	file, err := os.Executable()
	if err != nil {
		return "", perror.Wrap(err, "querying program file").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("platform.ProgramFile")
	}
	return file, nil
}

// Fake is an OS implementation with fixed answers, for tests and for
// rendering paths against a foreign environment.
type Fake struct {
	Home    string
	Working string
	Program string
}

// HomeDir returns the configured home directory
func (f Fake) HomeDir() (string, error) {
	return f.Home, nil
}

// WorkingDir returns the configured working directory
func (f Fake) WorkingDir() (string, error) {
	return f.Working, nil
}

// ProgramFile returns the configured program file path
func (f Fake) ProgramFile() (string, error) {
	return f.Program, nil
}

// Exists reports whether a filesystem entry exists at the given path
func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
