// File: posix.go
// Title: POSIX-Like Path Schema
// Description: Implements the POSIX path grammar: case-sensitive elements,
//              '/' separator, and root recognition for the filesystem root
//              and the home-relative '~/' form.
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
)

// nixSchema implements the POSIX-like path grammar
type nixSchema struct{}

func (nixSchema) Name() string        { return "posix" }
func (nixSchema) CaseSensitive() bool { return true }
func (nixSchema) Separator() rune     { return '/' }
func (nixSchema) ListSeparator() rune { return ':' }

func (nixSchema) IsSeparator(r rune) bool {
	return r == '/'
}

func (nixSchema) IsValidElementChar(r rune) bool {
	return r != '/' && r != 0
}

// ParseRoot recognizes the POSIX root forms:
//
//	/    (possibly repeated) -> sys-root "/"
//	~    alone or before '/' -> user-home "~/"
//
// A '~' followed by anything but a separator is not a root; the tilde
// is the first character of the first element. The returned offset
// covers the separator run that closes the root.
func (n nixSchema) ParseRoot(s string) (Root, int, error) {
	if s == "" {
		return Root{}, 0, nil
	}

	if s[0] == '/' {
		i := 1
		for i < len(s) && s[i] == '/' {
			i++
		}
		return Root{Kind: RootSysRoot, Text: "/"}, i, nil
	}

	if s[0] == '~' {
		if len(s) == 1 {
			return Root{Kind: RootUserHome, Text: "~/"}, 1, nil
		}
		if s[1] == '/' {
			i := 2
			for i < len(s) && s[i] == '/' {
				i++
			}
			return Root{Kind: RootUserHome, Text: "~/"}, i, nil
		}
		// "~backup": the tilde belongs to the first element
	}

	return Root{}, 0, nil
}

// RenderRoot formats a root for the given usage. Kernel usage replaces
// the home-relative root with the home directory from the OS service.
func (nixSchema) RenderRoot(root Root, usage Usage, env platform.OS) (string, error) {
	if usage == UsageKernel && root.Kind == RootUserHome {
		home, err := env.HomeDir()
		if err != nil {
			return "", perror.Wrap(err, "resolving home directory").
				WithCode(perror.CodeEnvironmentError).
				WithOperation("path.RenderRoot")
		}
		if !strings.HasSuffix(home, "/") {
			home += "/"
		}
		return home, nil
	}
	return root.Text, nil
}

// RenderPath formats a normalized POSIX path string for the given
// usage. Kernel usage substitutes the '~/' root with the home
// directory; Shell usage enforces the shell-safe length limit.
func (n nixSchema) RenderPath(source string, root Root, usage Usage, env platform.OS) (string, error) {
	switch usage {
	case UsageDisplay:
		return source, nil

	case UsageShell:
		if len(source) > MaxShellPath {
			return "", perror.Newf("path '%s' exceeds %d characters for shell usage", source, MaxShellPath).
				WithCode(perror.CodePathTooLong).
				WithOperation("path.RenderPath")
		}
		return source, nil

	case UsageKernel:
		if root.Kind != RootUserHome {
			return source, nil
		}
		rendered, err := n.RenderRoot(root, UsageKernel, env)
		if err != nil {
			return "", err
		}
		return rendered + strings.TrimPrefix(source, "~/"), nil

	default:
		return "", perror.Newf("unknown rendering usage %d", usage).
			WithCode(perror.CodeInvalidInput).
			WithOperation("path.RenderPath")
	}
}
