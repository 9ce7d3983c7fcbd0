// File: tokenize.go
// Title: Surface-Syntax Tokenizers
// Description: Implements pass one of command-line processing: the POSIX
//              and Windows array tokenizers and the quote-aware splitter
//              for a single command-line string, all normalizing into the
//              shared token model.
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

func malformed(arg, what string) error {
	return perror.Newf("argument '%s' %s", arg, what).
		WithCode(perror.CodeMalformedOption).
		WithOperation("cmdline.Tokenize")
}

// tokenizeOne normalizes a single pre-split argument. windows selects
// whether a leading '/' produces a WindowsOption.
func tokenizeOne(arg string, windows bool) ([]Token, error) {
	switch {
	case strings.HasPrefix(arg, "--"):
		rest := arg[2:]
		if rest == "" {
			return nil, malformed(arg, "has no option name")
		}
		tok := Token{Kind: KindLongOption, Text: rest}
		if name, value, ok := strings.Cut(rest, "="); ok {
			tok.Text = name
			tok.Value = value
			tok.HasValue = true
			if name == "" {
				return nil, malformed(arg, "has a value but no option name")
			}
		}
		return []Token{tok}, nil

	case strings.HasPrefix(arg, "-") && arg != "-":
		run := arg[1:]
		value := ""
		hasValue := false
		if r, v, ok := strings.Cut(run, "="); ok {
			if r == "" {
				return nil, malformed(arg, "has a value but no option name")
			}
			run, value, hasValue = r, v, true
		}
		runes := []rune(run)
		tokens := make([]Token, len(runes))
		for i, c := range runes {
			tokens[i] = Token{Kind: KindShortOption, Text: string(c)}
		}
		// a bound value belongs to the last short option in the run
		if hasValue {
			tokens[len(tokens)-1].Value = value
			tokens[len(tokens)-1].HasValue = true
		}
		return tokens, nil

	case arg == "-":
		return nil, malformed(arg, "has no option name")

	case windows && strings.HasPrefix(arg, "/") && len(arg) > 1:
		rest := arg[1:]
		tok := Token{Kind: KindWindowsOption, Text: rest}
		if name, value, ok := strings.Cut(rest, "="); ok {
			if name == "" {
				return nil, malformed(arg, "has a value but no option name")
			}
			tok.Text = name
			tok.Value = value
			tok.HasValue = true
		}
		return []Token{tok}, nil

	default:
		return []Token{{Kind: KindArgument, Text: arg}}, nil
	}
}

// TokenizePosix normalizes a pre-split POSIX argument array
func TokenizePosix(args []string) ([]Token, error) {
	var tokens []Token
	for _, arg := range args {
		t, err := tokenizeOne(arg, false)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t...)
	}
	return tokens, nil
}

// TokenizeWindows normalizes a pre-split argument array, additionally
// recognizing '/name' options.
func TokenizeWindows(args []string) ([]Token, error) {
	var tokens []Token
	for _, arg := range args {
		t, err := tokenizeOne(arg, true)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t...)
	}
	return tokens, nil
}

// SplitCommandLine splits one command-line string into arguments.
// Whitespace separates arguments; '"' delimits quoted runs with no
// escape sequences inside. An unterminated quote fails with
// MISSING_CLOSING_QUOTE.
func SplitCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	inToken := false
	inQuote := false
	quoteStart := 0

	for i, r := range line {
		switch {
		case r == '"':
			if inQuote {
				inQuote = false
			} else {
				inQuote = true
				quoteStart = i
				inToken = true
			}
		case unicode.IsSpace(r) && !inQuote:
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if inQuote {
		return nil, perror.Newf("command line '%s' has an unclosed quote", line).
			WithCode(perror.CodeMissingClosingQuote).
			WithPosition(quoteStart).
			WithOperation("cmdline.SplitCommandLine")
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}

// TokenizeCommandLine splits a single Windows-style command line and
// normalizes the pieces.
func TokenizeCommandLine(line string) ([]Token, error) {
	args, err := SplitCommandLine(line)
	if err != nil {
		return nil, err
	}
	return TokenizeWindows(args)
}
