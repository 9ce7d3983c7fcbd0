// File: dispatch.go
// Title: Token Dispatch
// Description: Implements pass two of command-line processing: walking the
//              normalized token list, resolving options against the schema,
//              binding values per requirement, and driving the handler and
//              its post-process and validate hooks.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

import (
	perror "github.com/plinth-go/plinth/core/error"
)

// Handler receives the dispatched command line. OnOption and
// OnPositional are called in token order; PostProcess runs after the
// last token and Validate after PostProcess. Any error aborts
// processing.
type Handler interface {
	OnOption(opt Option, value string) error
	OnPositional(value string) error
	PostProcess() error
	Validate() error
}

// Hooks is a Handler assembled from optional funcs, for callers that
// do not want a dedicated type. Nil funcs accept silently.
type Hooks struct {
	Option     func(opt Option, value string) error
	Positional func(value string) error
	Post       func() error
	Validation func() error
}

func (h Hooks) OnOption(opt Option, value string) error {
	if h.Option == nil {
		return nil
	}
	return h.Option(opt, value)
}

func (h Hooks) OnPositional(value string) error {
	if h.Positional == nil {
		return nil
	}
	return h.Positional(value)
}

func (h Hooks) PostProcess() error {
	if h.Post == nil {
		return nil
	}
	return h.Post()
}

func (h Hooks) Validate() error {
	if h.Validation == nil {
		return nil
	}
	return h.Validation()
}

// resolve finds the schema definition for an option token
func resolve(s *Schema, tok Token) (Option, error) {
	switch tok.Kind {
	case KindShortOption:
		if opt, ok := s.LookupShort([]rune(tok.Text)[0]); ok {
			return opt, nil
		}
	case KindLongOption:
		if opt, ok := s.LookupLong(tok.Text); ok {
			return opt, nil
		}
	case KindWindowsOption:
		// '/x' may name either a long or a short alias
		if opt, ok := s.LookupLong(tok.Text); ok {
			return opt, nil
		}
		if runes := []rune(tok.Text); len(runes) == 1 {
			if opt, ok := s.LookupShort(runes[0]); ok {
				return opt, nil
			}
		}
	}
	return Option{}, perror.Newf("unknown option '%s'", tok.Text).
		WithCode(perror.CodeUnknownOption).
		WithOperation("cmdline.Dispatch")
}

// Dispatch walks the token list in order, resolving options and binding
// values per their requirement, then runs the post-process and validate
// hooks. The positional count is checked against the schema's
// multiplicity before the hooks run.
func Dispatch(s *Schema, tokens []Token, h Handler) error {
	positionals := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Kind == KindArgument {
			positionals++
			if err := h.OnPositional(tok.Text); err != nil {
				return err
			}
			continue
		}

		opt, err := resolve(s, tok)
		if err != nil {
			return err
		}

		value := ""
		switch opt.Requirement {
		case ValueNone:
			// dispatched with an empty value even when one was bound

		case ValueOptional, ValueMandatory:
			switch {
			case tok.HasValue:
				value = tok.Value
			case i+1 < len(tokens) && tokens[i+1].Kind == KindArgument:
				value = tokens[i+1].Text
				i++
			case opt.Requirement == ValueMandatory:
				return perror.Newf("option '%s' requires a value", tok.Text).
					WithCode(perror.CodeMissingOptionValue).
					WithOperation("cmdline.Dispatch")
			}
		}

		if err := h.OnOption(opt, value); err != nil {
			return err
		}
	}

	if !s.multiplicity.allows(positionals) {
		return perror.Newf("expected %s positional argument(s), got %d",
			s.multiplicity.String(), positionals).
			WithCode(perror.CodeInvalidInput).
			WithOperation("cmdline.Dispatch")
	}

	if err := h.PostProcess(); err != nil {
		return err
	}
	return h.Validate()
}

// ParseArgs tokenizes a POSIX argument array and dispatches it
func ParseArgs(s *Schema, args []string, h Handler) error {
	tokens, err := TokenizePosix(args)
	if err != nil {
		return err
	}
	return Dispatch(s, tokens, h)
}

// ParseWindowsArgs tokenizes a Windows argument array and dispatches it
func ParseWindowsArgs(s *Schema, args []string, h Handler) error {
	tokens, err := TokenizeWindows(args)
	if err != nil {
		return err
	}
	return Dispatch(s, tokens, h)
}

// ParseCommandLine tokenizes a single command-line string and
// dispatches it
func ParseCommandLine(s *Schema, line string, h Handler) error {
	tokens, err := TokenizeCommandLine(line)
	if err != nil {
		return err
	}
	return Dispatch(s, tokens, h)
}
