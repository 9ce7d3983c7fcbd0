// File: cmdline_test.go
// Title: Command-Line Parser Tests
// Description: Tests for the tokenizers, the schema builder's alias
//              indices, dispatch order and value binding, and help-text
//              generation.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmdline

import (
	"fmt"
	"strings"
	"testing"

	perror "github.com/plinth-go/plinth/core/error"
)

func TestTokenizePosix(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []Token
	}{
		{
			name: "short run splits",
			args: []string{"-abc"},
			want: []Token{
				{Kind: KindShortOption, Text: "a"},
				{Kind: KindShortOption, Text: "b"},
				{Kind: KindShortOption, Text: "c"},
			},
		},
		{
			name: "value binds to last short",
			args: []string{"-ab=x"},
			want: []Token{
				{Kind: KindShortOption, Text: "a"},
				{Kind: KindShortOption, Text: "b", Value: "x", HasValue: true},
			},
		},
		{
			name: "long with value",
			args: []string{"--out=file.txt"},
			want: []Token{{Kind: KindLongOption, Text: "out", Value: "file.txt", HasValue: true}},
		},
		{
			name: "long with empty bound value",
			args: []string{"--out="},
			want: []Token{{Kind: KindLongOption, Text: "out", Value: "", HasValue: true}},
		},
		{
			name: "positional",
			args: []string{"input.doc"},
			want: []Token{{Kind: KindArgument, Text: "input.doc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokenizePosix(tt.args)
			if err != nil {
				t.Fatalf("TokenizePosix failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("tokens = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeMalformed(t *testing.T) {
	for _, arg := range []string{"-", "--", "--=x", "-=x"} {
		t.Run(arg, func(t *testing.T) {
			_, err := TokenizePosix([]string{arg})
			if !perror.HasCode(err, perror.CodeMalformedOption) {
				t.Errorf("TokenizePosix(%q) code = %v, want %s", arg, perror.GetCode(err), perror.CodeMalformedOption)
			}
		})
	}
}

func TestTokenizeWindows(t *testing.T) {
	got, err := TokenizeWindows([]string{"/out=x", "/v", "file"})
	if err != nil {
		t.Fatalf("TokenizeWindows failed: %v", err)
	}
	want := []Token{
		{Kind: KindWindowsOption, Text: "out", Value: "x", HasValue: true},
		{Kind: KindWindowsOption, Text: "v"},
		{Kind: KindArgument, Text: "file"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", `a b  c`, []string{"a", "b", "c"}},
		{"quoted run", `copy "My File.txt" dest`, []string{"copy", "My File.txt", "dest"}},
		{"quote inside token", `a"b c"d`, []string{"ab cd"}},
		{"empty quoted", `"" x`, []string{"", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommandLine(tt.line)
			if err != nil {
				t.Fatalf("SplitCommandLine failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("args = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := SplitCommandLine(`copy "My File.txt`)
		if !perror.HasCode(err, perror.CodeMissingClosingQuote) {
			t.Errorf("code = %v, want %s", perror.GetCode(err), perror.CodeMissingClosingQuote)
		}
	})
}

// schema ids used across the dispatch tests
const (
	idHelp = iota
	idVerbose
	idQuiet
	idOutput
	idInput
)

func buildTestSchema(t *testing.T) *Schema {
	t.Helper()
	b := NewSchemaBuilder()
	b.SetName("convert")
	b.SetDescription("Converts documents between formats.")
	b.SetValueArgument("FILE", MultiplicityMany)

	defs := []struct {
		id     int
		desc   string
		req    ValueRequirement
		vname  string
		shorts string
		longs  []string
	}{
		{idHelp, "Show this help text.", ValueNone, "", "?h", []string{"help"}},
		{idVerbose, "Report every processing step.", ValueNone, "", "v", []string{"verbose"}},
		{idQuiet, "Suppress all output.", ValueNone, "", "Q", []string{"quiet"}},
		{idOutput, "Write the result to FILE.", ValueMandatory, "FILE", "o", []string{"output"}},
		{idInput, "Read the source from FILE.", ValueMandatory, "FILE", "i", []string{"input"}},
	}
	for _, d := range defs {
		if err := b.AddOption(d.id, d.desc, d.req, d.vname); err != nil {
			t.Fatalf("AddOption(%d) failed: %v", d.id, err)
		}
		for _, c := range d.shorts {
			if err := b.AddShortAlias(d.id, c, true); err != nil {
				t.Fatalf("AddShortAlias(%d, %c) failed: %v", d.id, c, err)
			}
		}
		for _, name := range d.longs {
			if err := b.AddLongAlias(d.id, name, false); err != nil {
				t.Fatalf("AddLongAlias(%d, %s) failed: %v", d.id, name, err)
			}
		}
	}
	return b.Freeze()
}

// recorder captures dispatch order as "id:value" / "arg:value" strings
type recorder struct {
	calls  []string
	posted bool
}

func (r *recorder) OnOption(opt Option, value string) error {
	r.calls = append(r.calls, fmt.Sprintf("%d:%s", opt.ID, value))
	return nil
}

func (r *recorder) OnPositional(value string) error {
	r.calls = append(r.calls, "arg:"+value)
	return nil
}

func (r *recorder) PostProcess() error {
	r.posted = true
	return nil
}

func (r *recorder) Validate() error {
	if !r.posted {
		return fmt.Errorf("validate ran before post-process")
	}
	return nil
}

func TestDispatchMultiShortScenario(t *testing.T) {
	s := buildTestSchema(t)
	rec := &recorder{}

	args := []string{"-?Qo=Log.txt", "Input.doc", "-hvi", `C:\export\data.csv`}
	if err := ParseArgs(s, args, rec); err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}

	want := []string{
		fmt.Sprintf("%d:", idHelp),
		fmt.Sprintf("%d:", idQuiet),
		fmt.Sprintf("%d:Log.txt", idOutput),
		"arg:Input.doc",
		fmt.Sprintf("%d:", idHelp),
		fmt.Sprintf("%d:", idVerbose),
		fmt.Sprintf("%d:C:\\export\\data.csv", idInput),
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], want[i])
		}
	}
}

func TestDispatchErrors(t *testing.T) {
	s := buildTestSchema(t)

	t.Run("unknown option", func(t *testing.T) {
		err := ParseArgs(s, []string{"-z"}, &recorder{})
		if !perror.HasCode(err, perror.CodeUnknownOption) {
			t.Errorf("code = %v, want %s", perror.GetCode(err), perror.CodeUnknownOption)
		}
	})

	t.Run("missing mandatory value", func(t *testing.T) {
		err := ParseArgs(s, []string{"-o"}, &recorder{})
		if !perror.HasCode(err, perror.CodeMissingOptionValue) {
			t.Errorf("code = %v, want %s", perror.GetCode(err), perror.CodeMissingOptionValue)
		}
	})

	t.Run("mandatory consumes next argument", func(t *testing.T) {
		rec := &recorder{}
		if err := ParseArgs(s, []string{"-o", "out.txt"}, rec); err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if len(rec.calls) != 1 || rec.calls[0] != fmt.Sprintf("%d:out.txt", idOutput) {
			t.Errorf("calls = %v", rec.calls)
		}
	})

	t.Run("hook rejection aborts", func(t *testing.T) {
		err := Dispatch(s, []Token{{Kind: KindArgument, Text: "x"}}, Hooks{
			Validation: func() error { return fmt.Errorf("rejected") },
		})
		if err == nil || !strings.Contains(err.Error(), "rejected") {
			t.Errorf("err = %v, want the hook's rejection", err)
		}
	})
}

func TestDispatchMultiplicity(t *testing.T) {
	b := NewSchemaBuilder()
	b.SetName("tool")
	b.SetValueArgument("FILE", MultiplicityExactlyOne)
	s := b.Freeze()

	if err := Dispatch(s, []Token{{Kind: KindArgument, Text: "one"}}, Hooks{}); err != nil {
		t.Errorf("one positional rejected: %v", err)
	}
	if err := Dispatch(s, nil, Hooks{}); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("zero positionals: code = %v, want %s", perror.GetCode(err), perror.CodeInvalidInput)
	}
}

func TestLongAliasLookup(t *testing.T) {
	s := buildTestSchema(t)

	// case-folded aliases resolve in any case
	for _, name := range []string{"verbose", "VERBOSE", "Verbose"} {
		if opt, ok := s.LookupLong(name); !ok || opt.ID != idVerbose {
			t.Errorf("LookupLong(%q) = %+v, %v", name, opt, ok)
		}
	}
}

func TestAliasConflicts(t *testing.T) {
	b := NewSchemaBuilder()
	if err := b.AddOption(1, "first", ValueNone, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOption(2, "second", ValueNone, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOption(1, "dup", ValueNone, ""); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("duplicate id: code = %v", perror.GetCode(err))
	}

	if err := b.AddShortAlias(1, 'x', true); err != nil {
		t.Fatal(err)
	}
	if err := b.AddShortAlias(2, 'x', true); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("duplicate short: code = %v", perror.GetCode(err))
	}

	// a case-insensitive short claims both variants
	if err := b.AddShortAlias(1, 'y', false); err != nil {
		t.Fatal(err)
	}
	if err := b.AddShortAlias(2, 'Y', true); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("folded short conflict: code = %v", perror.GetCode(err))
	}

	if err := b.AddLongAlias(1, "name", false); err != nil {
		t.Fatal(err)
	}
	if err := b.AddLongAlias(2, "NAME", false); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("folded long conflict: code = %v", perror.GetCode(err))
	}
	// the case-sensitive index is separate
	if err := b.AddLongAlias(2, "NAME", true); err != nil {
		t.Errorf("case-sensitive long rejected: %v", err)
	}
}

func TestHelpText(t *testing.T) {
	s := buildTestSchema(t)
	help := s.Help(60)

	for _, want := range []string{
		"Usage: convert [options] [FILE...]",
		"Converts documents between formats.",
		"-?, -h, --help",
		"-o, --output <FILE>",
		"Write the result to FILE.",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help text missing %q:\n%s", want, help)
		}
	}
}

func TestHelpWrapping(t *testing.T) {
	b := NewSchemaBuilder()
	b.SetName("x")
	if err := b.AddOption(1, strings.Repeat("word ", 20), ValueNone, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddShortAlias(1, 'a', true); err != nil {
		t.Fatal(err)
	}
	s := b.Freeze()

	for _, line := range strings.Split(s.Help(40), "\n") {
		if len(line) > 40 {
			t.Errorf("line exceeds the wrap width: %q", line)
		}
	}
}
