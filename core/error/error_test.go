// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests for error construction, wrapping, code and severity
//              propagation, and position reporting.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial test implementation

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
	if err.Position() != -1 {
		t.Errorf("Position() = %d; want -1", err.Position())
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() is empty; want at least one frame")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected Severity
	}{
		{"parse failure is low", CodeInvalidPath, SeverityLow},
		{"uri parse is low", CodeURIParse, SeverityLow},
		{"too long is medium", CodePathTooLong, SeverityMedium},
		{"environment is high", CodeEnvironmentError, SeverityHigh},
		{"internal is critical", CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.expected {
				t.Errorf("severity = %v; want %v", err.Severity(), tt.expected)
			}
		})
	}
}

func TestExplicitSeverityIsKept(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidPath)
	if err.Severity() != SeverityCritical {
		t.Errorf("severity = %v; want %v", err.Severity(), SeverityCritical)
	}
}

func TestWrap(t *testing.T) {
	base := New("root failure").WithCode(CodeInvalidEncoding).WithPosition(7)
	wrapped := Wrap(base, "constructing string")

	if wrapped.Code() != CodeInvalidEncoding {
		t.Errorf("wrapped code = %v; want %v", wrapped.Code(), CodeInvalidEncoding)
	}
	if wrapped.Position() != 7 {
		t.Errorf("wrapped position = %d; want 7", wrapped.Position())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false; want true")
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	stdErr := fmt.Errorf("plain failure")
	wrapped := Wrap(stdErr, "while working")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("code = %v; want %v", wrapped.Code(), CodeUnknown)
	}
	if wrapped.RootCause() != stdErr {
		t.Errorf("RootCause() = %v; want %v", wrapped.RootCause(), stdErr)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("bad option").WithCode(CodeUnknownOption)

	if !HasCode(err, CodeUnknownOption) {
		t.Error("HasCode = false; want true")
	}
	if HasCode(err, CodeInvalidPath) {
		t.Error("HasCode for wrong code = true; want false")
	}
	if GetCode(fmt.Errorf("other")) != CodeUnknown {
		t.Error("GetCode on non-plinth error should be CodeUnknown")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeInvalidEncoding, "text"},
		{CodeInvalidPath, "path"},
		{CodeURIParse, "uri"},
		{CodeMissingClosingQuote, "cmdline"},
		{CodeConfigError, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %q; want %q", tt.code, got, tt.category)
		}
	}
	for _, tt := range tests {
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false; want true", tt.code)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad escape").WithCode(CodeURIParse).WithPosition(12)
	data, jerr := err.MarshalJSON()
	if jerr != nil {
		t.Fatalf("MarshalJSON failed: %v", jerr)
	}
	s := string(data)
	for _, want := range []string{`"code":"URI_PARSE"`, `"position":12`, `"bad escape"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}
