// File: string_test.go
// Title: Unit Tests for the Immutable String Value
// Description: Tests for construction, validation, cached measurements,
//              payload sharing, comparison, case mapping, search, and
//              substring extraction.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial test implementation

package text

import (
	"sync"
	"testing"

	perror "github.com/plinth-go/plinth/core/error"
)

func TestNewMeasuresUTF8Length(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ascii", "hello"},
		{"german", "grüße"},
		{"japanese", "日本語"},
		{"astral", "a🎉b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNew(tt.input)
			if s.Len() != len(tt.input) {
				t.Errorf("Len() = %d; want %d", s.Len(), len(tt.input))
			}
			if s.String() != tt.input {
				t.Errorf("String() = %q; want %q", s.String(), tt.input)
			}
		})
	}
}

func TestConstructorsRejectMalformedInput(t *testing.T) {
	if _, err := FromBytes([]byte{0xED, 0xA0, 0x80}); !perror.HasCode(err, perror.CodeInvalidEncoding) {
		t.Errorf("FromBytes(surrogate bytes) error = %v; want INVALID_ENCODING", err)
	}
	if _, err := FromUTF16([]uint16{0xD800}); !perror.HasCode(err, perror.CodeInvalidEncoding) {
		t.Errorf("FromUTF16(lone surrogate) error = %v; want INVALID_ENCODING", err)
	}
	if _, err := FromUTF32([]rune{0x110000}); !perror.HasCode(err, perror.CodeInvalidEncoding) {
		t.Errorf("FromUTF32(out of range) error = %v; want INVALID_ENCODING", err)
	}
}

func TestFromUTF16SurrogatePair(t *testing.T) {
	s, err := FromUTF16([]uint16{0x0061, 0xD83C, 0xDF89}) // "a🎉"
	if err != nil {
		t.Fatalf("FromUTF16 failed: %v", err)
	}
	if s.String() != "a🎉" {
		t.Errorf("String() = %q; want %q", s.String(), "a🎉")
	}
	if s.LenUTF16() != 3 {
		t.Errorf("LenUTF16() = %d; want 3", s.LenUTF16())
	}
}

func TestLengthCaches(t *testing.T) {
	s := MustNew("a b\tc中🎉")
	// utf8: 1+1+1+1+1+3+4 = 12; utf16: 6+1(surrogate extra) = 7; utf32: 7
	if got := s.Len(); got != 12 {
		t.Errorf("Len() = %d; want 12", got)
	}
	if got := s.LenUTF16(); got != 8 {
		t.Errorf("LenUTF16() = %d; want 8", got)
	}
	if got := s.LenUTF32(); got != 7 {
		t.Errorf("LenUTF32() = %d; want 7", got)
	}
	// printable: 'a', ' ', 'b', 'c', '中', '🎉' (tab is not printable)
	if got := s.PrintLen(); got != 6 {
		t.Errorf("PrintLen() = %d; want 6", got)
	}
	// Second read hits the cache and must agree
	if s.LenUTF16() != 8 || s.LenUTF32() != 7 || s.PrintLen() != 6 {
		t.Error("cached lengths disagree with first computation")
	}
}

func TestLengthCachesConcurrent(t *testing.T) {
	s := MustNew("concurrent 測定 🎉 content")
	wantU16 := s.LenUTF16()
	wantU32 := s.LenUTF32()
	wantPrint := s.PrintLen()
	wantHash := s.Hash()

	fresh := MustNew(s.String())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fresh.LenUTF16() != wantU16 || fresh.LenUTF32() != wantU32 ||
				fresh.PrintLen() != wantPrint || fresh.Hash() != wantHash {
				t.Error("concurrent lazy measurement disagreed")
			}
		}()
	}
	wg.Wait()
}

func TestEmptyStringSharesGlobalPayload(t *testing.T) {
	a := MustNew("")
	b, _ := FromBytes(nil)
	var zero String

	if !a.SharesPayload(b) || !a.SharesPayload(Empty) || !a.SharesPayload(zero) {
		t.Error("empty strings do not share the global empty payload")
	}
	if !a.IsEmpty() || a.Len() != 0 {
		t.Error("empty string misreports content")
	}
}

func TestHashEqualContentEqualHash(t *testing.T) {
	a := MustNew("same content")
	b := MustNew("same content")
	c := MustNew("different")

	if a.Hash() != b.Hash() {
		t.Error("equal content produced different hashes")
	}
	if a.Hash() == c.Hash() {
		t.Error("different content produced identical hashes (collision in trivial test data)")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "abc", "abc", 0},
		{"less", "abc", "abd", -1},
		{"greater", "b", "a", 1},
		{"prefix is less", "ab", "abc", -1},
		{"code point order", "é", "z", 1}, // U+00E9 > U+007A
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(tt.a).Compare(MustNew(tt.b))
			if got != tt.expected {
				t.Errorf("Compare(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCompareIgnoreCase(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"same letters different case", "HELLO", "hello", 0},
		{"mixed", "PathName", "pathname", 0},
		{"ordering folds", "B", "a", 1},
		{"non-ascii unaffected", "É", "é", -1}, // only ASCII folds
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(tt.a).CompareIgnoreCase(MustNew(tt.b))
			if got != tt.expected {
				t.Errorf("CompareIgnoreCase(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
			if (got == 0) != MustNew(tt.a).EqualIgnoreCase(MustNew(tt.b)) {
				t.Error("EqualIgnoreCase disagrees with CompareIgnoreCase")
			}
		})
	}
}

func TestCaseTransforms(t *testing.T) {
	s := MustNew("Path100/Übung")

	upper := s.ToUpper()
	if upper.String() != "PATH100/ÜBUNG" {
		t.Errorf("ToUpper() = %q; want %q", upper.String(), "PATH100/ÜBUNG")
	}
	lower := s.ToLower()
	if lower.String() != "path100/Übung" {
		t.Errorf("ToLower() = %q; want %q", lower.String(), "path100/Übung")
	}

	// Idempotence of ASCII-only mapping
	if !upper.ToUpper().Equal(upper) {
		t.Error("ToUpper is not idempotent")
	}

	// An unchanged result returns the same payload
	digits := MustNew("12345")
	if !digits.ToUpper().SharesPayload(digits) {
		t.Error("unchanged ToUpper did not return the shared payload")
	}
	if !upper.ToUpper().SharesPayload(upper) {
		t.Error("idempotent ToUpper did not return the shared payload")
	}
}

func TestSubstring(t *testing.T) {
	s := MustNew("a中b🎉c")

	from := s.Begin()
	from.Next() // past 'a'
	to := from
	to.Advance(2) // past '中' and 'b'

	sub, err := s.Substring(from, to)
	if err != nil {
		t.Fatalf("Substring failed: %v", err)
	}
	if sub.String() != "中b" {
		t.Errorf("Substring = %q; want %q", sub.String(), "中b")
	}

	// Whole-range substring shares the payload
	whole, err := s.Substring(s.Begin(), s.End())
	if err != nil {
		t.Fatalf("whole substring failed: %v", err)
	}
	if !whole.SharesPayload(s) {
		t.Error("whole-range substring did not share the payload")
	}

	// Iterators from another string are rejected
	other := MustNew("a中b🎉c")
	if _, err := s.Substring(other.Begin(), other.End()); !perror.HasCode(err, perror.CodeIndexOutOfRange) {
		t.Errorf("foreign iterator error = %v; want INDEX_OUT_OF_RANGE", err)
	}

	// Inverted range is rejected
	if _, err := s.Substring(to, from); !perror.HasCode(err, perror.CodeIndexOutOfRange) {
		t.Errorf("inverted range error = %v; want INDEX_OUT_OF_RANGE", err)
	}
}

func TestFindAndReverseFind(t *testing.T) {
	s := MustNew("one/two/three")

	it, ok := s.Find('/', s.Begin())
	if !ok || it.Offset() != 3 {
		t.Errorf("Find('/') at offset %d, ok=%v; want 3, true", it.Offset(), ok)
	}

	it.Next()
	second, ok := s.Find('/', it)
	if !ok || second.Offset() != 7 {
		t.Errorf("second Find('/') at offset %d, ok=%v; want 7, true", second.Offset(), ok)
	}

	last, ok := s.ReverseFind('/', s.End())
	if !ok || last.Offset() != 7 {
		t.Errorf("ReverseFind('/') at offset %d, ok=%v; want 7, true", last.Offset(), ok)
	}

	if _, ok := s.Find('x', s.Begin()); ok {
		t.Error("Find found a code point that is not present")
	}
}
