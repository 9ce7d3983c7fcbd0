// File: iterator_test.go
// Title: Unit Tests for the Code Point Iterator
// Description: Tests for forward and backward iteration, dereference
//              caching, boundary behavior, and iterator equality.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial test implementation

package text

import (
	"testing"

	"github.com/plinth-go/plinth/core/utf"
)

func TestIteratorForwardRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ascii", "hello"},
		{"mixed widths", "aé中🎉z"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNew(tt.input)

			var reencoded []byte
			for it := s.Begin(); !it.AtEnd(); it.Next() {
				reencoded = utf.AppendUTF8(reencoded, it.Rune())
			}
			if string(reencoded) != tt.input {
				t.Errorf("iteration re-encoded to %q; want %q", reencoded, tt.input)
			}
		})
	}
}

func TestIteratorBackward(t *testing.T) {
	s := MustNew("aé中🎉z")
	want := []rune{'z', '🎉', '中', 'é', 'a'}

	var got []rune
	for it := s.End(); it.Prev(); {
		got = append(got, it.Rune())
	}
	if len(got) != len(want) {
		t.Fatalf("backward iteration yielded %d code points; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("backward[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestIteratorBoundaries(t *testing.T) {
	s := MustNew("ab")

	begin := s.Begin()
	if begin.Prev() {
		t.Error("Prev at begin succeeded; must not underflow")
	}
	if !begin.AtBegin() {
		t.Error("failed Prev moved the iterator")
	}

	end := s.End()
	if end.Next() {
		t.Error("Next at end succeeded; must not overrun")
	}
	if end.Rune() != 0 {
		t.Errorf("dereferencing end = %q; want 0", end.Rune())
	}
	if !end.AtEnd() || end.Offset() != s.Len() {
		t.Error("end iterator is not at utf8 length")
	}

	empty := MustNew("")
	if !empty.Begin().Equal(empty.End()) {
		t.Error("begin != end for the empty string")
	}
}

func TestIteratorEquality(t *testing.T) {
	s := MustNew("abc")

	a := s.Begin()
	b := s.Begin()
	if !a.Equal(b) {
		t.Error("fresh begin iterators are not equal")
	}
	a.Next()
	if a.Equal(b) {
		t.Error("advanced iterator equals unadvanced one")
	}
	b.Next()
	if !a.Equal(b) {
		t.Error("iterators at the same offset are not equal")
	}

	// Same content, different payload: never equal
	other := MustNew("abc")
	if s.Begin().Equal(other.Begin()) {
		t.Error("iterators over distinct payloads compare equal")
	}
}

func TestIteratorAdvanceRetreat(t *testing.T) {
	s := MustNew("a中b")

	it := s.Begin()
	if moved := it.Advance(2); moved != 2 {
		t.Errorf("Advance(2) moved %d; want 2", moved)
	}
	if it.Rune() != 'b' {
		t.Errorf("after Advance(2) at %q; want 'b'", it.Rune())
	}
	if moved := it.Advance(5); moved != 1 {
		t.Errorf("Advance(5) near end moved %d; want 1", moved)
	}
	if moved := it.Retreat(10); moved != 3 {
		t.Errorf("Retreat(10) moved %d; want 3", moved)
	}
	if !it.AtBegin() {
		t.Error("full retreat did not reach the beginning")
	}
}
