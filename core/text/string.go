// File: string.go
// Title: Immutable String Value
// Description: Implements the immutable, shared String value type with
//              constructors from every supported encoding, cached length
//              accessors, byte-wise and case-folded comparison, ASCII case
//              transformation, search, and substring extraction.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package text

import (
	"bytes"

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/utf"
)

// String is an immutable sequence of Unicode code points stored as
// validated UTF-8. A String is a cheap handle: copies share one payload,
// and the zero value is the empty string.
type String struct {
	p *payload
}

// Empty is the canonical empty string value.
var Empty = String{p: emptyPayload}

func (s String) pl() *payload {
	if s.p == nil {
		return emptyPayload
	}
	return s.p
}

// New constructs a String from a Go string, validating that it is
// well-formed UTF-8. Malformed input fails with INVALID_ENCODING.
func New(s string) (String, error) {
	return FromBytes([]byte(s))
}

// MustNew constructs a String from a Go string and panics on malformed
// input. Intended for literals known to be valid at compile time.
func MustNew(s string) String {
	v, err := New(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBytes constructs a String from a UTF-8 byte slice. The bytes are
// copied; malformed input fails with INVALID_ENCODING.
func FromBytes(b []byte) (String, error) {
	if len(b) == 0 {
		return Empty, nil
	}
	if _, err := utf.CountUTF8(b); err != nil {
		return Empty, perror.Wrap(err, "constructing string from UTF-8").
			WithOperation("text.FromBytes")
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	return String{p: &payload{bytes: owned}}, nil
}

// FromUTF16 constructs a String from UTF-16 code units, combining
// surrogate pairs. Lone surrogates fail with INVALID_ENCODING.
func FromUTF16(units []uint16) (String, error) {
	if len(units) == 0 {
		return Empty, nil
	}
	counts, err := utf.CountUTF16(units)
	if err != nil {
		return Empty, perror.Wrap(err, "constructing string from UTF-16").
			WithOperation("text.FromUTF16")
	}
	b := make([]byte, 0, counts.UTF8)
	var d utf.UTF16Decoder
	for _, u := range units {
		cp, status := d.TryConvert(u)
		if status == utf.StatusProduced {
			b = utf.AppendUTF8(b, cp)
		}
	}
	return String{p: &payload{bytes: b}}, nil
}

// FromUTF32 constructs a String from UTF-32 code points. Surrogate and
// out-of-range values fail with INVALID_ENCODING.
func FromUTF32(cps []rune) (String, error) {
	if len(cps) == 0 {
		return Empty, nil
	}
	counts, err := utf.CountUTF32(cps)
	if err != nil {
		return Empty, perror.Wrap(err, "constructing string from UTF-32").
			WithOperation("text.FromUTF32")
	}
	b := make([]byte, 0, counts.UTF8)
	for _, cp := range cps {
		b = utf.AppendUTF8(b, cp)
	}
	return String{p: &payload{bytes: b}}, nil
}

// FromRunes constructs a String from a rune slice. It is FromUTF32 under
// a Go-native name.
func FromRunes(cps []rune) (String, error) {
	return FromUTF32(cps)
}

// FromWide constructs a String from platform wide characters: UTF-16
// code units on Windows, UTF-32 code points elsewhere.
func FromWide(units []utf.Wide) (String, error) {
	cps, err := utf.DecodeWide(units)
	if err != nil {
		return Empty, perror.Wrap(err, "constructing string from wide characters").
			WithOperation("text.FromWide")
	}
	return FromUTF32(cps)
}

// Len returns the UTF-8 byte length. O(1).
func (s String) Len() int {
	return s.pl().utf8Len()
}

// LenUTF16 returns the number of UTF-16 code units the string occupies
// when re-encoded. O(n) on first call, O(1) thereafter.
func (s String) LenUTF16() int {
	return s.pl().lenUTF16()
}

// LenUTF32 returns the number of code points in the string. O(n) on
// first call, O(1) thereafter.
func (s String) LenUTF32() int {
	return s.pl().lenUTF32()
}

// PrintLen returns the number of printable code points in the string.
// O(n) on first call, O(1) thereafter.
func (s String) PrintLen() int {
	return s.pl().lenPrint()
}

// Hash returns a 64-bit xxHash of the byte content. O(n) on first call,
// O(1) thereafter.
func (s String) Hash() uint64 {
	return s.pl().contentHash()
}

// IsEmpty reports whether the string has no content
func (s String) IsEmpty() bool {
	return s.pl().utf8Len() == 0
}

// String returns the content as a Go string
func (s String) String() string {
	return string(s.pl().bytes)
}

// AppendTo appends the UTF-8 bytes of the string to dst and returns the
// extended slice. This is the byte view the stream layer consumes.
func (s String) AppendTo(dst []byte) []byte {
	return append(dst, s.pl().bytes...)
}

// SharesPayload reports whether two handles refer to the same shared
// storage. Exposed for tests of the sharing contract.
func (s String) SharesPayload(other String) bool {
	return s.pl() == other.pl()
}

// Compare performs lexicographic byte-wise comparison, which for valid
// UTF-8 equals code point order. Returns -1, 0, or 1.
func (s String) Compare(other String) int {
	return bytes.Compare(s.pl().bytes, other.pl().bytes)
}

// Equal reports whether both strings have identical content
func (s String) Equal(other String) bool {
	if s.pl() == other.pl() {
		return true
	}
	return bytes.Equal(s.pl().bytes, other.pl().bytes)
}

// foldASCII maps ASCII uppercase bytes to lowercase. Bytes >= 0x80 are
// UTF-8 continuation or lead bytes and pass through untouched, so the
// fold is safe to apply per byte.
func foldASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// CompareIgnoreCase compares with ASCII-range case folding. Folding is
// deliberately restricted to ASCII; non-Latin scripts compare byte-wise.
func (s String) CompareIgnoreCase(other String) int {
	a, b := s.pl().bytes, other.pl().bytes
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := foldASCII(a[i]), foldASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// EqualIgnoreCase reports equality under ASCII-range case folding
func (s String) EqualIgnoreCase(other String) bool {
	return s.CompareIgnoreCase(other) == 0
}

// mapASCII applies an ASCII byte mapping, returning the receiver
// unchanged (same payload) when no byte differs.
func (s String) mapASCII(mapping func(byte) byte) String {
	b := s.pl().bytes
	for i := 0; i < len(b); i++ {
		if mapping(b[i]) != b[i] {
			mapped := make([]byte, len(b))
			copy(mapped, b[:i])
			for j := i; j < len(b); j++ {
				mapped[j] = mapping(b[j])
			}
			return String{p: &payload{bytes: mapped}}
		}
	}
	return s
}

// ToUpper returns a copy with ASCII letters mapped to uppercase. When
// the result would equal the input the same shared payload is returned.
func (s String) ToUpper() String {
	return s.mapASCII(func(b byte) byte {
		if b >= 'a' && b <= 'z' {
			return b - ('a' - 'A')
		}
		return b
	})
}

// ToLower returns a copy with ASCII letters mapped to lowercase. When
// the result would equal the input the same shared payload is returned.
func (s String) ToLower() String {
	return s.mapASCII(foldASCII)
}

// Substring returns a new String covering the bytes between two
// iterators over this string, [from, to). Iterators over a different
// payload or an inverted range fail with INDEX_OUT_OF_RANGE.
func (s String) Substring(from, to Iterator) (String, error) {
	p := s.pl()
	if from.p != p || to.p != p {
		return Empty, perror.New("substring iterators do not refer to this string").
			WithCode(perror.CodeIndexOutOfRange).
			WithOperation("text.Substring")
	}
	if from.offset > to.offset || to.offset > len(p.bytes) {
		return Empty, perror.Newf("substring range [%d, %d) is out of bounds", from.offset, to.offset).
			WithCode(perror.CodeIndexOutOfRange).
			WithOperation("text.Substring")
	}
	if from.offset == 0 && to.offset == len(p.bytes) {
		return s, nil
	}
	sub, err := FromBytes(p.bytes[from.offset:to.offset])
	if err != nil {
		// The range is iterator-aligned, so the slice is valid UTF-8.
		return Empty, perror.Wrap(err, "substring produced malformed bytes").
			WithCode(perror.CodeInternal)
	}
	return sub, nil
}

// Find searches forward from the given iterator for a code point and
// returns an iterator positioned at it. The boolean reports success.
func (s String) Find(cp rune, from Iterator) (Iterator, bool) {
	it := from
	if it.p != s.pl() {
		it = s.Begin()
	}
	for !it.AtEnd() {
		if it.Rune() == cp {
			return it, true
		}
		it.Next()
	}
	return s.End(), false
}

// ReverseFind searches backward from the given iterator for a code point
// and returns an iterator positioned at it. The boolean reports success.
func (s String) ReverseFind(cp rune, from Iterator) (Iterator, bool) {
	it := from
	if it.p != s.pl() {
		it = s.End()
	}
	for it.Prev() {
		if it.Rune() == cp {
			return it, true
		}
	}
	return s.End(), false
}
