// File: charclass.go
// Title: URI Character Classes
// Description: Precomputed sorted byte classes for the RFC 3986 component
//              grammar, searched by binary search, plus the escape and
//              unescape primitives built on them.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package uri

import (
	"sort"
	"strings"

	"github.com/plinth-go/plinth/core/codepoint"
)

// charClass is a sorted set of allowed bytes
type charClass []byte

// newCharClass builds a sorted class from the ASCII ranges and extra
// characters given
func newCharClass(alpha, digit bool, extra string) charClass {
	var c charClass
	if alpha {
		for b := byte('A'); b <= 'Z'; b++ {
			c = append(c, b, b+('a'-'A'))
		}
	}
	if digit {
		for b := byte('0'); b <= '9'; b++ {
			c = append(c, b)
		}
	}
	c = append(c, extra...)
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c
}

// extend returns a new class with the extra characters merged in
func (c charClass) extend(extra string) charClass {
	out := append(charClass{}, c...)
	out = append(out, extra...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// contains reports whether b is in the class
func (c charClass) contains(b byte) bool {
	i := sort.Search(len(c), func(i int) bool { return c[i] >= b })
	return i < len(c) && c[i] == b
}

// The six classes of the component grammar. The scheme is constrained
// directly by the parser and never escaped, so it has no class here.
var (
	classUnreserved = newCharClass(true, true, "-._~")
	classSubDelims  = newCharClass(false, false, "!$&'()*+,;=")
	classUserInfo   = classUnreserved.extend("!$&'()*+,;=%")
	classHost       = classUnreserved.extend("!$&'()*+,;=%[]")
	classPathElem   = classUnreserved.extend("!$&'()*+,;=%@")
	classQueryFrag  = classPathElem.extend(":@/?")
)

const upperHex = "0123456789ABCDEF"

// escapeTo appends s to sb with every byte outside class replaced by
// its %HH form. '%' is a member of every escapable class, so existing
// escape sequences pass through unchanged.
func escapeTo(sb *strings.Builder, s string, class charClass) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if class.contains(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[b>>4])
		sb.WriteByte(upperHex[b&0x0F])
	}
}

// escape returns s with every byte outside class replaced by %HH
func escape(s string, class charClass) string {
	var sb strings.Builder
	escapeTo(&sb, s, class)
	return sb.String()
}

// unescape returns s with every well-formed %HH run replaced by the
// decoded byte. Ill-formed runs pass through verbatim.
func unescape(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) &&
			codepoint.IsHexDigit(rune(s[i+1])) && codepoint.IsHexDigit(rune(s[i+2])) {
			hi := codepoint.HexDigitValue(rune(s[i+1]))
			lo := codepoint.HexDigitValue(rune(s[i+2]))
			sb.WriteByte(byte(hi<<4 | lo))
			i += 3
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
