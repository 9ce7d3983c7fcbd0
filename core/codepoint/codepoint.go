// File: codepoint.go
// Title: Unicode Code Point Predicates
// Description: Implements classification predicates and ASCII-range case
//              mapping for Unicode code points. These are the primitive
//              character tests the text, path, URI, and command-line
//              layers are built on.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package codepoint

// MaxCodePoint is the highest valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

// ReplacementChar is the Unicode replacement character U+FFFD.
const ReplacementChar rune = 0xFFFD

// IsValid reports whether cp is a valid Unicode scalar value,
// i.e. in [0, 0x10FFFF] and not a surrogate.
func IsValid(cp rune) bool {
	if cp < 0 || cp > MaxCodePoint {
		return false
	}
	return !IsSurrogate(cp)
}

// IsSurrogate reports whether cp lies in the UTF-16 surrogate range.
func IsSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

// IsHighSurrogate reports whether cp is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDBFF
}

// IsLowSurrogate reports whether cp is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(cp rune) bool {
	return cp >= 0xDC00 && cp <= 0xDFFF
}

// IsControl reports whether cp is a C0 or C1 control character or DEL.
func IsControl(cp rune) bool {
	return cp < 0x20 || cp == 0x7F || (cp >= 0x80 && cp <= 0x9F)
}

// IsWhitespace reports whether cp is a whitespace code point.
// The set covers ASCII whitespace plus the common Unicode space
// separators used when counting printable characters.
func IsWhitespace(cp rune) bool {
	switch cp {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x85,   // NEL
		0xA0,   // no-break space
		0x1680, // ogham space mark
		0x2028, // line separator
		0x2029, // paragraph separator
		0x202F, // narrow no-break space
		0x205F, // medium mathematical space
		0x3000: // ideographic space
		return true
	}
	return cp >= 0x2000 && cp <= 0x200A
}

// IsPrintable reports whether cp counts toward a string's printable
// length. Control characters are not printable; whitespace other than
// the plain space is not printable either.
func IsPrintable(cp rune) bool {
	if IsControl(cp) {
		return false
	}
	if cp == ' ' {
		return true
	}
	return !IsWhitespace(cp)
}

// IsDigit reports whether cp is an ASCII decimal digit.
func IsDigit(cp rune) bool {
	return cp >= '0' && cp <= '9'
}

// IsAlpha reports whether cp is an ASCII letter.
func IsAlpha(cp rune) bool {
	return (cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z')
}

// IsAlphaNumeric reports whether cp is an ASCII letter or digit.
func IsAlphaNumeric(cp rune) bool {
	return IsAlpha(cp) || IsDigit(cp)
}

// IsHexDigit reports whether cp is an ASCII hexadecimal digit.
func IsHexDigit(cp rune) bool {
	return IsDigit(cp) || (cp >= 'a' && cp <= 'f') || (cp >= 'A' && cp <= 'F')
}

// HexDigitValue returns the numeric value of an ASCII hexadecimal digit,
// or -1 if cp is not one.
func HexDigitValue(cp rune) int {
	switch {
	case cp >= '0' && cp <= '9':
		return int(cp - '0')
	case cp >= 'a' && cp <= 'f':
		return int(cp-'a') + 10
	case cp >= 'A' && cp <= 'F':
		return int(cp-'A') + 10
	}
	return -1
}

// DigitValue returns the numeric value of cp in the given radix
// (2 to 36), or -1 if cp is not a digit of that radix. Letters of
// either case contribute values 10 to 35.
func DigitValue(cp rune, radix int) int {
	var v int
	switch {
	case cp >= '0' && cp <= '9':
		v = int(cp - '0')
	case cp >= 'a' && cp <= 'z':
		v = int(cp-'a') + 10
	case cp >= 'A' && cp <= 'Z':
		v = int(cp-'A') + 10
	default:
		return -1
	}
	if v >= radix {
		return -1
	}
	return v
}

// ToUpperASCII maps an ASCII lowercase letter to uppercase and returns
// every other code point unchanged. Case mapping is intentionally
// restricted to the ASCII range.
func ToUpperASCII(cp rune) rune {
	if cp >= 'a' && cp <= 'z' {
		return cp - ('a' - 'A')
	}
	return cp
}

// ToLowerASCII maps an ASCII uppercase letter to lowercase and returns
// every other code point unchanged.
func ToLowerASCII(cp rune) rune {
	if cp >= 'A' && cp <= 'Z' {
		return cp + ('a' - 'A')
	}
	return cp
}
