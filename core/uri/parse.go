// File: parse.go
// Title: URI Parser State Machine
// Description: Implements the single-pass component recognizer: an opening
//              run that disambiguates scheme from path without backtracking,
//              an authority scanner splitting user-info, host, and port, and
//              the path/query/fragment states with escape validation.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package uri

import (
	"github.com/plinth-go/plinth/core/codepoint"
	perror "github.com/plinth-go/plinth/core/error"
)

// span is a half-open byte range into the source string. A span with
// off < 0 marks an absent component; a present component may still be
// empty.
type span struct {
	off, length int
}

var noSpan = span{off: -1}

func (s span) present() bool { return s.off >= 0 }

func (s span) of(src string) string {
	if !s.present() {
		return ""
	}
	return src[s.off : s.off+s.length]
}

// components is the raw parse result: one span per component plus the
// decoded port.
type components struct {
	scheme   span
	userInfo span
	host     span
	port     int // negative means no port
	path     span
	query    span
	fragment span
}

// upState enumerates the parser states
type upState int

const (
	upOpening  upState = iota // ambiguous scheme-or-path run
	upScheme                  // just past "scheme:", nothing consumed yet
	upSlash1                  // one '/' consumed after the scheme
	upAuth                    // inside the authority
	upPath                    // inside the path
	upQuery                   // inside the query
	upFragment                // inside the fragment
)

func parseErr(src string, pos int, what string) error {
	return perror.Newf("URI '%s' %s", src, what).
		WithCode(perror.CodeURIParse).
		WithPosition(pos).
		WithOperation("uri.Parse")
}

// isSchemeByte reports whether b may appear in a scheme after the
// leading letter
func isSchemeByte(b byte) bool {
	return codepoint.IsAlphaNumeric(rune(b)) || b == '+' || b == '-' || b == '.'
}

func validScheme(s string) bool {
	if s == "" || !codepoint.IsAlpha(rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeByte(s[i]) {
			return false
		}
	}
	return true
}

// checkEscape validates the two hex digits following the '%' at pos and
// returns the index just past them
func checkEscape(src string, pos int) (int, error) {
	if pos+2 >= len(src) ||
		!codepoint.IsHexDigit(rune(src[pos+1])) || !codepoint.IsHexDigit(rune(src[pos+2])) {
		return 0, parseErr(src, pos, "has a malformed escape sequence")
	}
	return pos + 3, nil
}

// authByte reports whether b may appear anywhere in an authority. The
// user-info/host/port split happens after the scan, so this is the
// union of their alphabets.
func authByte(b byte) bool {
	return classHost.contains(b) || b == ':' || b == '@'
}

// parseComponents runs the state machine over src. Empty input is an
// error; the caller decides whether an empty URI value is meaningful.
func parseComponents(src string) (components, error) {
	c := components{
		scheme: noSpan, userInfo: noSpan, host: noSpan, port: -1,
		path: noSpan, query: noSpan, fragment: noSpan,
	}
	if src == "" {
		return c, parseErr(src, 0, "is empty")
	}

	state := upOpening
	start := 0 // start of the run the current state accumulates

	// authority bookkeeping
	authStart := 0
	lastAt := -1
	colonAfterAt := -1
	inBracket := false

	finishAuthority := func(end int) error {
		hostStart := authStart
		if lastAt >= 0 {
			c.userInfo = span{off: authStart, length: lastAt - authStart}
			hostStart = lastAt + 1
		}
		hostEnd := end
		if colonAfterAt >= hostStart {
			hostEnd = colonAfterAt
			port := 0
			digits := src[colonAfterAt+1 : end]
			for i := 0; i < len(digits); i++ {
				if !codepoint.IsDigit(rune(digits[i])) {
					return parseErr(src, colonAfterAt+1+i, "has a non-numeric port")
				}
				port = port*10 + int(digits[i]-'0')
				if port > 65535 {
					return parseErr(src, colonAfterAt+1, "has a port outside 0..65535")
				}
			}
			if len(digits) > 0 {
				c.port = port
			}
		}
		c.host = span{off: hostStart, length: hostEnd - hostStart}
		return nil
	}

	i := 0
	for i < len(src) {
		b := src[i]

		switch state {
		case upOpening:
			switch {
			case b == ':':
				if !validScheme(src[start:i]) {
					return c, parseErr(src, i, "has an invalid scheme")
				}
				c.scheme = span{off: start, length: i - start}
				state = upScheme
			case b == '/':
				if i == start {
					// leading '/': post-scheme branch decides root vs authority
					state = upSlash1
				} else {
					// the run was the first element of a rootless path
					state = upPath
				}
			case b == '?':
				c.path = span{off: start, length: i - start}
				start = i + 1
				state = upQuery
			case b == '#':
				c.path = span{off: start, length: i - start}
				start = i + 1
				state = upFragment
			case b == '%':
				next, err := checkEscape(src, i)
				if err != nil {
					return c, err
				}
				i = next
				continue
			case classPathElem.contains(b):
				// still ambiguous; scheme validation happens at the ':'
			default:
				return c, parseErr(src, i, "has an invalid character")
			}

		case upScheme:
			switch {
			case b == '/':
				start = i
				state = upSlash1
			case b == '?':
				c.path = span{off: i, length: 0}
				start = i + 1
				state = upQuery
			case b == '#':
				c.path = span{off: i, length: 0}
				start = i + 1
				state = upFragment
			default:
				// opaque rootless path such as mailto:user@example.com
				start = i
				state = upPath
				continue
			}

		case upSlash1:
			if b == '/' {
				authStart = i + 1
				lastAt, colonAfterAt, inBracket = -1, -1, false
				state = upAuth
			} else {
				// single '/': rooted path that began at the slash
				state = upPath
				continue
			}

		case upAuth:
			switch {
			case b == '/' || b == '?' || b == '#':
				if err := finishAuthority(i); err != nil {
					return c, err
				}
				switch b {
				case '/':
					start = i
					state = upPath
					continue
				case '?':
					c.path = span{off: i, length: 0}
					start = i + 1
					state = upQuery
				case '#':
					c.path = span{off: i, length: 0}
					start = i + 1
					state = upFragment
				}
			case b == '@':
				lastAt = i
				colonAfterAt = -1
			case b == '[':
				inBracket = true
			case b == ']':
				inBracket = false
			case b == ':':
				if !inBracket {
					colonAfterAt = i
				}
			case b == '%':
				next, err := checkEscape(src, i)
				if err != nil {
					return c, err
				}
				i = next
				continue
			case authByte(b):
				// accumulate
			default:
				return c, parseErr(src, i, "has an invalid character in its authority")
			}

		case upPath:
			switch {
			case b == '/' || classPathElem.contains(b):
				if b == '%' {
					next, err := checkEscape(src, i)
					if err != nil {
						return c, err
					}
					i = next
					continue
				}
			case b == '?':
				c.path = span{off: start, length: i - start}
				start = i + 1
				state = upQuery
			case b == '#':
				c.path = span{off: start, length: i - start}
				start = i + 1
				state = upFragment
			default:
				return c, parseErr(src, i, "has an invalid character in its path")
			}

		case upQuery:
			switch {
			case b == '#':
				c.query = span{off: start, length: i - start}
				start = i + 1
				state = upFragment
			case b == '%':
				next, err := checkEscape(src, i)
				if err != nil {
					return c, err
				}
				i = next
				continue
			case classQueryFrag.contains(b):
				// accumulate
			default:
				return c, parseErr(src, i, "has an invalid character in its query")
			}

		case upFragment:
			switch {
			case b == '%':
				next, err := checkEscape(src, i)
				if err != nil {
					return c, err
				}
				i = next
				continue
			case classQueryFrag.contains(b):
				// accumulate
			default:
				return c, parseErr(src, i, "has an invalid character in its fragment")
			}
		}

		i++
	}

	// end of input
	switch state {
	case upOpening, upPath:
		c.path = span{off: start, length: len(src) - start}
	case upScheme:
		c.path = span{off: len(src), length: 0}
	case upSlash1:
		c.path = span{off: start, length: len(src) - start}
	case upAuth:
		if err := finishAuthority(len(src)); err != nil {
			return c, err
		}
		c.path = span{off: len(src), length: 0}
	case upQuery:
		c.query = span{off: start, length: len(src) - start}
	case upFragment:
		c.fragment = span{off: start, length: len(src) - start}
	}

	return c, nil
}
