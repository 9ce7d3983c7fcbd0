// File: uri.go
// Title: Immutable URI Value
// Description: Implements the frozen URI value: the normalized source
//              string, the usage mode it was normalized for, one byte
//              range per component, and the decoded port. Rendering in a
//              different usage re-materializes the source.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package uri

import (
	"strings"

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/text"
)

// Usage selects how component bytes are normalized when a URI is
// rendered
type Usage int

const (
	// UsageAsSpecified emits the stored bytes verbatim
	UsageAsSpecified Usage = iota

	// UsageEscaped percent-encodes every byte outside its component's
	// character class
	UsageEscaped

	// UsageDisplay decodes every well-formed escape sequence for human
	// consumption
	UsageDisplay
)

// String returns the string representation of the usage
func (u Usage) String() string {
	switch u {
	case UsageAsSpecified:
		return "as-specified"
	case UsageEscaped:
		return "escaped"
	case UsageDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// Param is one query parameter
type Param struct {
	Name  string
	Value string
}

// Uri is an immutable URI: the source string, the usage it was
// normalized for, and byte ranges locating each component in the
// source. The zero value is the empty URI. Uris are safe for
// concurrent use.
type Uri struct {
	source text.String
	usage  Usage
	comp   components
}

// Parse parses s into a Uri carrying UsageAsSpecified. Empty input
// fails with URI_PARSE.
func Parse(s text.String) (Uri, error) {
	comp, err := parseComponents(s.String())
	if err != nil {
		return Uri{}, err
	}
	return Uri{source: s, usage: UsageAsSpecified, comp: comp}, nil
}

// MustParse is Parse that panics on error, for literals in tests and
// initialization code.
func MustParse(s string) Uri {
	u, err := Parse(text.MustNew(s))
	if err != nil {
		panic(err)
	}
	return u
}

// Source returns the source string the component ranges index into
func (u Uri) Source() text.String {
	return u.source
}

// Mode returns the usage the source string was normalized for
func (u Uri) Mode() Usage {
	return u.usage
}

// IsEmpty reports whether the URI has an empty source
func (u Uri) IsEmpty() bool {
	return u.source.IsEmpty()
}

// Scheme returns the scheme, or "" when absent
func (u Uri) Scheme() string {
	return u.comp.scheme.of(u.source.String())
}

// HasAuthority reports whether the source carried a host component
func (u Uri) HasAuthority() bool {
	return u.comp.host.present()
}

// UserInfo returns the user-info component, or "" when absent
func (u Uri) UserInfo() string {
	return u.comp.userInfo.of(u.source.String())
}

// Host returns the host, or "" when absent
func (u Uri) Host() string {
	return u.comp.host.of(u.source.String())
}

// Port returns the port, or a negative value when none was given
func (u Uri) Port() int {
	return u.comp.port
}

// Path returns the path component exactly as parsed, consecutive
// separators included
func (u Uri) Path() string {
	return u.comp.path.of(u.source.String())
}

// IsRooted reports whether the path begins with '/'
func (u Uri) IsRooted() bool {
	p := u.Path()
	return len(p) > 0 && p[0] == '/'
}

// PathElements returns the non-empty path segments
func (u Uri) PathElements() []string {
	var elements []string
	for _, seg := range strings.Split(u.Path(), "/") {
		if seg != "" {
			elements = append(elements, seg)
		}
	}
	return elements
}

// Query returns the raw query component, or "" when absent
func (u Uri) Query() string {
	return u.comp.query.of(u.source.String())
}

// HasQuery reports whether the source carried a query component
func (u Uri) HasQuery() bool {
	return u.comp.query.present()
}

// QueryParams splits the query at '&' and each piece at its first '='.
// A piece without '=' yields a Param with an empty value.
func (u Uri) QueryParams() []Param {
	q := u.Query()
	if q == "" {
		return nil
	}
	pieces := strings.Split(q, "&")
	params := make([]Param, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		name, value, _ := strings.Cut(piece, "=")
		params = append(params, Param{Name: name, Value: value})
	}
	return params
}

// Fragment returns the fragment, or "" when absent
func (u Uri) Fragment() string {
	return u.comp.fragment.of(u.source.String())
}

// HasFragment reports whether the source carried a fragment component
func (u Uri) HasFragment() bool {
	return u.comp.fragment.present()
}

// String returns the source verbatim, the AsSpecified rendering
func (u Uri) String() string {
	return u.source.String()
}

// renderComponents re-renders every stored component for the given
// usage and returns the new source with spans indexing into it. Spans
// are built while writing, never by re-parsing: a Display rendering may
// contain bytes the parser would reject.
func (u Uri) renderComponents(usage Usage) (string, components) {
	src := u.source.String()
	if usage == UsageAsSpecified || usage == u.usage {
		return src, u.comp
	}

	var sb strings.Builder
	out := components{
		scheme: noSpan, userInfo: noSpan, host: noSpan, port: u.comp.port,
		path: noSpan, query: noSpan, fragment: noSpan,
	}

	transform := func(s string, class charClass) string {
		switch usage {
		case UsageEscaped:
			return escape(unescape(s), class)
		case UsageDisplay:
			return unescape(s)
		default:
			return s
		}
	}
	mark := func(sp *span, rendered string) {
		sp.off = sb.Len()
		sp.length = len(rendered)
		sb.WriteString(rendered)
	}

	if u.comp.scheme.present() {
		mark(&out.scheme, u.comp.scheme.of(src))
		sb.WriteByte(':')
	}
	if u.comp.host.present() {
		sb.WriteString("//")
		if u.comp.userInfo.present() {
			mark(&out.userInfo, transform(u.comp.userInfo.of(src), classUserInfo))
			sb.WriteByte('@')
		}
		mark(&out.host, transform(u.comp.host.of(src), classHost))
		if u.comp.port >= 0 {
			sb.WriteByte(':')
			sb.WriteString(portString(u.comp.port))
		}
	}
	if u.comp.path.present() {
		mark(&out.path, transformPath(u.Path(), usage))
	}
	if u.comp.query.present() {
		sb.WriteByte('?')
		mark(&out.query, transform(u.comp.query.of(src), classQueryFrag))
	}
	if u.comp.fragment.present() {
		sb.WriteByte('#')
		mark(&out.fragment, transform(u.comp.fragment.of(src), classQueryFrag))
	}
	return sb.String(), out
}

// Render returns the URI string normalized for the given usage without
// constructing a new Uri.
func (u Uri) Render(usage Usage) string {
	rendered, _ := u.renderComponents(usage)
	return rendered
}

// transformPath re-renders a path component segment-wise so separators
// survive escaping. Normalization collapses consecutive separators;
// AsSpecified keeps the parsed bytes verbatim.
func transformPath(path string, usage Usage) string {
	if usage == UsageAsSpecified {
		return path
	}
	rooted := strings.HasPrefix(path, "/")
	trailing := len(path) > 1 && strings.HasSuffix(path, "/")

	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if usage == UsageEscaped {
			seg = escape(unescape(seg), classPathElem)
		} else {
			seg = unescape(seg)
		}
		segs = append(segs, seg)
	}
	out := strings.Join(segs, "/")
	if rooted {
		out = "/" + out
	}
	if trailing && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out
}

func portString(port int) string {
	var buf [5]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + port%10)
		port /= 10
		if port == 0 {
			break
		}
	}
	return string(buf[i:])
}

// WithUsage re-renders every stored component for the given usage and
// returns a fresh Uri whose ranges index the new source.
func (u Uri) WithUsage(usage Usage) (Uri, error) {
	if usage == u.usage {
		return u, nil
	}
	rendered, comp := u.renderComponents(usage)
	s, err := text.New(rendered)
	if err != nil {
		return Uri{}, perror.Wrap(err, "re-rendering URI").
			WithCode(perror.CodeInternal).
			WithOperation("uri.WithUsage")
	}
	return Uri{source: s, usage: usage, comp: comp}, nil
}

// Escaped returns the URI normalized to Escaped usage
func (u Uri) Escaped() (Uri, error) {
	return u.WithUsage(UsageEscaped)
}

// Unescaped returns the URI normalized to Display usage
func (u Uri) Unescaped() (Uri, error) {
	return u.WithUsage(UsageDisplay)
}

// Equal reports whether the two URIs have byte-identical sources
func (u Uri) Equal(v Uri) bool {
	return u.source.Compare(v.source) == 0
}
